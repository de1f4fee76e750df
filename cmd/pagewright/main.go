// Package main provides the pagewright suite checker. It loads a YAML page
// suite, drives each page in a real browser, and reports which pages pass
// their navigation, readiness, and title checks.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/entrhq/pagewright/pkg/logging"
	"github.com/entrhq/pagewright/pkg/page"
	"github.com/entrhq/pagewright/pkg/pwdriver"
	"github.com/entrhq/pagewright/pkg/suite"
)

const version = "0.1.0" // Version of the pagewright suite checker

// Config holds the application configuration
type Config struct {
	SuitePath   string
	EnvFile     string
	Headless    bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("pagewright v%s\n", version)
		return
	}

	if config.SuitePath == "" {
		log.Fatal("Configuration error: -suite is required")
	}

	// Optional .env preload for browser settings (PAGEWRIGHT_HEADLESS etc.)
	if config.EnvFile != "" {
		if err := godotenv.Load(config.EnvFile); err != nil {
			log.Fatalf("Failed to load env file %s: %v", config.EnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}
	if os.Getenv("PAGEWRIGHT_HEADLESS") == "false" {
		config.Headless = false
	}

	appLog, _ := logging.NewLogger("cli")
	defer appLog.Close()

	s, err := suite.Load(config.SuitePath)
	if err != nil {
		log.Fatalf("Failed to load suite: %v", err)
	}

	manager := pwdriver.NewManager()
	if err := manager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize browser runtime: %v", err)
	}
	defer manager.Shutdown()

	// Shut the browser down on Ctrl-C before exiting
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		manager.Shutdown()
		os.Exit(1)
	}()

	session, err := manager.StartSession("suite-check", pwdriver.Options{
		Headless: config.Headless,
	})
	if err != nil {
		log.Fatalf("Failed to start browser session: %v", err)
	}

	failures := 0
	for _, name := range s.Names() {
		t, _ := s.Page(name)

		appLog.Infof("checking page %q", name)
		_, err := page.New(t, session.Driver(), page.Visit())
		if err != nil {
			failures++
			appLog.Errorf("page %q failed: %v", name, err)
			fmt.Printf("FAIL  %s: %v\n", name, err)
			continue
		}
		fmt.Printf("ok    %s\n", name)
	}

	if failures > 0 {
		fmt.Printf("\n%d of %d pages failed (log: %s)\n", failures, len(s.Names()), appLog.LogPath())
		manager.Shutdown()
		os.Exit(1)
	}
	fmt.Printf("\nall %d pages passed\n", len(s.Names()))
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.SuitePath, "suite", "", "Path to the YAML page suite to check")
	flag.StringVar(&config.EnvFile, "env", "", "Path to a .env file with browser settings")
	flag.BoolVar(&config.Headless, "headless", true, "Run the browser without a visible window")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Parse()
	return config
}
