package page

import (
	"fmt"
	"strconv"
	"time"

	"github.com/entrhq/pagewright/pkg/driver"
)

// ActivityWaitName is the accessor installed on every declared Type. It waits
// for the page's asynchronous work counter to reach idle.
const ActivityWaitName = "wait_for_background_activity"

// Pauses alternate short/long between probe attempts so a page that settles
// quickly is caught early without hammering the browser.
const (
	activityShortPause = 300 * time.Millisecond
	activityLongPause  = 700 * time.Millisecond
)

// installActivityWait generates the background activity accessor for a
// freshly declared type. It writes to the accessor map directly: the accessor
// is always newly generated per type, never inherited, so the uniqueness
// check does not apply. The closure reads the probe through the type so a
// probe set later (or on an ancestor) is picked up.
func (t *Type) installActivityWait() {
	typ := t
	t.accessors[ActivityWaitName] = &Accessor{
		Name: ActivityWaitName,
		Kind: KindAction,
		Locator: func(drv driver.Driver, args ...interface{}) (interface{}, error) {
			timeout := DefaultTimeout
			message := ""

			if len(args) > 0 && args[0] != nil {
				d, ok := args[0].(time.Duration)
				if !ok {
					return nil, fmt.Errorf("%s: timeout must be a time.Duration, got %T", ActivityWaitName, args[0])
				}
				if d > 0 {
					timeout = d
				}
			}
			if len(args) > 1 && args[1] != nil {
				s, ok := args[1].(string)
				if !ok {
					return nil, fmt.Errorf("%s: message must be a string, got %T", ActivityWaitName, args[1])
				}
				message = s
			}

			return nil, waitForIdle(drv, typ.probe(), timeout, message)
		},
	}
	t.order = append(t.order, ActivityWaitName)
}

// WaitForBackgroundActivity polls the page's activity probe until it reports
// idle or the timeout elapses. The timeout is a wall-clock bound measured
// against the monotonic clock. A zero timeout uses DefaultTimeout.
func (p *Page) WaitForBackgroundActivity(timeout time.Duration, message string) error {
	_, err := p.Call(ActivityWaitName, timeout, message)
	return err
}

// waitForIdle evaluates the probe expression until it reports zero
// outstanding work. Probe errors propagate untranslated.
func waitForIdle(drv driver.Driver, probe string, timeout time.Duration, message string) error {
	deadline := time.Now().Add(timeout)
	short := true

	for {
		value, err := drv.ExecuteScript(probe)
		if err != nil {
			return err
		}
		if activityIdle(value) {
			return nil
		}
		if time.Now().After(deadline) {
			return &TimeoutError{Awaited: "background activity", Message: message, Timeout: timeout}
		}

		if short {
			time.Sleep(activityShortPause)
		} else {
			time.Sleep(activityLongPause)
		}
		short = !short
	}
}

// activityIdle interprets a probe result as an outstanding-work counter.
// A missing counter (nil) counts as idle.
func activityIdle(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return err == nil && n == 0
	default:
		return false
	}
}
