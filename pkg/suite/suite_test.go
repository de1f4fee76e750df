package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pagewright/pkg/page"
)

const sampleSuite = `
pages:
  - name: base
    links:
      - label: Home
      - label: "Contact Us"
        alias: contact
  - name: login
    extends: base
    url: https://example.com/login
    title_pattern: "*Log In*"
    ready: login_form
    ready_timeout: 10s
    activity_probe: window.pendingRequests
    elements:
      login_form:
        css: "form#login"
      username:
        id: username
    values:
      error_message:
        class: error
    buttons:
      - label: "Sign In"
`

func TestParseBuildsTypes(t *testing.T) {
	s, err := Parse([]byte(sampleSuite))
	require.NoError(t, err)

	assert.Equal(t, []string{"base", "login"}, s.Names())

	base, ok := s.Page("base")
	require.True(t, ok)
	assert.True(t, base.Has("home_link"))
	assert.True(t, base.Has("home"))
	assert.True(t, base.Has("contact_link"))
	assert.True(t, base.Has("contact"))

	login, ok := s.Page("login")
	require.True(t, ok)
	assert.Same(t, base, login.Parent())

	// Own declarations plus everything inherited
	for _, name := range []string{
		"login_form", "username", "error_message",
		"sign_in_button", "sign_in",
		"home", "contact",
		page.ActivityWaitName,
	} {
		assert.True(t, login.Has(name), "expected %q to resolve", name)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSuite), 0600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Names(), 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("pages: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid suite YAML")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name:     "page without name",
			yaml:     "pages:\n  - url: https://example.com\n",
			contains: "without a name",
		},
		{
			name:     "duplicate page name",
			yaml:     "pages:\n  - name: a\n  - name: a\n",
			contains: "declared twice",
		},
		{
			name:     "unknown parent",
			yaml:     "pages:\n  - name: a\n    extends: missing\n",
			contains: `extends unknown page "missing"`,
		},
		{
			name:     "title and pattern together",
			yaml:     "pages:\n  - name: a\n    title: T\n    title_pattern: \"T*\"\n",
			contains: "mutually exclusive",
		},
		{
			name:     "element without selector",
			yaml:     "pages:\n  - name: a\n    elements:\n      thing: {}\n",
			contains: "needs a selector attribute",
		},
		{
			name:     "ready references unknown element",
			yaml:     "pages:\n  - name: a\n    ready: ghost\n",
			contains: `ready element "ghost" is not declared`,
		},
		{
			name:     "bad ready timeout",
			yaml:     "pages:\n  - name: a\n    elements:\n      spinner: {id: s}\n    ready: spinner\n    ready_timeout: fast\n",
			contains: "invalid ready_timeout",
		},
		{
			name:     "bad title pattern",
			yaml:     "pages:\n  - name: a\n    title_pattern: \"[\"\n",
			contains: "invalid title pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDuplicateAccessorAcrossSuiteInheritance(t *testing.T) {
	const y = `
pages:
  - name: base
    elements:
      header: {id: header}
  - name: child
    extends: base
    elements:
      header: {id: other}
`
	_, err := Parse([]byte(y))
	require.Error(t, err)

	var dup *page.DuplicateDefinitionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "header", dup.Name)
	assert.Equal(t, "base", dup.Type)
}
