package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/examples"
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/testutil"
	"github.com/vk/nutshell/internal/unit"
)

// SetupAppTest creates a new app instance for system testing. Remote
// examples read from f; a nil cfg uses the built-in deck.
func SetupAppTest(t *testing.T, cfg *Config, f unit.Fetcher, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	if cfg == nil {
		cfg = &Config{}
	}
	cfg, err := NewConfig(*cfg)
	require.NoError(t, err)
	cfg.LogLevel = "debug"

	if len(modules) == 0 {
		modules = []registry.Module{&examples.Module{Fetcher: f}}
	}

	logBuffer := &testutil.SafeBuffer{}
	testApp, err := NewApp(logBuffer, cfg, nil, modules...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = testApp.Close()
		if os.Getenv("NUTSHELL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, logBuffer
}
