// Package testutil holds helpers shared by tests of several packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/twig/internal/store"
)

// NewTestStore opens an in-memory history store with migrations applied.
// It is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.New(":memory:")
	require.NoError(t, err, "failed to open in-memory store")

	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// SeedHistory appends lines to st under sessionID, all with outcome ok.
func SeedHistory(t *testing.T, st *store.Store, sessionID string, lines ...string) {
	t.Helper()

	for _, line := range lines {
		_, err := st.Append(sessionID, line, store.OutcomeOK)
		require.NoError(t, err, "failed to seed history line %q", line)
	}
}

// IsolateHome points HOME and the XDG directories at a fresh temporary
// directory, so config, log and history files never touch the real ones.
// Colors are turned off. It returns the new home.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("NO_COLOR", "1")
	t.Setenv("PAGER", "")

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0o700))
	return home
}
