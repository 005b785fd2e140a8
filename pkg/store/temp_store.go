package store

import (
	"path/filepath"

	"github.com/boxel-tui/boxel/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file for testing. The
// Store and its file are removed when the test finishes.
func MustTempStore(c interface {
	testutil.Cleanuper
	TempDir() string
}) DBStore {
	st, err := Open(filepath.Join(c.TempDir(), "boxel.db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
