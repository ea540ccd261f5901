package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elves/wcwidth/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file for testing. The
// Store and its file will be removed after the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "db.bolt"))
	if err != nil {
		panic(fmt.Sprintf("Failed to create Store instance: %v", err))
	}
	c.Cleanup(func() {
		if err := st.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close temp store:", err)
		}
	})
	return st
}
