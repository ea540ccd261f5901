package testutil

import (
	"os"
	"path/filepath"

	"github.com/elves/wcwidth/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "wcwidthtest"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the original working directory when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
	return dir
}

// Dir describes the layout of a directory. The keys of the map represent
// filenames. Each value is either a string (for the content of a regular file)
// or a Dir (for the content of a subdirectory).
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	applyDir(dir, "")
}

func applyDir(dir Dir, prefix string) {
	for name, file := range dir {
		path := filepath.Join(prefix, name)
		switch file := file.(type) {
		case string:
			must.OK(os.WriteFile(path, []byte(file), 0600))
		case Dir:
			err := os.MkdirAll(path, 0700)
			if err != nil && !os.IsExist(err) {
				panic(err)
			}
			applyDir(file, path)
		default:
			panic("file is neither string nor Dir")
		}
	}
}
