// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and in places where errors are provably
// impossible, such as parsing the compiled-in tables.
package must

import (
	"io"
	"os"
	"path/filepath"
)

// OK panics if the error value is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil, and returns v otherwise.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// OK2 panics if the error value is not nil, and returns v1 and v2 otherwise.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	OK(err)
	return v1, v2
}

// Pipe wraps os.Pipe.
func Pipe() (*os.File, *os.File) {
	return OK2(os.Pipe())
}

// Chdir wraps os.Chdir.
func Chdir(dir string) {
	OK(os.Chdir(dir))
}

// ReadAllAndClose reads everything from r and closes it.
func ReadAllAndClose(r io.ReadCloser) []byte {
	v := OK1(io.ReadAll(r))
	OK(r.Close())
	return v
}

// WriteFile writes data to a file, after creating all ancestor directories
// that don't exist.
func WriteFile(filename, data string) {
	OK(os.MkdirAll(filepath.Dir(filename), 0700))
	OK(os.WriteFile(filename, []byte(data), 0600))
}
