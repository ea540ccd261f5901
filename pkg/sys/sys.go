// Package sys provides terminal utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// DefaultColumns is the width assumed when the terminal width can't be
// determined.
const DefaultColumns = 80

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Columns returns the width of the terminal referenced by file, or
// DefaultColumns if file is not a terminal.
func Columns(file *os.File) int {
	if !IsATTY(file.Fd()) {
		return DefaultColumns
	}
	if _, col := WinSize(file); col > 0 {
		return col
	}
	return DefaultColumns
}
