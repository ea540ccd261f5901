//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

func winSize(file *os.File) (row, col int) {
	fd := int(file.Fd())
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1
	}

	// Pick up a reasonable value for row and col if they equal zero in
	// special cases, such as serial consoles.
	if ws.Col == 0 {
		ws.Col = DefaultColumns
	}
	if ws.Row == 0 {
		ws.Row = 24
	}

	return int(ws.Row), int(ws.Col)
}
