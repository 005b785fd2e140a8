//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

const sigWINCH = unix.SIGWINCH

// Used in place of the zero size reported by serial consoles.
const fallbackCols, fallbackRows = 80, 24

func winSize(file *os.File) (cols, rows int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	cols, rows = int(ws.Col), int(ws.Row)
	if cols == 0 {
		cols = fallbackCols
	}
	if rows == 0 {
		rows = fallbackRows
	}
	return cols, rows, true
}
