package sys

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// Never delivered.
const sigWINCH = syscall.Signal(-1)

func winSize(file *os.File) (cols, rows int, ok bool) {
	var info windows.ConsoleScreenBufferInfo
	if windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info) != nil {
		return 0, 0, false
	}
	w := info.Window
	return int(w.Right-w.Left) + 1, int(w.Bottom-w.Top) + 1, true
}
