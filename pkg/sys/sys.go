// Package sys wraps the OS facilities behind the terminal surface: window
// size, terminal detection and resize signals. The subpackage eunix holds the
// Unix-only parts (raw mode and polling).
package sys

import (
	"os"
	"os/signal"
	"runtime"

	"github.com/mattn/go-isatty"
)

// SIGWINCH is the window size change signal. On systems without one it is a
// signal that is never delivered.
const SIGWINCH = sigWINCH

// WinSize returns the size of the terminal open as file. The ok result is
// false if file is not a terminal.
func WinSize(file *os.File) (cols, rows int, ok bool) { return winSize(file) }

// IsATTY reports whether fd refers to a terminal, including Cygwin and MSYS
// terminals.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifyResize relays window size changes to c.
func NotifyResize(c chan<- os.Signal) { signal.Notify(c, SIGWINCH) }

// StopNotify undoes NotifyResize.
func StopNotify(c chan<- os.Signal) { signal.Stop(c) }

// DumpStack returns the stacks of all goroutines, for crash logs.
func DumpStack() string {
	for size := 1 << 13; ; size *= 2 {
		buf := make([]byte, size)
		if n := runtime.Stack(buf, true); n < size {
			return string(buf[:n])
		}
	}
}
