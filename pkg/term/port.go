package term

import (
	"errors"
	"io"
)

// Port is the I/O collaborator of a Surface: the terminal the surface draws
// on and reads input from.
type Port interface {
	io.Writer
	// Size returns the size of the terminal.
	Size() (cols, rows int, err error)
	// MakeRaw puts the terminal in raw mode and returns a function restoring
	// the previous mode.
	MakeRaw() (restore func() error, err error)
	// Read blocks until some input is available and returns it. It returns
	// io.EOF when the input is closed, and ErrStopped if Stop is called.
	Read() ([]byte, error)
	// Stop makes an outstanding Read, or the next one if there is none,
	// return ErrStopped. It blocks until the outstanding Read returns.
	Stop() error
	// NotifyResize returns a channel on which a value is sent when the
	// terminal is resized, until stop is closed. Notifications may be
	// coalesced.
	NotifyResize(stop <-chan struct{}) <-chan struct{}
	// Close releases the resources of the port. It does not close the
	// underlying terminal.
	Close() error
}

// ErrStopped is returned by Port.Read when Stop is called.
var ErrStopped = errors.New("stopped")

// ErrNotTerminal is returned when a terminal operation is attempted on a file
// that is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

const readBufSize = 4096

// Sends a value on ch unless one is already pending.
func notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
