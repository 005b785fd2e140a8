//go:build !unix

package term

import (
	"errors"
	"os"
)

// NewFilePort returns a Port that reads from in and writes to out. It is only
// supported on Unix.
func NewFilePort(in, out *os.File) (Port, error) {
	return nil, errors.New("file ports are only supported on Unix")
}

// NewTtyPort returns a Port on the controlling terminal. It is only supported
// on Unix.
func NewTtyPort() (Port, error) {
	return nil, errors.New("tty ports are only supported on Unix")
}
