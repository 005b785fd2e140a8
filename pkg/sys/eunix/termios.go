//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

// Package eunix provides Unix-specific utilities.
package eunix

import (
	"golang.org/x/sys/unix"
)

// Termios represents terminal attributes.
type Termios unix.Termios

// TermiosForFd returns a pointer to a Termios structure if the file
// descriptor is open on a terminal device.
func TermiosForFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	return (*Termios)(term), err
}

// ApplyToFd applies term to the given file descriptor.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetRaw puts term in raw mode: no line editing, echo, signal keys or output
// processing, 8-bit characters, and reads returning as soon as one byte is
// available.
func (term *Termios) SetRaw() {
	term.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	term.Oflag &^= unix.OPOST
	term.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	term.Cflag &^= unix.CSIZE | unix.PARENB
	term.Cflag |= unix.CS8
	term.Cc[unix.VMIN] = 1
	term.Cc[unix.VTIME] = 0
}

// MakeRaw puts the terminal referred to by fd in raw mode, and returns a
// function restoring its previous state.
func MakeRaw(fd int) (restore func() error, err error) {
	old, err := TermiosForFd(fd)
	if err != nil {
		return nil, err
	}
	raw := old.Copy()
	raw.SetRaw()
	if err := raw.ApplyToFd(fd); err != nil {
		return nil, err
	}
	return func() error { return old.ApplyToFd(fd) }, nil
}
