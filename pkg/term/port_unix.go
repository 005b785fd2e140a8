//go:build unix

package term

import (
	"errors"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/boxel-tui/boxel/pkg/sys"
	"github.com/boxel-tui/boxel/pkg/sys/eunix"
)

type filePort struct {
	in, out *os.File
	// Reading end and writing end of a pipe used to interrupt reads.
	rStop, wStop *os.File
	// Held while Read is in progress.
	mutex sync.Mutex
}

// NewFilePort returns a Port that reads from in and writes to out, which are
// normally the standard input and output of a process.
func NewFilePort(in, out *os.File) (Port, error) {
	rStop, wStop, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &filePort{in: in, out: out, rStop: rStop, wStop: wStop}, nil
}

func (p *filePort) Write(b []byte) (int, error) { return p.out.Write(b) }

func (p *filePort) Size() (cols, rows int, err error) {
	for _, f := range []*os.File{p.out, p.in} {
		if cols, rows, ok := sys.WinSize(f); ok {
			return cols, rows, nil
		}
	}
	return 0, 0, ErrNotTerminal
}

func (p *filePort) MakeRaw() (func() error, error) {
	if !sys.IsATTY(p.in.Fd()) {
		return nil, ErrNotTerminal
	}
	return eunix.MakeRaw(int(p.in.Fd()))
}

func (p *filePort) Read() ([]byte, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	for {
		ready, err := eunix.WaitForRead(-1, p.in, p.rStop)
		if err != nil {
			return nil, err
		}
		if ready[1] {
			var b [1]byte
			p.rStop.Read(b[:])
			return nil, ErrStopped
		}
		if !ready[0] {
			continue
		}
		buf := make([]byte, readBufSize)
		n, err := p.in.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err == nil || errors.Is(err, unix.EIO) {
			// A terminal whose other end is gone reports EIO.
			err = io.EOF
		}
		return nil, err
	}
}

func (p *filePort) Stop() error {
	_, err := p.wStop.Write([]byte{'q'})
	p.mutex.Lock()
	p.mutex.Unlock()
	return err
}

func (p *filePort) NotifyResize(stop <-chan struct{}) <-chan struct{} {
	ch := make(chan struct{}, 1)
	sigCh := make(chan os.Signal, 1)
	sys.NotifyResize(sigCh)
	go func() {
		defer sys.StopNotify(sigCh)
		for {
			select {
			case <-stop:
				return
			case <-sigCh:
				notify(ch)
			}
		}
	}()
	return ch
}

func (p *filePort) Close() error {
	return errors.Join(p.rStop.Close(), p.wStop.Close())
}
