//go:build unix

package term

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

type ttyPort struct {
	tty     tcell.Tty
	stopped atomic.Bool
	// Held while Read is in progress.
	mutex sync.Mutex
}

// NewTtyPort returns a Port on the controlling terminal (/dev/tty), driven by
// tcell's terminal layer. Unlike ports from NewFilePort, it works when the
// standard streams are redirected.
func NewTtyPort() (Port, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}
	return &ttyPort{tty: tty}, nil
}

func (p *ttyPort) Write(b []byte) (int, error) { return p.tty.Write(b) }

func (p *ttyPort) Size() (cols, rows int, err error) {
	ws, err := p.tty.WindowSize()
	if err != nil {
		return 0, 0, err
	}
	return ws.Width, ws.Height, nil
}

func (p *ttyPort) MakeRaw() (func() error, error) {
	if err := p.tty.Start(); err != nil {
		return nil, err
	}
	p.stopped.Store(false)
	return p.tty.Stop, nil
}

func (p *ttyPort) Read() ([]byte, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	buf := make([]byte, readBufSize)
	for {
		if p.stopped.Load() {
			return nil, ErrStopped
		}
		n, err := p.tty.Read(buf)
		if p.stopped.Load() {
			return nil, ErrStopped
		}
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *ttyPort) Stop() error {
	p.stopped.Store(true)
	// Draining wakes up a blocked read.
	err := p.tty.Drain()
	p.mutex.Lock()
	p.mutex.Unlock()
	return err
}

func (p *ttyPort) NotifyResize(stop <-chan struct{}) <-chan struct{} {
	ch := make(chan struct{}, 1)
	p.tty.NotifyResize(func() { notify(ch) })
	go func() {
		<-stop
		p.tty.NotifyResize(nil)
	}()
	return ch
}

func (p *ttyPort) Close() error { return p.tty.Close() }
