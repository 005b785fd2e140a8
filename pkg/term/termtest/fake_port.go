// Package termtest provides a fake terminal port for testing code built on
// term.Surface.
package termtest

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/boxel-tui/boxel/pkg/term"
)

// Initial size of a fake port created with NewFakePort.
const (
	FakePortCols = 80
	FakePortRows = 24
)

// FakePort is a term.Port backed by channels and an in-memory buffer.
type FakePort struct {
	mu   sync.Mutex
	out  bytes.Buffer
	cols int
	rows int
	raw  bool
	// Returned by MakeRaw when not nil.
	rawErr error

	// Signaled on every write.
	written chan struct{}
	input   chan []byte
	stopped chan struct{}
	resize  chan struct{}
}

var _ term.Port = (*FakePort)(nil)

// NewFakePort creates a FakePort of FakePortCols by FakePortRows.
func NewFakePort() *FakePort {
	return &FakePort{cols: FakePortCols, rows: FakePortRows,
		written: make(chan struct{}, 1),
		input:   make(chan []byte), stopped: make(chan struct{}, 1),
		resize: make(chan struct{}, 1)}
}

// Write records b.
func (p *FakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, err := p.out.Write(b)
	signal(p.written)
	return n, err
}

// Output returns everything written since the last ResetOutput.
func (p *FakePort) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.String()
}

// ResetOutput discards the recorded output.
func (p *FakePort) ResetOutput() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Reset()
}

// WaitOutput waits until the recorded output contains s, and returns whether
// it did before the timeout.
func (p *FakePort) WaitOutput(s string, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		if strings.Contains(p.Output(), s) {
			return true
		}
		select {
		case <-p.written:
		case <-deadline:
			return false
		}
	}
}

// Size returns the size set with SetSize.
func (p *FakePort) Size() (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cols, p.rows, nil
}

// SetSize changes the size of the port and notifies the resize channel.
func (p *FakePort) SetSize(cols, rows int) {
	p.mu.Lock()
	p.cols, p.rows = cols, rows
	p.mu.Unlock()
	signal(p.resize)
}

// MakeRaw records that the port is in raw mode.
func (p *FakePort) MakeRaw() (func() error, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rawErr != nil {
		return nil, p.rawErr
	}
	p.raw = true
	return func() error {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.raw = false
		return nil
	}, nil
}

// SetRawError makes MakeRaw fail with err.
func (p *FakePort) SetRawError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rawErr = err
}

// Raw returns whether the port is in raw mode.
func (p *FakePort) Raw() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.raw
}

// Read returns the data passed to Inject, or io.EOF after EndInput.
func (p *FakePort) Read() ([]byte, error) {
	select {
	case data := <-p.input:
		if data == nil {
			return nil, io.EOF
		}
		return data, nil
	case <-p.stopped:
		return nil, term.ErrStopped
	}
}

// Inject feeds one chunk of input. It blocks until the chunk is read.
func (p *FakePort) Inject(data []byte) { p.input <- data }

// EndInput makes the next Read return io.EOF. It blocks until then.
func (p *FakePort) EndInput() { p.input <- nil }

// Stop makes the outstanding Read return term.ErrStopped.
func (p *FakePort) Stop() error {
	signal(p.stopped)
	return nil
}

// NotifyResize returns the channel notified by SetSize.
func (p *FakePort) NotifyResize(<-chan struct{}) <-chan struct{} { return p.resize }

// Close does nothing.
func (p *FakePort) Close() error { return nil }

func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
