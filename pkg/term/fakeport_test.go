package term

import (
	"bytes"
	"io"
	"sync"
)

// A Port backed by channels and a buffer.
type fakePort struct {
	mu       sync.Mutex
	out      bytes.Buffer
	cols     int
	rows     int
	sizeErr  error
	rawErr   error
	raw      bool
	restored int

	input   chan []byte
	stopped chan struct{}
	resize  chan struct{}
}

func newFakePort(cols, rows int) *fakePort {
	return &fakePort{cols: cols, rows: rows,
		input: make(chan []byte), stopped: make(chan struct{}, 1),
		resize: make(chan struct{}, 1)}
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Write(b)
}

func (p *fakePort) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.String()
}

func (p *fakePort) ResetOutput() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Reset()
}

func (p *fakePort) SetSize(cols, rows int) {
	p.mu.Lock()
	p.cols, p.rows = cols, rows
	p.mu.Unlock()
}

func (p *fakePort) Size() (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cols, p.rows, p.sizeErr
}

func (p *fakePort) MakeRaw() (func() error, error) {
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
		p.restored++
		return nil
	}, nil
}

func (p *fakePort) Raw() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.raw
}

// Sends input; a nil slice ends the input.
func (p *fakePort) Read() ([]byte, error) {
	select {
	case data := <-p.input:
		if data == nil {
			return nil, io.EOF
		}
		return data, nil
	case <-p.stopped:
		return nil, ErrStopped
	}
}

func (p *fakePort) Stop() error {
	notify(p.stopped)
	return nil
}

func (p *fakePort) NotifyResize(stop <-chan struct{}) <-chan struct{} {
	return p.resize
}

func (p *fakePort) Close() error { return nil }
