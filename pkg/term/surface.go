// Package term implements the terminal surface: the root of a panel tree,
// owning the terminal it draws on.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/boxel-tui/boxel/pkg/errutil"
	"github.com/boxel-tui/boxel/pkg/event"
	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/ui"
)

var logger = logutil.GetLogger("[term] ")

// Event keys emitted by a Surface.
const (
	// EventResize is emitted with the new column and row counts when the
	// terminal is resized.
	EventResize event.Key = "resize"
	// EventData is emitted with each chunk of input, as a []byte.
	EventData event.Key = "data"
	// EventEnd is emitted when the input ends, or on Ctrl-C and Ctrl-D when
	// so configured.
	EventEnd event.Key = "end"
	// EventClose is emitted when reading input fails, with whether it failed
	// with an error other than the end of input.
	EventClose event.Key = "close"
)

// Listeners of the surface itself run after those of clients.
const exitLevel = math.MaxInt

// Default size, used when the port cannot report one.
const (
	defaultCols = 80
	defaultRows = 24
)

var (
	ctrlC = []byte{3}
	ctrlD = []byte{4}
)

// Option configures a Surface.
type Option func(*Surface)

// ExitOnCtrlC sets whether a Ctrl-C keypress ends the surface. It does by
// default.
func ExitOnCtrlC(v bool) Option { return func(s *Surface) { s.exitOnCtrlC = v } }

// ExitOnCtrlD sets whether a Ctrl-D keypress ends the surface. It does by
// default.
func ExitOnCtrlD(v bool) Option { return func(s *Surface) { s.exitOnCtrlD = v } }

// WithDomain makes the surface use an existing event domain.
func WithDomain(d *event.Domain) Option { return func(s *Surface) { s.domain = d } }

// Surface is a terminal screen. Its absolute origin is (1, 1); panels compute
// their positions relative to it.
//
// The event listeners of a Surface run on goroutines started by Init, while
// holding the lock of its event domain. Other goroutines touching the panel
// tree must do so through Do.
type Surface struct {
	*event.Emitter
	port   Port
	domain *event.Domain

	exitOnCtrlC, exitOnCtrlD bool

	// Protects the fields below. Never held while emitting events.
	mu         sync.Mutex
	cols, rows int
	active     bool
	restore    func() error
	stop       chan struct{}
	done       chan struct{}
}

// New creates a Surface on a port. The surface is inactive until Init is
// called.
func New(port Port, opts ...Option) *Surface {
	s := &Surface{port: port, exitOnCtrlC: true, exitOnCtrlD: true,
		done: make(chan struct{})}
	for _, opt := range opts {
		opt(s)
	}
	if s.domain == nil {
		s.domain = event.NewDomain()
	}
	s.Emitter = event.New(s.domain)
	s.cols, s.rows = s.querySize()

	exit := func(*event.Event, ...any) {
		if err := s.Exit(); err != nil {
			logger.Println("exit:", err)
		}
	}
	s.On(EventEnd, exit, event.Level(exitLevel))
	s.On(EventClose, exit, event.Level(exitLevel))
	return s
}

func (s *Surface) querySize() (int, int) {
	cols, rows, err := s.port.Size()
	if err != nil || cols <= 0 || rows <= 0 {
		logger.Printf("cannot get terminal size, using %dx%d: %v", defaultCols, defaultRows, err)
		return defaultCols, defaultRows
	}
	return cols, rows
}

// Domain returns the event domain of the surface, shared by its panels.
func (s *Surface) Domain() *event.Domain { return s.domain }

// Do runs fn while holding the lock of the surface's event domain.
func (s *Surface) Do(fn func()) { s.domain.Do(fn) }

// Width returns the number of columns.
func (s *Surface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols
}

// Height returns the number of rows.
func (s *Surface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// AbsX returns the column of the top-left cell, always 1.
func (s *Surface) AbsX() int { return 1 }

// AbsY returns the row of the top-left cell, always 1.
func (s *Surface) AbsY() int { return 1 }

// Active returns whether the surface has been initialized and not exited.
func (s *Surface) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Done returns a channel that is closed when the surface exits.
func (s *Surface) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Init switches to the alternate screen buffer and raw mode, and starts
// relaying input and resize events. It does nothing if the surface is
// already active.
func (s *Surface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return nil
	}
	restore, err := s.port.MakeRaw()
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	_, err = io.WriteString(s.port, SeqAltBuffer(true)+SeqHome)
	if err != nil {
		return errors.Join(err, restore())
	}
	s.restore = restore
	s.stop = make(chan struct{})
	select {
	case <-s.done:
		s.done = make(chan struct{})
	default:
	}
	s.active = true
	s.cols, s.rows = s.querySize()
	logger.Printf("init, size %dx%d", s.cols, s.rows)

	go s.relayInput()
	go s.relayResize(s.port.NotifyResize(s.stop), s.stop)
	return nil
}

// Exit stops relaying events, restores the terminal mode, resets the style
// and cursor, and leaves the alternate screen buffer. It does nothing if the
// surface is not active.
//
// Exit does not wait for the goroutines started by Init, so it can be called
// from event listeners.
func (s *Surface) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil
	}
	s.active = false
	close(s.stop)
	close(s.done)
	logger.Println("exit")

	var stopErr error
	if err := s.port.Stop(); err != nil {
		stopErr = fmt.Errorf("stop reading: %w", err)
	}
	_, writeErr := io.WriteString(s.port,
		ui.Reset+DECSCUSR(1)+SeqCursorVisible(true)+SeqAltBuffer(false))
	var restoreErr error
	if err := s.restore(); err != nil {
		restoreErr = fmt.Errorf("restore terminal mode: %w", err)
	}
	return errutil.Multi(stopErr, writeErr, restoreErr)
}

func (s *Surface) relayInput() {
	for {
		data, err := s.port.Read()
		if errors.Is(err, ErrStopped) {
			return
		}
		if err != nil {
			hadError := !errors.Is(err, io.EOF)
			if hadError {
				logger.Println("read:", err)
			}
			s.Do(func() {
				if s.Active() {
					s.Emit(EventEnd)
					s.Emit(EventClose, hadError)
				}
			})
			return
		}
		s.Do(func() { s.handleInput(data) })
	}
}

func (s *Surface) handleInput(data []byte) {
	if !s.Active() {
		return
	}
	s.Emit(EventData, data)
	if s.exitOnCtrlC && bytes.Equal(data, ctrlC) || s.exitOnCtrlD && bytes.Equal(data, ctrlD) {
		s.Emit(EventEnd)
	}
}

func (s *Surface) relayResize(resize <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-resize:
			s.Do(s.refreshSize)
		}
	}
}

// Queries the size of the port, and emits EventResize if it has changed.
func (s *Surface) refreshSize() {
	cols, rows := s.querySize()
	s.mu.Lock()
	changed := s.active && (cols != s.cols || rows != s.rows)
	if changed {
		s.cols, s.rows = cols, rows
	}
	s.mu.Unlock()
	if changed {
		logger.Printf("resize to %dx%d", cols, rows)
		s.Emit(EventResize, cols, rows)
	}
}

// Write writes raw bytes to the terminal.
func (s *Surface) Write(p []byte) (int, error) { return s.port.Write(p) }

// WriteString writes a string to the terminal.
func (s *Surface) WriteString(str string) (int, error) {
	return io.WriteString(s.port, str)
}

func (s *Surface) writeSeq(seq string) error {
	_, err := s.WriteString(seq)
	return err
}

// MoveTo moves the cursor to an absolute position. See Position for how
// col and row are interpreted.
func (s *Surface) MoveTo(col, row float64) error {
	c, r, err := Position(col, row, s.Width(), s.Height())
	if err != nil {
		return err
	}
	return s.writeSeq(CUP(c, r))
}

// MoveBy moves the cursor relative to its current position.
func (s *Surface) MoveBy(dx, dy int) error {
	var seq string
	if dx < 0 {
		seq += CUB(-dx)
	} else {
		seq += CUF(dx)
	}
	if dy < 0 {
		seq += CUU(-dy)
	} else {
		seq += CUD(dy)
	}
	return s.writeSeq(seq)
}

// Home moves the cursor to (1, 1).
func (s *Surface) Home() error { return s.writeSeq(SeqHome) }

// EraseScreen erases the whole screen.
func (s *Surface) EraseScreen() error { return s.writeSeq(SeqEraseScreen) }

// EraseLine erases the line of the cursor.
func (s *Surface) EraseLine() error { return s.writeSeq(SeqEraseLine) }

// AltBuffer switches to or from the alternate screen buffer.
func (s *Surface) AltBuffer(on bool) error { return s.writeSeq(SeqAltBuffer(on)) }

// CursorVisible shows or hides the cursor.
func (s *Surface) CursorVisible(on bool) error { return s.writeSeq(SeqCursorVisible(on)) }

// CursorStyle sets the cursor style by DECSCUSR code:
//
//   - 0: blinking block
//   - 1: blinking block (default)
//   - 2: steady block
//   - 3: blinking underline
//   - 4: steady underline
//   - 5: blinking bar
//   - 6: steady bar
func (s *Surface) CursorStyle(code int) error {
	if code < 0 || code > 6 {
		return &CursorStyleError{Code: code}
	}
	return s.writeSeq(DECSCUSR(code))
}

// CursorShape sets the cursor style by name; see CursorShapes.
func (s *Surface) CursorShape(name string) error {
	code, ok := CursorShapes[name]
	if !ok {
		return &CursorStyleError{Name: name}
	}
	return s.writeSeq(DECSCUSR(code))
}

// SaveCursor saves the cursor position.
func (s *Surface) SaveCursor() error { return s.writeSeq(SeqSaveCursor) }

// RestoreCursor restores the cursor position saved by SaveCursor.
func (s *Surface) RestoreCursor() error { return s.writeSeq(SeqRestoreCursor) }

// SetStyle sets the style of the following output. The empty style resets
// all attributes.
func (s *Surface) SetStyle(st ui.Style) error { return s.writeSeq(st.Sequence()) }

// Reset resets all style attributes.
func (s *Surface) Reset() error { return s.writeSeq(ui.Reset) }
