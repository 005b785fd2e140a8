// Package box implements the box-model components of a panel: the metric
// boxes used for margins and paddings, and the border box.
//
// All setters are no-ops when the new value equals the current one. Setters
// touching several fields emit at most one event per call.
package box

import (
	"fmt"

	"github.com/boxel-tui/boxel/pkg/event"
)

// Event keys.
const (
	// EventChange is emitted by a Metric when any of its sides changes.
	EventChange event.Key = "change"
	// EventResize is emitted by a Border when the width of an edge changes.
	EventResize event.Key = "resize"
	// EventRedraw is emitted by a Border when a cosmetic property changes.
	EventRedraw event.Key = "redraw"
)

// Metric holds four side lengths, used for margins and paddings.
type Metric struct {
	*event.Emitter
	top, right, bottom, left int
}

// NewMetric creates a Metric with all sides zero.
func NewMetric(d *event.Domain) *Metric {
	return &Metric{Emitter: event.New(d)}
}

func (m *Metric) Top() int    { return m.top }
func (m *Metric) Right() int  { return m.right }
func (m *Metric) Bottom() int { return m.bottom }
func (m *Metric) Left() int   { return m.left }

// Inline returns the sum of the left and right sides.
func (m *Metric) Inline() int { return m.left + m.right }

// Block returns the sum of the top and bottom sides.
func (m *Metric) Block() int { return m.top + m.bottom }

// All returns the sum of all sides.
func (m *Metric) All() int { return m.Inline() + m.Block() }

func (m *Metric) SetTop(v int)    { m.set(&m.top, v) }
func (m *Metric) SetRight(v int)  { m.set(&m.right, v) }
func (m *Metric) SetBottom(v int) { m.set(&m.bottom, v) }
func (m *Metric) SetLeft(v int)   { m.set(&m.left, v) }

func (m *Metric) set(p *int, v int) {
	if *p != v {
		*p = v
		m.Emit(EventChange)
	}
}

// SetInline sets the left and right sides.
func (m *Metric) SetInline(left, right int) {
	m.group(func() {
		m.SetLeft(left)
		m.SetRight(right)
	})
}

// SetBlock sets the top and bottom sides.
func (m *Metric) SetBlock(top, bottom int) {
	m.group(func() {
		m.SetTop(top)
		m.SetBottom(bottom)
	})
}

// SetAll sets all four sides.
func (m *Metric) SetAll(top, right, bottom, left int) {
	m.group(func() {
		m.SetBlock(top, bottom)
		m.SetInline(left, right)
	})
}

// Set sets the sides from one to four values, in the order of the CSS
// shorthand: one value sets all sides; two set the block and inline sides;
// three set top, inline sides and bottom; four set top, right, bottom and
// left.
func (m *Metric) Set(vs ...int) error {
	switch len(vs) {
	case 1:
		m.SetAll(vs[0], vs[0], vs[0], vs[0])
	case 2:
		m.SetAll(vs[0], vs[1], vs[0], vs[1])
	case 3:
		m.SetAll(vs[0], vs[1], vs[2], vs[1])
	case 4:
		m.SetAll(vs[0], vs[1], vs[2], vs[3])
	default:
		return fmt.Errorf("metric takes 1 to 4 values, got %d", len(vs))
	}
	return nil
}

func (m *Metric) String() string {
	return fmt.Sprintf("{%d %d %d %d}", m.top, m.right, m.bottom, m.left)
}

// Runs fn with the metric suppressed, and emits a single change event if fn
// changed anything.
func (m *Metric) group(fn func()) {
	if captured := m.Suppress(fn); len(captured[0]) > 0 {
		m.Emit(EventChange)
	}
}
