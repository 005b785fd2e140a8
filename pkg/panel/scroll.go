package panel

import (
	"fmt"
	"math"
)

// Direction is the direction in which increasing the scroll position moves
// the visible window.
type Direction int

const (
	// Down makes scroll position 0 show the start of the text.
	Down Direction = iota
	// Up makes scroll position 0 show the end of the text.
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "down" or "up".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	default:
		return 0, fmt.Errorf("no such scroll direction: %q", s)
	}
}

// Scroll returns the scroll position. A position in [0, 1) is a proportion
// of the scrollable range; a larger one is a line offset.
func (p *Panel) Scroll() float64 { return p.scroll }

// ScrollOffset returns the scroll position as a line offset.
func (p *Panel) ScrollOffset() int { return p.offset }

// ScrollDirection returns the scroll direction.
func (p *Panel) ScrollDirection() Direction { return p.direction }

// SetScroll sets the scroll position. A position in [0, 1) is a proportion
// of the scrollable range. A larger position is rounded to a line offset and
// clamped to the last line offset that still fills the panel; negative
// positions are treated as 0.
//
// If the resulting line offset changes, EventScroll and EventRedraw are
// emitted.
func (p *Panel) SetScroll(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrBadScroll
	}
	v = max(v, 0)
	offset := p.clampScroll(v)
	if v >= 1 {
		v = float64(offset)
	}
	p.scroll = v
	if offset != p.offset {
		p.offset = offset
		p.Emit(EventScroll, offset)
		p.Emit(EventRedraw)
	}
	return nil
}

// ScrollBy moves the scroll position by n lines.
func (p *Panel) ScrollBy(n int) {
	p.SetScroll(float64(max(p.offset+n, 0)))
}

// SetScrollDirection sets the scroll direction.
func (p *Panel) SetScrollDirection(d Direction) {
	if p.direction != d {
		p.direction = d
		p.Emit(EventRedraw)
	}
}

// Returns the largest line offset.
func (p *Panel) maxScroll() int {
	return max(len(p.lines)-max(p.height, 0), 0)
}

func (p *Panel) clampScroll(v float64) int {
	if v < 1 {
		return int(math.Round(v * float64(p.maxScroll())))
	}
	if m := p.maxScroll(); v >= float64(m) {
		return m
	}
	return int(math.Round(v))
}

// Returns the index of the first visible line.
func (p *Panel) firstLine() int {
	if p.direction == Up {
		return p.maxScroll() - p.offset
	}
	return p.offset
}
