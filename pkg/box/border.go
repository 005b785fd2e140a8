package box

import (
	"errors"
	"fmt"
	"slices"

	"github.com/boxel-tui/boxel/pkg/border"
	"github.com/boxel-tui/boxel/pkg/event"
	"github.com/boxel-tui/boxel/pkg/ui"
)

// ErrNegativeWidth is returned when setting a negative border width.
var ErrNegativeWidth = errors.New("negative border width")

// Border holds the four edges of a border. The top and bottom edges are
// blocks, which also carry the corner overrides.
//
// All edges emit on the Border: width changes emit EventResize, other changes
// emit EventRedraw.
type Border struct {
	*event.Emitter
	top, bottom *Block
	right, left *Edge
}

// NewBorder creates a Border whose edges are 1 cell wide, drawn with the line
// style, solid fill and the default color.
func NewBorder(d *event.Domain) *Border {
	b := &Border{Emitter: event.New(d)}
	b.top = newBlock(b)
	b.bottom = newBlock(b)
	b.right = newEdge(b)
	b.left = newEdge(b)
	return b
}

func (b *Border) Top() *Block    { return b.top }
func (b *Border) Right() *Edge   { return b.right }
func (b *Border) Bottom() *Block { return b.bottom }
func (b *Border) Left() *Edge    { return b.left }

// Inline returns the sum of the widths of the left and right edges.
func (b *Border) Inline() int { return b.left.width + b.right.width }

// Block returns the sum of the widths of the top and bottom edges.
func (b *Border) Block() int { return b.top.width + b.bottom.width }

// All returns the sum of the widths of all edges.
func (b *Border) All() int { return b.Inline() + b.Block() }

// SetInline applies spec to the left and right edges.
func (b *Border) SetInline(spec EdgeSpec) error {
	return b.group(func() error {
		return errors.Join(b.left.Set(spec), b.right.Set(spec))
	})
}

// SetBlock applies spec to the top and bottom edges.
func (b *Border) SetBlock(spec EdgeSpec) error {
	return b.group(func() error {
		return errors.Join(b.top.Set(spec), b.bottom.Set(spec))
	})
}

// SetAll applies spec to all edges.
func (b *Border) SetAll(spec EdgeSpec) error {
	return b.group(func() error {
		return errors.Join(b.SetBlock(spec), b.SetInline(spec))
	})
}

// Runs fn with the border suppressed, and emits at most one event for all
// changes made by fn: EventResize if any width changed, EventRedraw
// otherwise.
func (b *Border) group(fn func() error) error {
	var err error
	captured := b.Suppress(func() { err = fn() })[0]
	switch {
	case slices.Contains(captured, EventResize):
		b.Emit(EventResize)
	case slices.Contains(captured, EventRedraw):
		b.Emit(EventRedraw)
	}
	return err
}

// EdgeSpec describes a partial update of an edge. Nil fields are left
// untouched.
type EdgeSpec struct {
	Width *int
	Style *border.Style
	Fill  *border.Fill
	Color ui.Color
}

// Edge is one side of a Border.
type Edge struct {
	owner *Border
	width int
	style border.Style
	fill  border.Fill
	color ui.Color
}

func newEdge(owner *Border) *Edge {
	return &Edge{owner, 1, border.Line, border.FillSolid, ui.Default}
}

func (e *Edge) Width() int          { return e.width }
func (e *Edge) Style() border.Style { return e.style }
func (e *Edge) Fill() border.Fill   { return e.fill }
func (e *Edge) Color() ui.Color     { return e.color }

// SetWidth sets the width of the edge, in cells.
func (e *Edge) SetWidth(v int) error {
	if v < 0 {
		return fmt.Errorf("set width to %d: %w", v, ErrNegativeWidth)
	}
	if e.width != v {
		e.width = v
		e.owner.Emit(EventResize)
	}
	return nil
}

func (e *Edge) SetStyle(v border.Style) {
	if e.style != v {
		e.style = v
		e.owner.Emit(EventRedraw)
	}
}

func (e *Edge) SetFill(v border.Fill) {
	if e.fill != v {
		e.fill = v
		e.owner.Emit(EventRedraw)
	}
}

// SetColor sets the color of the edge. A nil color is the default color.
func (e *Edge) SetColor(v ui.Color) {
	if v == nil {
		v = ui.Default
	}
	if e.color != v {
		e.color = v
		e.owner.Emit(EventRedraw)
	}
}

// Set applies the non-nil fields of spec. An invalid width leaves the edge
// untouched.
func (e *Edge) Set(spec EdgeSpec) error {
	if spec.Width != nil && *spec.Width < 0 {
		return fmt.Errorf("set width to %d: %w", *spec.Width, ErrNegativeWidth)
	}
	return e.owner.group(func() error {
		if spec.Width != nil {
			e.SetWidth(*spec.Width)
		}
		if spec.Style != nil {
			e.SetStyle(*spec.Style)
		}
		if spec.Fill != nil {
			e.SetFill(*spec.Fill)
		}
		if spec.Color != nil {
			e.SetColor(spec.Color)
		}
		return nil
	})
}

// Block is a top or bottom edge. It carries the overrides of its two corners.
type Block struct {
	Edge
	leftCorner, rightCorner *Corner
}

func newBlock(owner *Border) *Block {
	b := &Block{Edge: *newEdge(owner)}
	b.leftCorner = &Corner{owner: owner}
	b.rightCorner = &Corner{owner: owner}
	return b
}

// LeftCorner returns the overrides of the corner at the left end of the block.
func (b *Block) LeftCorner() *Corner { return b.leftCorner }

// RightCorner returns the overrides of the corner at the right end of the
// block.
func (b *Block) RightCorner() *Corner { return b.rightCorner }

// Corner holds the style and color overrides of a corner. Unset overrides
// inherit from the block the corner belongs to.
type Corner struct {
	owner *Border
	style *border.Style
	color ui.Color
}

// Style returns the style override, or nil if the style is inherited.
func (c *Corner) Style() *border.Style { return c.style }

// Color returns the color override, or nil if the color is inherited.
func (c *Corner) Color() ui.Color { return c.color }

// StyleOr returns the style override, or def if there is none.
func (c *Corner) StyleOr(def border.Style) border.Style {
	if c.style == nil {
		return def
	}
	return *c.style
}

// ColorOr returns the color override, or def if there is none.
func (c *Corner) ColorOr(def ui.Color) ui.Color {
	if c.color == nil {
		return def
	}
	return c.color
}

// SetStyle sets the style override. Nil makes the style inherited.
func (c *Corner) SetStyle(v *border.Style) {
	if c.style == nil && v == nil || c.style != nil && v != nil && *c.style == *v {
		return
	}
	if v != nil {
		style := *v
		v = &style
	}
	c.style = v
	c.owner.Emit(EventRedraw)
}

// SetColor sets the color override. Nil makes the color inherited.
func (c *Corner) SetColor(v ui.Color) {
	if c.color != v {
		c.color = v
		c.owner.Emit(EventRedraw)
	}
}

// Set sets both overrides, emitting at most one event.
func (c *Corner) Set(style *border.Style, color ui.Color) {
	c.owner.group(func() error {
		c.SetStyle(style)
		c.SetColor(color)
		return nil
	})
}
