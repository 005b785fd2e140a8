// Package panel implements panels, the rectangular layout nodes of a boxel
// screen.
//
// A panel has a margin, a border and a padding around its content, and lays
// itself out inside its parent, which is either another panel or the terminal
// surface. Panels subscribe to the events of their parent when they are
// created; a resize of the parent cascades down to every panel whose content
// size changes.
//
// Like the rest of the event tree, panels are not safe for concurrent use. Code
// running outside event listeners must access them through the Do method of the
// terminal surface.
package panel

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/boxel-tui/boxel/pkg/box"
	"github.com/boxel-tui/boxel/pkg/event"
	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/reflow"
	"github.com/boxel-tui/boxel/pkg/term"
	"github.com/boxel-tui/boxel/pkg/ui"
)

var logger = logutil.GetLogger("[panel] ")

// Event keys.
const (
	// EventResize is emitted with the new width and height when the content
	// size of a panel changes. It shares its key with the resize event of the
	// terminal surface, so panels treat both kinds of parents alike.
	EventResize = term.EventResize
	// EventRedraw is emitted when a cosmetic property of a panel or one of its
	// ancestors changes.
	EventRedraw = box.EventRedraw
	// EventScroll is emitted with the new line offset when the scroll position
	// changes.
	EventScroll event.Key = "scroll"
	// EventDrawBorder is emitted before the border is drawn. Calling
	// PreventDefault on the event suppresses the built-in border.
	EventDrawBorder event.Key = "draw-border"
)

// Unbounded is the default maximum width and height.
const Unbounded = math.MaxInt

// ErrBadScroll is returned when setting a scroll position that is not a
// finite number.
var ErrBadScroll = errors.New("scroll position must be a finite number")

// Container is the parent of a panel.
type Container interface {
	On(key event.Key, fn event.Listener, opts ...event.Option) *event.Subscription
	Domain() *event.Domain
	// Width and Height return the size of the content area.
	Width() int
	Height() int
	// AbsX and AbsY return the 1-based screen position of the content area.
	AbsX() int
	AbsY() int
	io.Writer
}

var (
	_ Container = (*Panel)(nil)
	_ Container = (*term.Surface)(nil)
)

// Panel is a rectangular layout node.
type Panel struct {
	*event.Emitter
	parent Container

	margin  *box.Metric
	padding *box.Metric
	border  *box.Border

	minWidth, minHeight int
	maxWidth, maxHeight int

	color   ui.Color
	bgColor ui.Color

	text      string
	wordWrap  bool
	tabSize   int
	scroll    float64
	offset    int
	direction Direction

	lines         []string
	width, height int

	subs     []*event.Subscription
	children []*Panel
	closed   bool
}

// New creates a panel inside parent. The panel stays bound to parent until it
// is closed.
func New(parent Container) *Panel {
	d := parent.Domain()
	p := &Panel{
		Emitter: event.New(d),
		parent:  parent,
		margin:  box.NewMetric(d),
		padding: box.NewMetric(d),
		border:  box.NewBorder(d),

		minWidth: 1, minHeight: 1,
		maxWidth: Unbounded, maxHeight: Unbounded,

		color: ui.Default, bgColor: ui.Default,
		tabSize: 4, direction: Down,
	}

	// A dispatch already under way still reaches a panel closed by an earlier
	// listener.
	relayout := func(*event.Event, ...any) {
		if !p.closed {
			p.relayout()
		}
	}
	redraw := func(*event.Event, ...any) {
		if !p.closed {
			p.Emit(EventRedraw)
		}
	}
	p.subs = []*event.Subscription{
		parent.On(EventResize, relayout),
		parent.On(EventRedraw, redraw),
		p.margin.On(box.EventChange, relayout),
		p.padding.On(box.EventChange, relayout),
		p.border.On(box.EventResize, relayout),
		p.border.On(box.EventRedraw, redraw),
	}
	if pp, ok := parent.(*Panel); ok {
		pp.children = append(pp.children, p)
	}

	p.updateSize()
	p.updateText()
	return p
}

// Parent returns the container of the panel.
func (p *Panel) Parent() Container { return p.parent }

// Children returns the panels created inside this panel that are not closed.
func (p *Panel) Children() []*Panel { return append([]*Panel(nil), p.children...) }

func (p *Panel) Margin() *box.Metric  { return p.margin }
func (p *Panel) Padding() *box.Metric { return p.padding }
func (p *Panel) Border() *box.Border  { return p.border }

// Width returns the width of the content area. It may be negative when the
// parent is too small to hold the margin, border and padding.
func (p *Panel) Width() int { return p.width }

// Height returns the height of the content area, which may be negative.
func (p *Panel) Height() int { return p.height }

// AbsX returns the screen column of the content area.
func (p *Panel) AbsX() int {
	return p.parent.AbsX() + p.margin.Left() + p.border.Left().Width() + p.padding.Left()
}

// AbsY returns the screen row of the content area.
func (p *Panel) AbsY() int {
	return p.parent.AbsY() + p.margin.Top() + p.border.Top().Width() + p.padding.Top()
}

// Write writes to the terminal surface the panel is on.
func (p *Panel) Write(b []byte) (int, error) { return p.parent.Write(b) }

// Recomputes the size and emits a resize event if it changed.
func (p *Panel) relayout() {
	if p.updateSize() {
		p.updateText()
		p.Emit(EventResize, p.width, p.height)
	}
}

// Updates the content size from the parent's size, and returns whether it
// changed.
func (p *Panel) updateSize() bool {
	w := p.parent.Width() - p.margin.Inline() - p.border.Inline() - p.padding.Inline()
	h := p.parent.Height() - p.margin.Block() - p.border.Block() - p.padding.Block()
	w, h = min(w, p.maxWidth), min(h, p.maxHeight)
	if w == p.width && h == p.height {
		return false
	}
	p.width, p.height = w, h
	return true
}

// Reflows the text and clamps the scroll position to the new lines.
func (p *Panel) updateText() {
	p.lines = reflow.Fit(p.text, reflow.Options{
		Width:        max(p.width, 0),
		WordWrap:     p.wordWrap,
		TabSize:      p.tabSize,
		DefaultStyle: p.textStyle().Sequence(),
	})
	p.offset = p.clampScroll(p.scroll)
}

func (p *Panel) textStyle() ui.Style {
	return ui.Style{Foreground: p.color, Background: p.bgColor}
}

func (p *Panel) MinWidth() int  { return p.minWidth }
func (p *Panel) MinHeight() int { return p.minHeight }
func (p *Panel) MaxWidth() int  { return p.maxWidth }
func (p *Panel) MaxHeight() int { return p.maxHeight }

// SetMinWidth sets the width below which the panel is not drawn.
func (p *Panel) SetMinWidth(v int) { p.setRedraw(&p.minWidth, v) }

// SetMinHeight sets the height below which the panel is not drawn.
func (p *Panel) SetMinHeight(v int) { p.setRedraw(&p.minHeight, v) }

// SetMaxWidth sets the maximum width of the content area.
func (p *Panel) SetMaxWidth(v int) { p.setRelayout(&p.maxWidth, v) }

// SetMaxHeight sets the maximum height of the content area.
func (p *Panel) SetMaxHeight(v int) { p.setRelayout(&p.maxHeight, v) }

func (p *Panel) setRedraw(f *int, v int) {
	if *f != v {
		*f = v
		p.Emit(EventRedraw)
	}
}

func (p *Panel) setRelayout(f *int, v int) {
	if *f != v {
		*f = v
		p.relayout()
	}
}

// Visible returns whether the content area is at least as large as the
// minimum size. Invisible panels draw nothing.
func (p *Panel) Visible() bool {
	return p.width >= max(0, p.minWidth) && p.height >= max(0, p.minHeight)
}

func (p *Panel) Color() ui.Color   { return p.color }
func (p *Panel) BgColor() ui.Color { return p.bgColor }

// SetColor sets the text color. A nil color means ui.Default.
func (p *Panel) SetColor(c ui.Color) { p.setColor(&p.color, c) }

// SetBgColor sets the background color. A nil color means ui.Default.
func (p *Panel) SetBgColor(c ui.Color) { p.setColor(&p.bgColor, c) }

func (p *Panel) setColor(f *ui.Color, c ui.Color) {
	if c == nil {
		c = ui.Default
	}
	if *f != c {
		*f = c
		p.updateText()
		p.Emit(EventRedraw)
	}
}

func (p *Panel) Text() string   { return p.text }
func (p *Panel) WordWrap() bool { return p.wordWrap }
func (p *Panel) TabSize() int   { return p.tabSize }

// SetText sets the text content. It may contain SGR sequences.
func (p *Panel) SetText(s string) {
	if p.text != s {
		p.text = s
		p.textChanged()
	}
}

// SetWordWrap sets whether long lines are broken at spaces.
func (p *Panel) SetWordWrap(v bool) {
	if p.wordWrap != v {
		p.wordWrap = v
		p.textChanged()
	}
}

// SetTabSize sets the number of spaces a tab expands to. Tabs are dropped
// when the size is 0.
func (p *Panel) SetTabSize(n int) error {
	if n < 0 {
		return fmt.Errorf("negative tab size %d", n)
	}
	if p.tabSize != n {
		p.tabSize = n
		p.textChanged()
	}
	return nil
}

func (p *Panel) textChanged() {
	old := p.offset
	p.updateText()
	if p.offset != old {
		p.Emit(EventScroll, p.offset)
	}
	p.Emit(EventRedraw)
}

// Lines returns the reflowed text.
func (p *Panel) Lines() []string { return append([]string(nil), p.lines...) }

// Close detaches the panel from its parent and closes its children. A closed
// panel no longer reacts to events of its parent. Closing a panel twice is a
// no-op.
func (p *Panel) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, child := range p.Children() {
		child.Close()
	}
	for _, sub := range p.subs {
		sub.Remove()
	}
	p.subs = nil
	p.OffAll()
	if pp, ok := p.parent.(*Panel); ok {
		for i, child := range pp.children {
			if child == p {
				pp.children = append(pp.children[:i], pp.children[i+1:]...)
				break
			}
		}
	}
	logger.Printf("closed panel %dx%d at (%d, %d)", p.width, p.height, p.AbsX(), p.AbsY())
}

// Closed returns whether Close has been called.
func (p *Panel) Closed() bool { return p.closed }
