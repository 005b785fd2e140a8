package panel

import (
	"strings"

	"github.com/boxel-tui/boxel/pkg/border"
	"github.com/boxel-tui/boxel/pkg/reflow"
	"github.com/boxel-tui/boxel/pkg/term"
	"github.com/boxel-tui/boxel/pkg/ui"
)

// Draw paints the background of the padded content area, the border and the
// visible text, in that order. It draws nothing when the panel is not
// visible. Children are not drawn.
func (p *Panel) Draw() error {
	if !p.Visible() {
		return nil
	}
	if err := p.write(p.RenderBackground()); err != nil {
		return err
	}
	if err := p.DrawBorder(); err != nil {
		return err
	}
	return p.DrawText()
}

// DrawBorder emits EventDrawBorder, and paints the border unless a listener
// prevented the default action.
func (p *Panel) DrawBorder() error {
	if !p.Visible() || !p.Emit(EventDrawBorder).DefaultAllowed() {
		return nil
	}
	return p.write(p.RenderBorder())
}

// DrawText paints the visible window of the text.
func (p *Panel) DrawText() error {
	if !p.Visible() {
		return nil
	}
	return p.write(p.RenderText())
}

// Writes a frame, keeping the cursor where it was.
func (p *Panel) write(frame string) error {
	if frame == "" {
		return nil
	}
	_, err := p.Write([]byte(term.SeqSaveCursor + frame + term.SeqRestoreCursor))
	return err
}

// Returns the size of the content area plus padding.
func (p *Panel) paddedSize() (int, int) {
	return p.padding.Inline() + p.width, p.padding.Block() + p.height
}

// RenderBackground returns the output filling the content area and the
// padding with the background color.
func (p *Panel) RenderBackground() string {
	w, h := p.paddedSize()
	if w <= 0 || h <= 0 {
		return ""
	}
	x := p.parent.AbsX() + p.margin.Left() + p.border.Left().Width()
	y := p.parent.AbsY() + p.margin.Top() + p.border.Top().Width()
	var sb strings.Builder
	sb.WriteString(ui.Bg(p.bgColor).Sequence())
	blank := strings.Repeat(" ", w)
	for i := 0; i < h; i++ {
		sb.WriteString(term.CUP(x, y+i))
		sb.WriteString(blank)
	}
	sb.WriteString(ui.Reset)
	return sb.String()
}

// A border segment with its style applied.
type segment struct {
	tile  [][]string
	style string
}

func (s segment) row(i int) string {
	if i >= len(s.tile) {
		return ""
	}
	return s.style + strings.Join(s.tile[i], "")
}

// RenderBorder returns the output painting the border. The border is made of
// eight segments, four corners and four edges, tiled separately. Corners use
// the style and color overrides of the top and bottom edges when present.
func (p *Panel) RenderBorder() string {
	b := p.border
	top, right, bottom, left := b.Top(), b.Right(), b.Bottom(), b.Left()
	pw, ph := p.paddedSize()
	pw, ph = max(pw, 0), max(ph, 0)

	seg := func(w, h int, fill border.Fill, st border.Style, c ui.Color, j border.Joins) segment {
		return segment{
			border.Tile(w, h, fill, st.Glyphs(), j),
			ui.Style{Foreground: c, Background: p.bgColor}.Sequence(),
		}
	}
	tl := seg(left.Width(), top.Width(), top.Fill(),
		top.LeftCorner().StyleOr(top.Style()), top.LeftCorner().ColorOr(top.Color()),
		border.Joins{Right: true, Bottom: true})
	t := seg(pw, top.Width(), top.Fill(), top.Style(), top.Color(),
		border.Joins{Right: true, Left: true})
	tr := seg(right.Width(), top.Width(), top.Fill(),
		top.RightCorner().StyleOr(top.Style()), top.RightCorner().ColorOr(top.Color()),
		border.Joins{Bottom: true, Left: true})
	l := seg(left.Width(), ph, left.Fill(), left.Style(), left.Color(),
		border.Joins{Top: true, Bottom: true})
	r := seg(right.Width(), ph, right.Fill(), right.Style(), right.Color(),
		border.Joins{Top: true, Bottom: true})
	bl := seg(left.Width(), bottom.Width(), bottom.Fill(),
		bottom.LeftCorner().StyleOr(bottom.Style()), bottom.LeftCorner().ColorOr(bottom.Color()),
		border.Joins{Top: true, Right: true})
	bm := seg(pw, bottom.Width(), bottom.Fill(), bottom.Style(), bottom.Color(),
		border.Joins{Right: true, Left: true})
	br := seg(right.Width(), bottom.Width(), bottom.Fill(),
		bottom.RightCorner().StyleOr(bottom.Style()), bottom.RightCorner().ColorOr(bottom.Color()),
		border.Joins{Top: true, Left: true})

	var rows []string
	for i := 0; i < top.Width(); i++ {
		rows = append(rows, tl.row(i)+t.row(i)+tr.row(i))
	}
	for i := 0; i < ph; i++ {
		rows = append(rows, l.row(i)+term.CUF(pw)+r.row(i))
	}
	for i := 0; i < bottom.Width(); i++ {
		rows = append(rows, bl.row(i)+bm.row(i)+br.row(i))
	}
	if len(rows) == 0 || left.Width()+pw+right.Width() == 0 {
		return ""
	}

	x := p.parent.AbsX() + p.margin.Left()
	y := p.parent.AbsY() + p.margin.Top()
	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(term.CUP(x, y+i))
		sb.WriteString(row)
	}
	sb.WriteString(ui.Reset)
	return sb.String()
}

// RenderText returns the output painting the visible window of the text. The
// window starts with the style in effect at its first line, so text colored
// by a sequence that has been scrolled away keeps its color.
func (p *Panel) RenderText() string {
	if p.height <= 0 || len(p.lines) == 0 {
		return ""
	}
	first := min(p.firstLine(), len(p.lines))
	last := min(first+p.height, len(p.lines))
	x, y := p.AbsX(), p.AbsY()
	var sb strings.Builder
	sb.WriteString(p.textStyle().Sequence())
	sb.WriteString(reflow.StyleBefore(p.lines, first))
	for i, line := range p.lines[first:last] {
		sb.WriteString(term.CUP(x, y+i))
		sb.WriteString(line)
	}
	sb.WriteString(ui.Reset)
	return sb.String()
}
