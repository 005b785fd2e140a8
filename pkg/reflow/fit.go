// Package reflow breaks text into lines of a display width.
//
// The text may contain control sequences (ESC [ ... final byte), mostly SGR
// styling. They take no space on the screen, and stay attached to the
// character following them when lines are broken.
package reflow

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Unbounded is a line width that never causes a break.
const Unbounded = math.MaxInt

// Placeholder replaces control characters in the output.
const Placeholder = '\uFFFD'

// Options controls Fit.
type Options struct {
	// Width of all lines but the first, in cells.
	Width int
	// Width of the first line. If zero, Width is used.
	FirstWidth int
	// Whether to break lines at spaces. When false, lines are broken right
	// where they are full.
	WordWrap bool
	// Number of spaces a tab expands to. A tab is never split across lines.
	TabSize int
	// Style written after every reset sequence, so that resets fall back to
	// the style of the surrounding text rather than the terminal default.
	DefaultStyle string
}

var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// A screen cell, or a tab. The prefix holds the control sequences written
// before the text.
type cell struct {
	prefix string
	text   string
	width  int
	space  bool
}

type line struct {
	cells []cell
	// Control sequences after the last cell.
	suffix string
}

func (l *line) String() string {
	var sb strings.Builder
	for _, c := range l.cells {
		sb.WriteString(c.prefix)
		sb.WriteString(c.text)
	}
	sb.WriteString(l.suffix)
	return sb.String()
}

type fitter struct {
	opts  Options
	lines []line
	cur   line
	// Index of the cell the next character is written to. It is less than
	// len(cur.cells) after a carriage return.
	cursor int
	// Display width of the cells before the cursor, and of the whole current
	// line.
	cursorCol, lineCol int
	// Control sequences not yet attached to a cell.
	pending string
}

// Fit breaks text into lines that fit the widths given in opts.
//
// Line feeds end lines. A carriage return moves back to the start of the
// current line, and the following characters overwrite it. Other control
// characters are replaced by Placeholder. A space that does not fit is dropped
// and ends the line; a character wider than the line is dropped altogether.
func Fit(text string, opts Options) []string {
	if opts.FirstWidth == 0 {
		opts.FirstWidth = opts.Width
	}
	f := &fitter{opts: opts}
	for i := 0; i < len(text); {
		if n := tokenLen(text[i:]); n > 0 {
			tok := text[i : i+n]
			f.pending += tok
			i += n
			if isReset(tok) && !strings.HasPrefix(text[i:], opts.DefaultStyle) {
				f.pending += opts.DefaultStyle
			}
			continue
		}
		r, n := utf8.DecodeRuneInString(text[i:])
		i += n
		switch {
		case r == '\n':
			f.endLine()
		case r == '\r':
			f.cursor, f.cursorCol = 0, 0
		case r == '\t':
			if opts.TabSize > 0 {
				f.put(cell{text: strings.Repeat(" ", opts.TabSize), width: opts.TabSize, space: true})
			}
		case isControl(r) || r == utf8.RuneError && n == 1:
			f.put(cell{text: string(Placeholder), width: 1})
		default:
			w := widthCond.RuneWidth(r)
			if w == 0 && f.cursor > 0 {
				f.cur.cells[f.cursor-1].text += string(r)
				continue
			}
			f.put(cell{text: string(r), width: w, space: r == ' '})
		}
	}
	f.cur.suffix += f.pending
	f.lines = append(f.lines, f.cur)

	out := make([]string, len(f.lines))
	for i := range f.lines {
		out[i] = f.lines[i].String()
	}
	return out
}

func isControl(r rune) bool {
	return r < 0x20 || 0x7f <= r && r < 0xa0
}

func (f *fitter) width() int {
	if len(f.lines) == 0 {
		return f.opts.FirstWidth
	}
	return f.opts.Width
}

// Ends the current line at a line feed.
func (f *fitter) endLine() {
	f.cur.suffix += f.pending
	f.pending = ""
	f.breakLine()
}

// Starts a new line without moving pending control sequences, which go to the
// next cell.
func (f *fitter) breakLine() {
	f.lines = append(f.lines, f.cur)
	f.cur = line{}
	f.cursor, f.cursorCol, f.lineCol = 0, 0, 0
}

// Writes a cell at the cursor, breaking the line if needed.
func (f *fitter) put(c cell) {
	lineWidth := f.width()
	if c.width > lineWidth {
		f.pending += c.prefix
		return
	}
	if f.cursorCol+c.width <= lineWidth {
		c.prefix += f.pending
		f.pending = ""
		if f.cursor < len(f.cur.cells) {
			old := f.cur.cells[f.cursor]
			c.prefix = old.prefix + c.prefix
			f.cur.cells[f.cursor] = c
			f.lineCol += c.width - old.width
			// Only cells after the cursor can overflow.
			for f.lineCol > lineWidth {
				last := len(f.cur.cells) - 1
				f.lineCol -= f.cur.cells[last].width
				f.cur.cells = f.cur.cells[:last]
			}
		} else {
			f.cur.cells = append(f.cur.cells, c)
			f.lineCol += c.width
		}
		f.cursor++
		f.cursorCol += c.width
		return
	}

	// The cell does not fit. Cells after the cursor go away with the rest of
	// the line being overwritten.
	f.cur.cells = f.cur.cells[:f.cursor]
	f.lineCol = f.cursorCol
	if c.space {
		f.pending = c.prefix + f.pending
		f.breakLine()
		return
	}
	var moved []cell
	if f.opts.WordWrap {
		for i := len(f.cur.cells) - 1; i >= 0; i-- {
			if f.cur.cells[i].space {
				moved = append(moved, f.cur.cells[i+1:]...)
				if len(moved) > 0 {
					moved[0].prefix = f.cur.cells[i].prefix + moved[0].prefix
				} else {
					c.prefix = f.cur.cells[i].prefix + c.prefix
				}
				f.cur.cells = f.cur.cells[:i]
				break
			}
		}
	}
	pending := f.pending
	f.pending = ""
	f.breakLine()
	for _, m := range moved {
		f.put(m)
	}
	f.pending += pending
	f.put(c)
}
