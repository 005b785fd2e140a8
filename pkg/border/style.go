// Package border draws box-drawing frames out of glyph tables.
package border

import "fmt"

// Glyphs is the set of glyphs a border style draws with.
type Glyphs struct {
	Empty       string
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Top         string
	Right       string
	Bottom      string
	Left        string
	Center      string
}

// Table returns the glyphs indexed by connection mask (see Mask).
func (g Glyphs) Table() [16]string {
	return [16]string{
		g.Empty,       // ....
		g.Horizontal,  // ...W
		g.Vertical,    // ..S.
		g.TopRight,    // ..SW
		g.Horizontal,  // .E..
		g.Horizontal,  // .E.W
		g.TopLeft,     // .ES.
		g.Top,         // .ESW
		g.Vertical,    // N...
		g.BottomRight, // N..W
		g.Vertical,    // N.S.
		g.Right,       // N.SW
		g.BottomLeft,  // NE..
		g.Bottom,      // NE.W
		g.Left,        // NES.
		g.Center,      // NESW
	}
}

// Pick returns the glyph for a connection mask. Only the low four bits of
// mask are used.
func (g Glyphs) Pick(mask int) string {
	return g.Table()[mask&0xf]
}

// Mask packs the connected sides of a cell into a 4-bit mask, north being the
// most significant bit.
func Mask(n, e, s, w bool) int {
	return b2i(n)<<3 | b2i(e)<<2 | b2i(s)<<1 | b2i(w)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

type styleKind uint8

const (
	line styleKind = iota
	thick
	double
	round
	solid
	none
	custom
)

// Style is a border style: one of the named catalog styles or a custom glyph
// table. Styles are comparable. The zero Style is Line.
type Style struct {
	kind   styleKind
	glyphs Glyphs
}

// The catalog styles.
var (
	Line   = Style{kind: line}
	Thick  = Style{kind: thick}
	Double = Style{kind: double}
	Round  = Style{kind: round}
	Solid  = Style{kind: solid}
	None   = Style{kind: none}
)

var catalog = map[styleKind]struct {
	name   string
	glyphs Glyphs
}{
	line:   {"line", Glyphs{" ", "─", "│", "┌", "┐", "└", "┘", "┬", "┤", "┴", "├", "┼"}},
	thick:  {"thick", Glyphs{" ", "━", "┃", "┏", "┓", "┗", "┛", "┳", "┫", "┻", "┣", "╋"}},
	double: {"double", Glyphs{" ", "═", "║", "╔", "╗", "╚", "╝", "╦", "╣", "╩", "╠", "╬"}},
	round:  {"round", Glyphs{" ", "─", "│", "╭", "╮", "╰", "╯", "┬", "┤", "┴", "├", "┼"}},
	solid:  {"solid", Glyphs{" ", "█", "█", "█", "█", "█", "█", "█", "█", "█", "█", "█"}},
	none:   {"none", Glyphs{" ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " "}},
}

// Names lists the names of the catalog styles.
var Names = []string{"line", "thick", "double", "round", "solid", "none"}

// Custom returns a style drawing with the given glyphs.
func Custom(g Glyphs) Style { return Style{kind: custom, glyphs: g} }

// StyleError is returned by ParseStyle for unknown style names.
type StyleError struct {
	Name string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("no such border style: %q", e.Name)
}

// ParseStyle returns the catalog style with the given name.
func ParseStyle(name string) (Style, error) {
	for kind, entry := range catalog {
		if entry.name == name {
			return Style{kind: kind}, nil
		}
	}
	return Style{}, &StyleError{name}
}

// Name returns the catalog name of the style, or "custom".
func (s Style) Name() string {
	if s.kind == custom {
		return "custom"
	}
	return catalog[s.kind].name
}

// Glyphs returns the glyph table of the style.
func (s Style) Glyphs() Glyphs {
	if s.kind == custom {
		return s.glyphs
	}
	return catalog[s.kind].glyphs
}

func (s Style) String() string { return s.Name() }

// Fill is the fill mode of a border segment.
type Fill uint8

const (
	// FillSolid draws the full grid of a segment.
	FillSolid Fill = iota
	// FillLines only draws the sides of a segment that join a neighbor.
	FillLines
)

func (f Fill) String() string {
	switch f {
	case FillSolid:
		return "solid"
	case FillLines:
		return "lines"
	default:
		return fmt.Sprintf("Fill(%d)", uint8(f))
	}
}

// FillError is returned by ParseFill for unknown fill names.
type FillError struct {
	Name string
}

func (e *FillError) Error() string {
	return fmt.Sprintf("no such border fill: %q", e.Name)
}

// ParseFill parses "solid" or "lines".
func ParseFill(name string) (Fill, error) {
	switch name {
	case "solid":
		return FillSolid, nil
	case "lines":
		return FillLines, nil
	}
	return 0, &FillError{name}
}
