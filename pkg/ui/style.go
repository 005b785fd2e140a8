// Package ui contains the color and text-attribute vocabulary shared by the
// terminal surface and the panels drawn on it.
package ui

import "strings"

// Style specifies how something (mostly a string) shall be displayed. A nil
// Foreground or Background leaves the corresponding color of the terminal
// untouched; use Default to reset it.
type Style struct {
	Foreground    Color
	Background    Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underlined    bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
}

// Reset is the SGR sequence resetting all attributes.
const Reset = "\033[m"

// SGR returns the SGR codes for the style, without the surrounding escape
// sequence.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Italic, "3")
	addIf(s.Underlined, "4")
	addIf(s.Blink, "5")
	addIf(s.Inverse, "7")
	addIf(s.Invisible, "8")
	addIf(s.Strikethrough, "9")
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	if s.Background != nil {
		sgr = append(sgr, s.Background.bgSGR())
	}

	return strings.Join(sgr, ";")
}

// Sequence returns the complete escape sequence applying the style. The
// sequence of the zero Style resets all attributes.
func (s Style) Sequence() string {
	return "\033[" + s.SGR() + "m"
}

// Fg returns a Style that only sets the foreground color.
func Fg(c Color) Style { return Style{Foreground: c} }

// Bg returns a Style that only sets the background color.
func Bg(c Color) Style { return Style{Background: c} }
