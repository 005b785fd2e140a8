package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents a color. It is a closed set of variants: Default, the
// eight ANSI colors, their bright counterparts, the 256-color xterm palette
// and 24-bit true colors. All variants are comparable with ==.
type Color interface {
	String() string
	fgSGR() string
	bgSGR() string
}

// Default is the terminal's default color. Unlike a nil Color, which leaves
// the current color untouched, Default explicitly resets it.
var Default Color = defaultColor{}

// Builtin ANSI colors.
var (
	Black   Color = ansiColor(0)
	Red     Color = ansiColor(1)
	Green   Color = ansiColor(2)
	Yellow  Color = ansiColor(3)
	Blue    Color = ansiColor(4)
	Magenta Color = ansiColor(5)
	Cyan    Color = ansiColor(6)
	White   Color = ansiColor(7)

	BrightBlack   Color = ansiBrightColor(0)
	BrightRed     Color = ansiBrightColor(1)
	BrightGreen   Color = ansiBrightColor(2)
	BrightYellow  Color = ansiBrightColor(3)
	BrightBlue    Color = ansiBrightColor(4)
	BrightMagenta Color = ansiBrightColor(5)
	BrightCyan    Color = ansiBrightColor(6)
	BrightWhite   Color = ansiBrightColor(7)
)

// XTerm256Color returns a color from the xterm 256-color palette.
func XTerm256Color(i uint8) Color { return xterm256Color(i) }

// TrueColor returns a 24-bit true color.
func TrueColor(r, g, b uint8) Color { return trueColor{r, g, b} }

// Index returns the palette color with the given index, which must be in the
// range [0, 255].
func Index(i int) (Color, error) {
	if i < 0 || i > 255 {
		return nil, &ColorError{strconv.Itoa(i), "palette index out of range [0, 255]"}
	}
	return xterm256Color(uint8(i)), nil
}

var colorNames = []string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

var colorByName = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,

	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

type defaultColor struct{}

func (defaultColor) String() string { return "default" }
func (defaultColor) fgSGR() string  { return "39" }
func (defaultColor) bgSGR() string  { return "49" }

type ansiColor uint8

func (c ansiColor) String() string { return colorNames[c] }
func (c ansiColor) fgSGR() string  { return strconv.Itoa(30 + int(c)) }
func (c ansiColor) bgSGR() string  { return strconv.Itoa(40 + int(c)) }

type ansiBrightColor uint8

func (c ansiBrightColor) String() string { return "bright-" + colorNames[c] }
func (c ansiBrightColor) fgSGR() string  { return strconv.Itoa(90 + int(c)) }
func (c ansiBrightColor) bgSGR() string  { return strconv.Itoa(100 + int(c)) }

type xterm256Color uint8

func (c xterm256Color) String() string { return "color" + strconv.Itoa(int(c)) }
func (c xterm256Color) fgSGR() string  { return "38;5;" + strconv.Itoa(int(c)) }
func (c xterm256Color) bgSGR() string  { return "48;5;" + strconv.Itoa(int(c)) }

type trueColor struct{ r, g, b uint8 }

func (c trueColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c trueColor) fgSGR() string { return "38;2;" + c.rgbSGR() }
func (c trueColor) bgSGR() string { return "48;2;" + c.rgbSGR() }

func (c trueColor) rgbSGR() string {
	return fmt.Sprintf("%d;%d;%d", c.r, c.g, c.b)
}

// ColorError is returned when a color cannot be parsed.
type ColorError struct {
	Input  string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// ParseColor parses a color. Accepted forms are:
//
//   - "default";
//   - a color name ("red") optionally prefixed with "bright-";
//   - a palette index, either bare ("208") or prefixed ("color208");
//   - a hex RGB value, "#RRGGBB" or the shorthand "#RGB".
func ParseColor(s string) (Color, error) {
	if s == "default" {
		return Default, nil
	}
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	digits := strings.TrimPrefix(s, "color")
	if digits != "" && isDigits(digits) {
		i, err := strconv.Atoi(digits)
		if err != nil || i > 255 {
			return nil, &ColorError{s, "palette index out of range [0, 255]"}
		}
		return xterm256Color(uint8(i)), nil
	}
	if strings.HasPrefix(s, "bright-") {
		return nil, &ColorError{s, "unknown bright color name"}
	}
	return nil, &ColorError{s, "unknown color name"}
}

func parseHex(s string) (Color, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return nil, &ColorError{s, "malformed hex digits"}
			}
			rgb[i] = uint8(v * 0x11)
		}
		return trueColor{rgb[0], rgb[1], rgb[2]}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, &ColorError{s, "malformed hex digits"}
		}
		return trueColor{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	return nil, &ColorError{s, "hex colors must have 3 or 6 digits"}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
