package term

import (
	"fmt"
	"math"
	"strconv"
)

// Escape sequences without parameters.
const (
	SeqSaveCursor    = "\0337"
	SeqRestoreCursor = "\0338"
	SeqHome          = "\033[H"
	SeqEraseScreen   = "\033[2J"
	SeqEraseLine     = "\033[2K"
)

// CUP returns the sequence moving the cursor to a 1-based position.
func CUP(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// CUF returns the sequence moving the cursor n columns forward. It is empty
// when n is not positive.
func CUF(n int) string { return csiN(n, 'C') }

// CUB returns the sequence moving the cursor n columns backward.
func CUB(n int) string { return csiN(n, 'D') }

// CUU returns the sequence moving the cursor n rows up.
func CUU(n int) string { return csiN(n, 'A') }

// CUD returns the sequence moving the cursor n rows down.
func CUD(n int) string { return csiN(n, 'B') }

func csiN(n int, final byte) string {
	if n <= 0 {
		return ""
	}
	return "\033[" + strconv.Itoa(n) + string(final)
}

// SeqAltBuffer returns the sequence switching to or from the alternate
// screen buffer.
func SeqAltBuffer(on bool) string { return decset(1049, on) }

// SeqCursorVisible returns the sequence showing or hiding the cursor.
func SeqCursorVisible(on bool) string { return decset(25, on) }

func decset(mode int, on bool) string {
	if on {
		return fmt.Sprintf("\033[?%dh", mode)
	}
	return fmt.Sprintf("\033[?%dl", mode)
}

// DECSCUSR returns the sequence setting the cursor style. Codes range from 0
// to 6; see CursorShapes.
func DECSCUSR(code int) string {
	return "\033[" + strconv.Itoa(code) + " q"
}

// CursorShapes maps names of cursor styles to DECSCUSR codes.
var CursorShapes = map[string]int{
	"blinking-block":     0,
	"default":            1,
	"block":              2,
	"blinking-underline": 3,
	"underline":          4,
	"blinking-bar":       5,
	"bar":                6,
}

// CursorStyleError is returned for invalid cursor style codes or names.
type CursorStyleError struct {
	Code int
	Name string
}

func (e *CursorStyleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid cursor shape %q", e.Name)
	}
	return fmt.Sprintf("invalid cursor style code %d, must be in [0, 6]", e.Code)
}

// PositionError is returned for invalid absolute cursor positions.
type PositionError struct {
	Col, Row float64
	Reason   string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position (%v, %v): %s", e.Col, e.Row, e.Reason)
}

// Position resolves an absolute position to 1-based cell coordinates on a
// screen of the given size. Values in [0, 1) are fractions of the screen, so
// that 0 is the first cell and values close to 1 the last one. Other values
// must be integers.
func Position(col, row float64, cols, rows int) (int, int, error) {
	if col < 0 || row < 0 {
		return 0, 0, &PositionError{col, row, "absolute position cannot be negative"}
	}
	c, reason := resolve(col, cols)
	if reason == "" {
		var r int
		if r, reason = resolve(row, rows); reason == "" {
			return c, r, nil
		}
	}
	return 0, 0, &PositionError{col, row, reason}
}

func resolve(v float64, size int) (int, string) {
	switch {
	case v < 1:
		return int(math.Round(v*float64(size-1) + 1)), ""
	case v != math.Trunc(v):
		return 0, "position cannot be fractional"
	case v > math.MaxInt32:
		return 0, "position out of range"
	}
	return int(v), ""
}
