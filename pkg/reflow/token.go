package reflow

import "strings"

// Returns the length of the control sequence introduced at the start of s,
// or 0 if s does not start with a complete one.
//
// A control sequence is ESC [, any number of parameter bytes (0x30-0x3F),
// any number of intermediate bytes (0x20-0x2F) and a final byte (0x40-0x7E).
func tokenLen(s string) int {
	if len(s) < 3 || s[0] != '\033' || s[1] != '[' {
		return 0
	}
	i := 2
	for i < len(s) && 0x30 <= s[i] && s[i] <= 0x3f {
		i++
	}
	for i < len(s) && 0x20 <= s[i] && s[i] <= 0x2f {
		i++
	}
	if i < len(s) && 0x40 <= s[i] && s[i] <= 0x7e {
		return i + 1
	}
	return 0
}

// Reports whether tok is an SGR sequence resetting all attributes.
func isReset(tok string) bool {
	return tok == "\033[m" || tok == "\033[0m"
}

// Tokens returns the control sequences embedded in s, in order.
func Tokens(s string) []string {
	var tokens []string
	for i := 0; i < len(s); {
		if n := tokenLen(s[i:]); n > 0 {
			tokens = append(tokens, s[i:i+n])
			i += n
		} else {
			i++
		}
	}
	return tokens
}

// Strip returns s with all embedded control sequences removed.
func Strip(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if n := tokenLen(s[i:]); n > 0 {
			i += n
		} else {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

// StyleBefore returns the concatenation of the control sequences on lines
// [0, n). Writing it before lines[n] restores the style in effect at the
// start of that line.
func StyleBefore(lines []string, n int) string {
	var sb strings.Builder
	for _, line := range lines[:min(max(n, 0), len(lines))] {
		for _, tok := range Tokens(line) {
			sb.WriteString(tok)
		}
	}
	return sb.String()
}
