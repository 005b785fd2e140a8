package term

// KeyTable maps raw input sequences to key names.
type KeyTable map[string]string

// DefaultKeys recognizes the keys used by the demo, in the encodings of
// common terminal emulators.
var DefaultKeys = KeyTable{
	"\033[A":  "Up",
	"\033OA":  "Up",
	"\033[B":  "Down",
	"\033OB":  "Down",
	"\033[C":  "Right",
	"\033OC":  "Right",
	"\033[D":  "Left",
	"\033OD":  "Left",
	"\033[H":  "Home",
	"\033OH":  "Home",
	"\033[1~": "Home",
	"\033[7~": "Home",
	"\033[F":  "End",
	"\033OF":  "End",
	"\033[4~": "End",
	"\033[8~": "End",
	"\033[5~": "PageUp",
	"\033[6~": "PageDown",
	"\r":      "Enter",
	"\033":    "Esc",
	"\x7f":    "Backspace",
	"\b":      "Backspace",
	"\t":      "Tab",
	"\x03":    "Ctrl-C",
	"\x04":    "Ctrl-D",
}

// Lookup returns the name of the key encoded by data. Only whole sequences
// match.
func (t KeyTable) Lookup(data []byte) (string, bool) {
	name, ok := t[string(data)]
	return name, ok
}

// Lookup looks data up in DefaultKeys.
func Lookup(data []byte) (string, bool) { return DefaultKeys.Lookup(data) }
