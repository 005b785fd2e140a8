// Package testutil contains helpers shared by tests.
package testutil

import (
	"os"
	"strings"
)

// Cleanuper wraps the Cleanup method of [testing.TB].
type Cleanuper interface {
	Cleanup(func())
}

// MustWriteFile writes a file and panics on error.
func MustWriteFile(filename string, data []byte, perm os.FileMode) {
	if err := os.WriteFile(filename, data, perm); err != nil {
		panic(err)
	}
}

// Dedent removes the longest run of spaces and tabs common to the start of
// all non-blank lines, and a leading newline. Blank lines become empty.
//
// It lets multi-line raw strings be indented along with the code around
// them, with the first line starting after the opening backtick.
func Dedent(text string) string {
	lines := strings.Split(strings.TrimPrefix(text, "\n"), "\n")
	var margin string
	found := false
	for i, line := range lines {
		content := strings.TrimLeft(line, " \t")
		if content == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(content)]
		if !found {
			margin, found = indent, true
		} else {
			margin = commonPrefix(margin, indent)
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
