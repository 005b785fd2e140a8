// Boxel draws a layout of bordered, scrollable text panels on the terminal.
//
// Without arguments it shows the built-in demo layout; the arrow keys scroll
// the focused panel and Ctrl-C quits.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
