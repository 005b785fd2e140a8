// Package must turns errors into panics. It is meant for tests and for values
// built from literals that cannot fail.
package must

import "os"

// OK panics if err is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 returns v, or panics if err is not nil.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// Pipe wraps os.Pipe.
func Pipe() (r, w *os.File) {
	r, w, err := os.Pipe()
	OK(err)
	return r, w
}
