package errutil

import (
	"errors"
	"testing"
)

var (
	errRestore = errors.New("cannot restore termios")
	errReset   = errors.New("cannot write reset sequence")
	errAlt     = errors.New("cannot leave alternate screen")
)

func TestMulti(t *testing.T) {
	if err := Multi(); err != nil {
		t.Errorf("Multi() -> %v, want nil", err)
	}
	if err := Multi(nil, nil); err != nil {
		t.Errorf("Multi(nil, nil) -> %v, want nil", err)
	}
	if err := Multi(errRestore, nil); err != errRestore {
		t.Errorf("Multi(err, nil) -> %v, want %v", err, errRestore)
	}

	err := Multi(errRestore, errReset)
	want := "multiple errors: cannot restore termios; cannot write reset sequence"
	if err.Error() != want {
		t.Errorf("got message %q, want %q", err.Error(), want)
	}

	flattened := Multi(err, errAlt)
	if me, ok := flattened.(multiError); !ok || len(me) != 3 {
		t.Errorf("nested Multi not flattened: %#v", flattened)
	}
}

func TestMulti_Is(t *testing.T) {
	err := Multi(errRestore, errReset)
	if !errors.Is(err, errRestore) || !errors.Is(err, errReset) {
		t.Errorf("errors.Is does not see wrapped errors of %v", err)
	}
	if errors.Is(err, errAlt) {
		t.Errorf("errors.Is matches an error not wrapped in %v", err)
	}
}
