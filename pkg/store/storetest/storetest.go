// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boxel-tui/boxel/pkg/store/storedefs"
)

// TestViewState tests the view state functionality of a Store.
func TestViewState(t *testing.T, store storedefs.Store) {
	if _, err := store.ViewState("missing"); !errors.Is(err, storedefs.ErrNoState) {
		t.Errorf("ViewState(missing) -> %v, want ErrNoState", err)
	}

	states := map[string]storedefs.ViewState{
		"log":   {Scroll: 12, Direction: "up"},
		"help":  {Scroll: 0.5, Direction: "down"},
		"empty": {},
	}
	for name, state := range states {
		if err := store.SetViewState(name, state); err != nil {
			t.Fatalf("SetViewState(%q) -> %v", name, err)
		}
	}
	for name, want := range states {
		got, err := store.ViewState(name)
		if err != nil {
			t.Errorf("ViewState(%q) -> error %v", name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ViewState(%q) (-want +got):\n%s", name, diff)
		}
	}

	names, err := store.Names()
	if err != nil {
		t.Errorf("Names -> error %v", err)
	}
	if diff := cmp.Diff([]string{"empty", "help", "log"}, names); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}

	if err := store.SetViewState("log", storedefs.ViewState{Scroll: 3}); err != nil {
		t.Errorf("overwriting SetViewState -> %v", err)
	}
	if got, _ := store.ViewState("log"); got != (storedefs.ViewState{Scroll: 3}) {
		t.Errorf("ViewState after overwrite -> %+v", got)
	}

	if err := store.DeleteViewState("log"); err != nil {
		t.Errorf("DeleteViewState -> %v", err)
	}
	if err := store.DeleteViewState("log"); err != nil {
		t.Errorf("deleting a missing state -> %v", err)
	}
	if _, err := store.ViewState("log"); !errors.Is(err, storedefs.ErrNoState) {
		t.Errorf("ViewState after delete -> %v, want ErrNoState", err)
	}
}
