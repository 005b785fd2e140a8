package event

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/tt"
)

// recorder returns a listener appending name to *calls.
func recorder(calls *[]string, name string) Listener {
	return func(*Event, ...any) { *calls = append(*calls, name) }
}

func TestOn_Ordering(t *testing.T) {
	e := New(nil)
	var calls []string
	e.On("x", recorder(&calls, "a"))
	e.On("x", recorder(&calls, "b"))
	e.On("x", recorder(&calls, "c"), Prepend())
	e.On("x", recorder(&calls, "hi"), Level(5))
	e.On("x", recorder(&calls, "lo"), Level(-1))
	e.On("x", recorder(&calls, "hi-first"), Level(5), Prepend())
	e.On("x", recorder(&calls, "mid"), Level(2), Prepend())

	e.Emit("x")

	want := []string{"lo", "c", "a", "b", "mid", "hi-first", "hi"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("dispatch order (-want +got):\n%s", diff)
	}
}

func TestEmit_PassesArgsAndContext(t *testing.T) {
	e := New(nil)
	var gotType Key
	var gotEmitter *Emitter
	var gotArgs []any
	e.On("resize", func(ev *Event, args ...any) {
		gotType, gotEmitter, gotArgs = ev.Type(), ev.Emitter(), args
	})

	outcome := e.Emit("resize", 80, 24)

	if outcome != Delivered {
		t.Errorf("got outcome %v, want %v", outcome, Delivered)
	}
	if gotType != "resize" || gotEmitter != e {
		t.Errorf("got type %q emitter %p, want %q %p", gotType, gotEmitter, "resize", e)
	}
	if diff := cmp.Diff([]any{80, 24}, gotArgs); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
}

func TestEmit_NoListeners(t *testing.T) {
	e := New(nil)
	e.On("y", func(*Event, ...any) {})
	if outcome := e.Emit("x"); outcome != NotDelivered {
		t.Errorf("got %v, want %v", outcome, NotDelivered)
	}
}

func TestEmit_StopPropagation(t *testing.T) {
	e := New(nil)
	var calls []string
	e.On("x", recorder(&calls, "a"))
	e.On("x", func(ev *Event, _ ...any) {
		calls = append(calls, "stop")
		ev.StopPropagation()
	})
	e.On("x", recorder(&calls, "never"))

	e.Emit("x")

	if diff := cmp.Diff([]string{"a", "stop"}, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestEmit_PreventDefault(t *testing.T) {
	e := New(nil)
	e.On("x", func(ev *Event, _ ...any) { ev.PreventDefault() })
	e.On("x", func(ev *Event, _ ...any) {
		if !ev.DefaultAllowed() {
			t.Errorf("default-allowed flag leaked between invocations")
		}
	})
	if outcome := e.Emit("x"); outcome != DefaultPrevented {
		t.Errorf("got %v, want %v", outcome, DefaultPrevented)
	}
}

func TestEmit_SetDefaultAllowedRestores(t *testing.T) {
	e := New(nil)
	e.On("x", func(ev *Event, _ ...any) {
		ev.PreventDefault()
		ev.SetDefaultAllowed(true)
	})
	if outcome := e.Emit("x"); outcome != Delivered {
		t.Errorf("got %v, want %v", outcome, Delivered)
	}
}

func TestEmit_Once(t *testing.T) {
	e := New(nil)
	n := 0
	e.On("x", func(*Event, ...any) { n++ }, Once())
	e.Emit("x")
	e.Emit("x")
	if n != 1 {
		t.Errorf("once listener called %d times", n)
	}
	if c := e.ListenerCount("x"); c != 0 {
		t.Errorf("ListenerCount -> %d, want 0", c)
	}
}

func TestEmit_OnceReentrant(t *testing.T) {
	e := New(nil)
	n := 0
	e.On("x", func(*Event, ...any) {
		n++
		e.Emit("x")
	}, Once())
	e.Emit("x")
	if n != 1 {
		t.Errorf("once listener called %d times on reentrant emit", n)
	}
}

func TestEmit_Snapshot(t *testing.T) {
	e := New(nil)
	var calls []string
	var second *Subscription
	e.On("x", func(*Event, ...any) {
		calls = append(calls, "first")
		e.On("x", recorder(&calls, "added"))
		e.Off(second)
	})
	second = e.On("x", recorder(&calls, "second"))

	e.Emit("x")
	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Errorf("first dispatch (-want +got):\n%s", diff)
	}

	calls = nil
	e.OffAll("x")
	e.On("x", recorder(&calls, "only"))
	e.Emit("x")
	if diff := cmp.Diff([]string{"only"}, calls); diff != "" {
		t.Errorf("second dispatch (-want +got):\n%s", diff)
	}
}

func TestEvent_Remove(t *testing.T) {
	e := New(nil)
	n := 0
	e.On("x", func(ev *Event, _ ...any) {
		n++
		ev.Remove()
	})
	e.Emit("x")
	e.Emit("x")
	if n != 1 {
		t.Errorf("listener called %d times after removing itself", n)
	}
}

func TestOff_NoOp(t *testing.T) {
	e := New(nil)
	other := New(nil)
	sub := e.On("x", func(*Event, ...any) {})

	e.Off(nil)
	other.Off(sub)
	if c := e.ListenerCount("x"); c != 1 {
		t.Fatalf("ListenerCount -> %d, want 1", c)
	}
	sub.Remove()
	sub.Remove()
	if c := e.ListenerCount("x"); c != 0 {
		t.Errorf("ListenerCount -> %d, want 0", c)
	}
}

func TestOffAll(t *testing.T) {
	e := New(nil)
	noop := func(*Event, ...any) {}
	e.On("a", noop)
	e.On("b", noop)
	e.On("c", noop)

	e.OffAll("a", "b")
	if diff := cmp.Diff([]Key{"c"}, e.Keys()); diff != "" {
		t.Errorf("Keys after OffAll(a, b) (-want +got):\n%s", diff)
	}
	e.OffAll()
	if keys := e.Keys(); len(keys) != 0 {
		t.Errorf("Keys after OffAll() -> %v", keys)
	}
}

func TestRawListeners(t *testing.T) {
	e := New(nil)
	noop := func(*Event, ...any) {}
	a := e.On("x", noop)
	b := e.On("x", noop, Level(-3), Once())

	raw := e.RawListeners("x")
	if len(raw) != 2 || raw[0] != b || raw[1] != a {
		t.Fatalf("RawListeners -> %v, want [b a]", raw)
	}
	if raw[0].Level() != -3 || !raw[0].Once() || raw[0].Key() != "x" {
		t.Errorf("unexpected subscription fields")
	}
	raw[0] = nil
	if e.RawListeners("x")[0] != b {
		t.Errorf("RawListeners did not return a copy")
	}
}

func TestMaxListeners_Advisory(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetOutput(&buf)
	t.Cleanup(func() { logutil.SetOutput(nil) })

	e := New(nil)
	e.SetMaxListeners(2)
	noop := func(*Event, ...any) {}
	e.On("x", noop)
	e.On("x", noop)
	if buf.Len() != 0 {
		t.Errorf("advisory logged before the cap was exceeded: %q", buf.String())
	}
	e.On("x", noop)
	if !strings.Contains(buf.String(), "possible listener leak") {
		t.Errorf("no advisory logged, got %q", buf.String())
	}
	if c := e.ListenerCount("x"); c != 3 {
		t.Errorf("ListenerCount -> %d, want 3", c)
	}
}

func TestOutcome(t *testing.T) {
	tt.Test(t, Outcome.Delivered,
		tt.Args(NotDelivered).Rets(false),
		tt.Args(Delivered).Rets(true),
		tt.Args(DefaultPrevented).Rets(true),
	)
	tt.Test(t, Outcome.DefaultAllowed,
		tt.Args(NotDelivered).Rets(true),
		tt.Args(Delivered).Rets(true),
		tt.Args(DefaultPrevented).Rets(false),
	)
	tt.Test(t, Outcome.String,
		tt.Args(NotDelivered).Rets("not-delivered"),
		tt.Args(DefaultPrevented).Rets("default-prevented"),
		tt.Args(Outcome(9)).Rets("Outcome(9)"),
	)
}
