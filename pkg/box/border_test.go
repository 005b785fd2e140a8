package box

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boxel-tui/boxel/pkg/border"
	"github.com/boxel-tui/boxel/pkg/event"
	"github.com/boxel-tui/boxel/pkg/ui"
)

func ptr[T any](v T) *T { return &v }

func TestBorder_Defaults(t *testing.T) {
	b := NewBorder(nil)
	for _, e := range []*Edge{&b.Top().Edge, b.Right(), &b.Bottom().Edge, b.Left()} {
		if e.Width() != 1 || e.Style() != border.Line || e.Fill() != border.FillSolid || e.Color() != ui.Default {
			t.Errorf("unexpected default edge %+v", e)
		}
	}
	if b.Inline() != 2 || b.Block() != 2 || b.All() != 4 {
		t.Errorf("got inline %d block %d all %d", b.Inline(), b.Block(), b.All())
	}
}

func TestEdge_SameWidthEmitsNothing(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)
	must(t, b.Left().SetWidth(1))
	if len(log.keys) != 0 {
		t.Errorf("setting width 1 -> 1 emitted %v", log.keys)
	}
}

func TestEdge_ColorEmitsOneRedraw(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)
	b.Top().SetColor(ui.Red)
	if diff := cmp.Diff([]event.Key{EventRedraw}, log.keys); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestEdge_Setters(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)
	e := b.Right()

	must(t, e.SetWidth(3))
	e.SetStyle(border.Double)
	e.SetFill(border.FillLines)
	e.SetColor(ui.Blue)
	e.SetColor(nil)
	e.SetStyle(border.Double)

	want := []event.Key{EventResize, EventRedraw, EventRedraw, EventRedraw, EventRedraw}
	if diff := cmp.Diff(want, log.keys); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if e.Color() != ui.Default {
		t.Errorf("nil color did not reset to default")
	}
}

func TestEdge_NegativeWidth(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)
	if err := b.Left().SetWidth(-1); !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("SetWidth(-1) -> %v", err)
	}
	err := b.Left().Set(EdgeSpec{Width: ptr(-2), Color: ui.Red})
	if !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("Set with negative width -> %v", err)
	}
	if b.Left().Width() != 1 || b.Left().Color() != ui.Default || len(log.keys) != 0 {
		t.Errorf("invalid update changed the edge")
	}
}

func TestEdge_SetCoalesces(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)

	must(t, b.Left().Set(EdgeSpec{Style: ptr(border.Thick), Color: ui.Green}))
	must(t, b.Left().Set(EdgeSpec{Width: ptr(2), Fill: ptr(border.FillLines), Color: ui.Red}))
	must(t, b.Left().Set(EdgeSpec{Width: ptr(2)}))

	if diff := cmp.Diff([]event.Key{EventRedraw, EventResize}, log.keys); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestBorder_GroupedSetters(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)

	must(t, b.SetAll(EdgeSpec{Width: ptr(2)}))
	must(t, b.SetInline(EdgeSpec{Style: ptr(border.Round)}))
	must(t, b.SetBlock(EdgeSpec{Width: ptr(2), Style: ptr(border.Round)}))
	must(t, b.SetAll(EdgeSpec{Style: ptr(border.Round), Width: ptr(2)}))

	want := []event.Key{EventResize, EventRedraw, EventRedraw}
	if diff := cmp.Diff(want, log.keys); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if b.All() != 8 {
		t.Errorf("got total width %d, want 8", b.All())
	}
}

func TestCorner(t *testing.T) {
	b := NewBorder(nil)
	log := record(b.Emitter, EventResize, EventRedraw)
	c := b.Top().LeftCorner()

	if c.StyleOr(border.Line) != border.Line || c.ColorOr(ui.Red) != ui.Red {
		t.Errorf("unset corner does not inherit")
	}
	c.SetStyle(ptr(border.Double))
	c.SetStyle(ptr(border.Double))
	c.SetColor(ui.Yellow)
	c.SetColor(ui.Yellow)
	if c.StyleOr(border.Line) != border.Double || c.ColorOr(ui.Red) != ui.Yellow {
		t.Errorf("corner overrides not applied")
	}
	c.Set(nil, nil)
	if c.Style() != nil || c.Color() != nil {
		t.Errorf("Set(nil, nil) did not reset the overrides")
	}
	b.Bottom().RightCorner().Set(nil, nil)

	want := []event.Key{EventRedraw, EventRedraw, EventRedraw}
	if diff := cmp.Diff(want, log.keys); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestCorner_StyleIsCopied(t *testing.T) {
	b := NewBorder(nil)
	s := border.Thick
	b.Bottom().RightCorner().SetStyle(&s)
	s = border.None
	if got := *b.Bottom().RightCorner().Style(); got != border.Thick {
		t.Errorf("corner style aliased caller variable, got %v", got)
	}
}
