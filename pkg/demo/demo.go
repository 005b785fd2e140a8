// Package demo implements the interactive boxel demo: a layout of panels on
// the terminal, with one panel scrolled by the arrow keys.
package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/boxel-tui/boxel/pkg/config"
	"github.com/boxel-tui/boxel/pkg/event"
	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/panel"
	"github.com/boxel-tui/boxel/pkg/store/storedefs"
	"github.com/boxel-tui/boxel/pkg/term"
)

var logger = logutil.GetLogger("[demo] ")

//go:embed default.yaml
var defaultLayout []byte

// DefaultFocus is the panel of the default layout scrolled by the arrow keys.
const DefaultFocus = "content"

// DefaultLayout returns the built-in layout.
func DefaultLayout() *config.Layout {
	l, err := config.Parse(defaultLayout)
	if err != nil {
		panic(err)
	}
	return l
}

// Options configures a Demo.
type Options struct {
	// Layout defaults to DefaultLayout.
	Layout *config.Layout
	// Name of the panel scrolled by the arrow keys. Defaults to DefaultFocus
	// with the default layout, and to the last panel of other layouts.
	Focus string
	// Store keeps the view state of the focused panel across runs, if the
	// panel has a name. It may be nil.
	Store storedefs.Store
	// Keys defaults to term.DefaultKeys.
	Keys term.KeyTable
}

// Demo is a running demo.
type Demo struct {
	surface *term.Surface
	tree    *config.Tree
	focus   *panel.Panel
	name    string
	store   storedefs.Store
	keys    term.KeyTable
	subs    []*event.Subscription
}

// New builds the layout on the surface. It must be called with the event
// domain of the surface locked, or before the surface is initialized.
func New(s *term.Surface, opts Options) (*Demo, error) {
	layout, name := opts.Layout, opts.Focus
	if layout == nil {
		layout = DefaultLayout()
		if name == "" {
			name = DefaultFocus
		}
	}
	tree, err := layout.Build(s)
	if err != nil {
		return nil, err
	}
	if len(tree.Panels) == 0 {
		return nil, errors.New("layout has no panels")
	}

	d := &Demo{surface: s, tree: tree, name: name, store: opts.Store, keys: opts.Keys}
	if d.keys == nil {
		d.keys = term.DefaultKeys
	}
	if name == "" {
		d.focus = tree.Panels[len(tree.Panels)-1]
		d.name = nameOf(tree, d.focus)
	} else if d.focus = tree.Named[name]; d.focus == nil {
		tree.Close()
		return nil, fmt.Errorf("no panel named %q", name)
	}
	d.restore()

	d.subs = []*event.Subscription{
		s.On(term.EventResize, func(*event.Event, ...any) { d.redraw() }),
		s.On(term.EventData, func(_ *event.Event, args ...any) {
			if data, ok := args[0].([]byte); ok {
				if key, ok := d.keys.Lookup(data); ok && d.HandleKey(key) {
					d.redraw()
				}
			}
		}),
	}
	return d, nil
}

// Returns the name of p in the tree, or "" if it has none.
func nameOf(tree *config.Tree, p *panel.Panel) string {
	for name, q := range tree.Named {
		if q == p {
			return name
		}
	}
	return ""
}

// Focus returns the panel scrolled by the arrow keys.
func (d *Demo) Focus() *panel.Panel { return d.focus }

// Tree returns the panels of the demo.
func (d *Demo) Tree() *config.Tree { return d.tree }

// HandleKey applies a key press, and returns whether it changed anything.
// Up and Down scroll the focused panel, in the sense of its scroll direction;
// Left and Right set the scroll direction.
func (d *Demo) HandleKey(key string) bool {
	p := d.focus
	before, dir := p.ScrollOffset(), p.ScrollDirection()
	switch key {
	case "Up":
		p.ScrollBy(step(dir == panel.Up))
	case "Down":
		p.ScrollBy(step(dir == panel.Down))
	case "Left":
		p.SetScrollDirection(panel.Down)
	case "Right":
		p.SetScrollDirection(panel.Up)
	default:
		return false
	}
	return p.ScrollOffset() != before || p.ScrollDirection() != dir
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

// Redraw clears the screen and draws all panels.
func (d *Demo) Redraw() error {
	if err := d.surface.EraseScreen(); err != nil {
		return err
	}
	if err := d.surface.Home(); err != nil {
		return err
	}
	return d.tree.Draw()
}

func (d *Demo) redraw() {
	if err := d.Redraw(); err != nil {
		logger.Println("redraw:", err)
	}
}

// Restores the view state of the focused panel from the store.
func (d *Demo) restore() {
	if d.store == nil || d.name == "" {
		return
	}
	st, err := d.store.ViewState(d.name)
	if err != nil {
		if !errors.Is(err, storedefs.ErrNoState) {
			logger.Println("restore view state:", err)
		}
		return
	}
	if dir, err := panel.ParseDirection(st.Direction); err == nil {
		d.focus.SetScrollDirection(dir)
	}
	if err := d.focus.SetScroll(st.Scroll); err != nil {
		logger.Println("restore view state:", err)
	}
}

// Close saves the view state of the focused panel, detaches from the surface
// and closes all panels. Like New, it must be called with the event domain
// locked.
func (d *Demo) Close() error {
	for _, sub := range d.subs {
		sub.Remove()
	}
	d.tree.Close()
	if d.store == nil || d.name == "" {
		return nil
	}
	return d.store.SetViewState(d.name, storedefs.ViewState{
		Scroll:    d.focus.Scroll(),
		Direction: d.focus.ScrollDirection().String(),
	})
}

// Run initializes the surface, builds and draws the demo, and blocks until
// the surface exits or ctx is done. The surface has exited when Run returns.
func Run(ctx context.Context, s *term.Surface, opts Options) (err error) {
	var d *Demo
	s.Do(func() { d, err = New(s, opts) })
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		s.Do(func() { err = errors.Join(err, d.Close()) })
		return err
	}

	s.Do(func() {
		err = s.CursorVisible(false)
		if err == nil {
			err = d.Redraw()
		}
	})
	if err == nil {
		select {
		case <-ctx.Done():
		case <-s.Done():
		}
	}

	s.Do(func() {
		err = errors.Join(err, d.Close())
	})
	return errors.Join(err, s.Exit())
}
