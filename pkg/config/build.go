package config

import (
	"fmt"

	"github.com/boxel-tui/boxel/pkg/box"
	"github.com/boxel-tui/boxel/pkg/panel"
)

// Tree is the set of panels built from a layout.
type Tree struct {
	// Roots are the top-level panels, in document order.
	Roots []*panel.Panel
	// Panels are all panels, parents before children, in document order.
	Panels []*panel.Panel
	// Named are the panels that have a name, by name.
	Named map[string]*panel.Panel
}

// Build creates the panels of the layout inside parent. On error, the panels
// created so far are closed.
func (l *Layout) Build(parent panel.Container) (*Tree, error) {
	t := &Tree{Named: map[string]*panel.Panel{}}
	for i, cfg := range l.Panels {
		p, err := t.build(fmt.Sprintf("panels[%d]", i), cfg, parent)
		if p != nil {
			t.Roots = append(t.Roots, p)
		}
		if err != nil {
			t.Close()
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree) build(path string, cfg *Panel, parent panel.Container) (*panel.Panel, error) {
	p := panel.New(parent)
	t.Panels = append(t.Panels, p)
	if err := cfg.apply(p); err != nil {
		return p, &Error{path, err}
	}
	if cfg.Name != "" {
		t.Named[cfg.Name] = p
	}
	for i, child := range cfg.Children {
		if _, err := t.build(fmt.Sprintf("%s.children[%d]", path, i), child, p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Draw draws all panels, parents before children.
func (t *Tree) Draw() error {
	for _, p := range t.Panels {
		if err := p.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all panels.
func (t *Tree) Close() {
	for _, root := range t.Roots {
		root.Close()
	}
}

// Applies the configuration to a panel. Box settings go first so that the
// text is reflowed once, against the final width; the scroll position goes
// last since it is clamped to the text.
func (cfg *Panel) apply(p *panel.Panel) error {
	if cfg.Margin != nil {
		if err := p.Margin().Set(cfg.Margin...); err != nil {
			return err
		}
	}
	if cfg.Padding != nil {
		if err := p.Padding().Set(cfg.Padding...); err != nil {
			return err
		}
	}
	if err := cfg.Border.apply(p.Border()); err != nil {
		return err
	}
	setInt := func(v *int, set func(int)) {
		if v != nil {
			set(*v)
		}
	}
	setInt(cfg.MinWidth, p.SetMinWidth)
	setInt(cfg.MinHeight, p.SetMinHeight)
	setInt(cfg.MaxWidth, p.SetMaxWidth)
	setInt(cfg.MaxHeight, p.SetMaxHeight)
	if cfg.Color != nil {
		p.SetColor(cfg.Color)
	}
	if cfg.BgColor != nil {
		p.SetBgColor(cfg.BgColor)
	}
	if cfg.WordWrap != nil {
		p.SetWordWrap(*cfg.WordWrap)
	}
	if cfg.TabSize != nil {
		if err := p.SetTabSize(*cfg.TabSize); err != nil {
			return err
		}
	}
	if cfg.ScrollDirection != nil {
		p.SetScrollDirection(*cfg.ScrollDirection)
	}
	p.SetText(cfg.Text)
	if cfg.Scroll != nil {
		return p.SetScroll(*cfg.Scroll)
	}
	return nil
}

func (b *Border) apply(bb *box.Border) error {
	if err := bb.Top().Set(b.Top.EdgeSpec); err != nil {
		return err
	}
	if err := bb.Right().Set(b.Right.EdgeSpec); err != nil {
		return err
	}
	if err := bb.Bottom().Set(b.Bottom.EdgeSpec); err != nil {
		return err
	}
	if err := bb.Left().Set(b.Left.EdgeSpec); err != nil {
		return err
	}
	b.Top.applyCorners(bb.Top())
	b.Bottom.applyCorners(bb.Bottom())
	return nil
}

func (e *Edge) applyCorners(block *box.Block) {
	if c := e.LeftCorner; c != nil {
		block.LeftCorner().Set(c.Style, c.Color)
	}
	if c := e.RightCorner; c != nil {
		block.RightCorner().Set(c.Style, c.Color)
	}
}
