// Package config reads panel layouts from YAML documents.
//
// A layout is a list of panel trees:
//
//	panels:
//	  - name: outer
//	    margin: [1, 2]
//	    border:
//	      all: {style: double, color: blue}
//	      top: {width: 2, corners: {left: {color: red}}}
//	    children:
//	      - name: inner
//	        text: hello
//
// All values are checked when the document is parsed; errors name the path of
// the offending node, like panels[0].border.top.style.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boxel-tui/boxel/pkg/border"
	"github.com/boxel-tui/boxel/pkg/box"
	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/panel"
	"github.com/boxel-tui/boxel/pkg/ui"
)

var logger = logutil.GetLogger("[config] ")

// Error is an invalid value in a layout document.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Layout is a parsed layout document.
type Layout struct {
	Panels []*Panel
}

// Panel is the configuration of one panel. Nil fields are left at the
// defaults of panel.New.
type Panel struct {
	Name            string
	Margin          []int
	Padding         []int
	Border          Border
	MinWidth        *int
	MinHeight       *int
	MaxWidth        *int
	MaxHeight       *int
	Color           ui.Color
	BgColor         ui.Color
	WordWrap        *bool
	TabSize         *int
	Scroll          *float64
	ScrollDirection *panel.Direction
	Text            string
	Children        []*Panel
}

// Border is the configuration of the four edges of a border, after the all,
// inline and block shorthands have been applied.
type Border struct {
	Top, Right, Bottom, Left Edge
}

// Edge is the configuration of one border edge. Only the top and bottom edges
// have corners.
type Edge struct {
	box.EdgeSpec
	LeftCorner, RightCorner *Corner
}

// Corner is the configuration of a corner override.
type Corner struct {
	Style *border.Style
	Color ui.Color
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Println("loading layout from", path)
	return Parse(data)
}

// Parse parses a layout document. Unknown keys are errors.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raw rawLayout
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, err
	}

	c := &compiler{names: map[string]string{}}
	layout := &Layout{}
	for i, rp := range raw.Panels {
		layout.Panels = append(layout.Panels, c.panel(fmt.Sprintf("panels[%d]", i), rp))
	}
	if err := errors.Join(c.errs...); err != nil {
		return nil, err
	}
	return layout, nil
}

// Turns the raw document into a Layout, collecting all errors.
type compiler struct {
	errs []error
	// Paths of the panels, by name.
	names map[string]string
}

func (c *compiler) fail(path string, err error) {
	c.errs = append(c.errs, &Error{path, err})
}

func (c *compiler) panel(path string, rp *rawPanel) *Panel {
	if rp == nil {
		c.fail(path, errors.New("empty panel"))
		return &Panel{}
	}
	p := &Panel{Name: rp.Name, Text: rp.Text}
	if rp.Name != "" {
		if other, ok := c.names[rp.Name]; ok {
			c.fail(path+".name", fmt.Errorf("duplicate panel name %q, first used at %s", rp.Name, other))
		} else {
			c.names[rp.Name] = path
		}
	}
	p.Margin = c.metric(path+".margin", rp.Margin)
	p.Padding = c.metric(path+".padding", rp.Padding)
	if rp.Border != nil {
		p.Border = c.border(path+".border", rp.Border)
	}
	p.MinWidth = c.nonNegative(path+".minWidth", rp.MinWidth)
	p.MinHeight = c.nonNegative(path+".minHeight", rp.MinHeight)
	p.MaxWidth = c.nonNegative(path+".maxWidth", rp.MaxWidth)
	p.MaxHeight = c.nonNegative(path+".maxHeight", rp.MaxHeight)
	p.Color = c.color(path+".color", rp.Color)
	p.BgColor = c.color(path+".bgColor", rp.BgColor)
	p.WordWrap = rp.WordWrap
	p.TabSize = c.nonNegative(path+".tabSize", rp.TabSize)
	if rp.Scroll != nil {
		if v := *rp.Scroll; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			c.fail(path+".scroll", fmt.Errorf("scroll must be a non-negative number, got %v", v))
		} else {
			p.Scroll = rp.Scroll
		}
	}
	if rp.ScrollDirection != nil {
		if d, err := panel.ParseDirection(*rp.ScrollDirection); err != nil {
			c.fail(path+".scrollDirection", err)
		} else {
			p.ScrollDirection = &d
		}
	}
	for i, child := range rp.Children {
		p.Children = append(p.Children, c.panel(fmt.Sprintf("%s.children[%d]", path, i), child))
	}
	return p
}

func (c *compiler) metric(path string, m rawMetric) []int {
	if m == nil {
		return nil
	}
	if len(m) < 1 || len(m) > 4 {
		c.fail(path, fmt.Errorf("metric takes 1 to 4 values, got %d", len(m)))
		return nil
	}
	for i, v := range m {
		if v < 0 {
			c.fail(fmt.Sprintf("%s[%d]", path, i), fmt.Errorf("negative value %d", v))
			return nil
		}
	}
	return m
}

func (c *compiler) nonNegative(path string, v *int) *int {
	if v != nil && *v < 0 {
		c.fail(path, fmt.Errorf("negative value %d", *v))
		return nil
	}
	return v
}

func (c *compiler) color(path string, s *string) ui.Color {
	if s == nil {
		return nil
	}
	color, err := ui.ParseColor(*s)
	if err != nil {
		c.fail(path, err)
	}
	return color
}

func (c *compiler) border(path string, rb *rawBorder) Border {
	all := (*rawEdge)(nil).merge(rb.All)
	if rb.Inline != nil && rb.Inline.Corners != nil {
		c.fail(path+".inline.corners", errNoCorners)
	}
	edges := []struct {
		name      string
		shorthand *rawEdge
		side      *rawEdge
		corners   bool
	}{
		{"top", rb.Block, rb.Top, true},
		{"right", rb.Inline, rb.Right, false},
		{"bottom", rb.Block, rb.Bottom, true},
		{"left", rb.Inline, rb.Left, false},
	}
	var b Border
	out := []*Edge{&b.Top, &b.Right, &b.Bottom, &b.Left}
	for i, e := range edges {
		edgePath := path + "." + e.name
		raw := all.merge(e.shorthand).merge(e.side)
		if raw == nil {
			continue
		}
		if !e.corners {
			// Corners given in a shorthand only apply to the top and bottom
			// edges.
			if e.side != nil && e.side.Corners != nil {
				c.fail(edgePath+".corners", errNoCorners)
			}
			stripped := *raw
			stripped.Corners = nil
			raw = &stripped
		}
		*out[i] = c.edge(edgePath, raw)
	}
	return b
}

var errNoCorners = errors.New("only top and bottom edges have corners")

func (c *compiler) edge(path string, re *rawEdge) Edge {
	var e Edge
	if w := c.nonNegative(path+".width", re.Width); w != nil {
		e.Width = w
	}
	if re.Style != nil {
		e.Style = c.style(path+".style", *re.Style)
	}
	if re.Fill != nil {
		if fill, err := border.ParseFill(*re.Fill); err != nil {
			c.fail(path+".fill", err)
		} else {
			e.Fill = &fill
		}
	}
	e.Color = c.color(path+".color", re.Color)
	if re.Corners != nil {
		e.LeftCorner = c.corner(path+".corners.left", re.Corners.Left)
		e.RightCorner = c.corner(path+".corners.right", re.Corners.Right)
	}
	return e
}

func (c *compiler) corner(path string, rc *rawCorner) *Corner {
	if rc == nil {
		return nil
	}
	corner := &Corner{Color: c.color(path+".color", rc.Color)}
	if rc.Style != nil {
		corner.Style = c.style(path+".style", *rc.Style)
	}
	return corner
}

func (c *compiler) style(path, name string) *border.Style {
	style, err := border.ParseStyle(name)
	if err != nil {
		c.fail(path, err)
		return nil
	}
	return &style
}
