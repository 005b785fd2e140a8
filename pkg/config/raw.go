package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The YAML document, as written by the user.
type rawLayout struct {
	Panels []*rawPanel `yaml:"panels"`
}

type rawPanel struct {
	Name            string      `yaml:"name"`
	Margin          rawMetric   `yaml:"margin"`
	Padding         rawMetric   `yaml:"padding"`
	Border          *rawBorder  `yaml:"border"`
	MinWidth        *int        `yaml:"minWidth"`
	MinHeight       *int        `yaml:"minHeight"`
	MaxWidth        *int        `yaml:"maxWidth"`
	MaxHeight       *int        `yaml:"maxHeight"`
	Color           *string     `yaml:"color"`
	BgColor         *string     `yaml:"bgColor"`
	WordWrap        *bool       `yaml:"wordWrap"`
	TabSize         *int        `yaml:"tabSize"`
	Scroll          *float64    `yaml:"scroll"`
	ScrollDirection *string     `yaml:"scrollDirection"`
	Text            string      `yaml:"text"`
	Children        []*rawPanel `yaml:"children"`
}

type rawBorder struct {
	All    *rawEdge `yaml:"all"`
	Inline *rawEdge `yaml:"inline"`
	Block  *rawEdge `yaml:"block"`
	Top    *rawEdge `yaml:"top"`
	Right  *rawEdge `yaml:"right"`
	Bottom *rawEdge `yaml:"bottom"`
	Left   *rawEdge `yaml:"left"`
}

type rawEdge struct {
	Width   *int        `yaml:"width"`
	Style   *string     `yaml:"style"`
	Fill    *string     `yaml:"fill"`
	Color   *string     `yaml:"color"`
	Corners *rawCorners `yaml:"corners"`
}

type rawCorners struct {
	Left  *rawCorner `yaml:"left"`
	Right *rawCorner `yaml:"right"`
}

type rawCorner struct {
	Style *string `yaml:"style"`
	Color *string `yaml:"color"`
}

// A metric written either as a single number or as a list of one to four
// numbers, like the CSS shorthand.
type rawMetric []int

func (m *rawMetric) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v int
		if err := node.Decode(&v); err != nil {
			return err
		}
		*m = rawMetric{v}
		return nil
	case yaml.SequenceNode:
		var vs []int
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*m = vs
		return nil
	default:
		return fmt.Errorf("line %d: metric must be a number or a list of numbers", node.Line)
	}
}

// Returns an edge with the fields of over laid over those of e.
func (e *rawEdge) merge(over *rawEdge) *rawEdge {
	if over == nil {
		return e
	}
	if e == nil {
		e = &rawEdge{}
	}
	merged := *e
	if over.Width != nil {
		merged.Width = over.Width
	}
	if over.Style != nil {
		merged.Style = over.Style
	}
	if over.Fill != nil {
		merged.Fill = over.Fill
	}
	if over.Color != nil {
		merged.Color = over.Color
	}
	if over.Corners != nil {
		merged.Corners = merged.Corners.merge(over.Corners)
	}
	return &merged
}

func (c *rawCorners) merge(over *rawCorners) *rawCorners {
	if c == nil {
		return over
	}
	merged := *c
	merged.Left = c.Left.merge(over.Left)
	merged.Right = c.Right.merge(over.Right)
	return &merged
}

func (c *rawCorner) merge(over *rawCorner) *rawCorner {
	if over == nil {
		return c
	}
	if c == nil {
		return over
	}
	merged := *c
	if over.Style != nil {
		merged.Style = over.Style
	}
	if over.Color != nil {
		merged.Color = over.Color
	}
	return &merged
}
