package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ElementType represents the type of slide element.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeImage
	ElementTypeShape
	ElementTypeGroup
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "Text"
	case ElementTypeImage:
		return "Image"
	case ElementTypeShape:
		return "Shape"
	case ElementTypeGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Element is the interface for all slide elements.
type Element interface {
	Type() ElementType
	BoundingBox() BBox
	ZIndex() int
	// Rotate returns the clockwise rotation in degrees (0 if unrotated).
	Rotate() float64
}

// Text represents a positioned rich-text block.
type Text struct {
	Lines    []TextLine
	VAlign   VerticalAlignment
	BBox     BBox
	ZOrder   int
	Rotation float64
	// BackgroundID holds a resource identifier for a background image
	// when the text block is an activity-item composite.
	BackgroundID string
}

func (t *Text) Type() ElementType { return ElementTypeText }
func (t *Text) BoundingBox() BBox { return t.BBox }
func (t *Text) ZIndex() int       { return t.ZOrder }
func (t *Text) Rotate() float64   { return t.Rotation }

// GetText returns the plain text content, one line per text line.
func (t *Text) GetText() string {
	lines := make([]string, 0, len(t.Lines))
	for _, line := range t.Lines {
		var sb strings.Builder
		for _, run := range line.Runs {
			sb.WriteString(run.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// TextLine is a single line of styled runs with its own alignment.
type TextLine struct {
	Runs      []TextRun
	Alignment TextAlignment
}

// TextRun is a span of uniformly styled text.
type TextRun struct {
	Text       string
	FontSize   float64 // board units (px); 0 means inherit
	FontFamily string
	Color      *Color // nil means inherit
	Bold       bool
}

// Image represents an embedded image referenced through the resource
// manifest.
type Image struct {
	ResourceID string
	AltText    string
	BBox       BBox
	ZOrder     int
	Rotation   float64
}

func (i *Image) Type() ElementType { return ElementTypeImage }
func (i *Image) BoundingBox() BBox { return i.BBox }
func (i *Image) ZIndex() int       { return i.ZOrder }
func (i *Image) Rotate() float64   { return i.Rotation }

// Shape represents a vector primitive approximated by its bounding box.
type Shape struct {
	Kind        string // original shape tag, informational
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
	BBox        BBox
	ZOrder      int
	Rotation    float64
}

func (s *Shape) Type() ElementType { return ElementTypeShape }
func (s *Shape) BoundingBox() BBox { return s.BBox }
func (s *Shape) ZIndex() int       { return s.ZOrder }
func (s *Shape) Rotate() float64   { return s.Rotation }

// Group represents a container of child elements. Child coordinates are
// relative to the group's own origin.
type Group struct {
	Children []Element
	BBox     BBox
	ZOrder   int
	Rotation float64
}

func (g *Group) Type() ElementType { return ElementTypeGroup }
func (g *Group) BoundingBox() BBox { return g.BBox }
func (g *Group) ZIndex() int       { return g.ZOrder }
func (g *Group) Rotate() float64   { return g.Rotation }

// TextAlignment represents horizontal text alignment.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// CSS returns the text-align value for the alignment.
func (a TextAlignment) CSS() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// VerticalAlignment represents vertical alignment of a text block.
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignCenter
	VAlignBottom
)

// CSS returns the flexbox justify-content value for the alignment.
func (a VerticalAlignment) CSS() string {
	switch a {
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "flex-end"
	default:
		return "flex-start"
	}
}

// Color represents an ARGB color. The container stores colors as
// #AARRGGBB; plain #RRGGBB is accepted with full opacity.
type Color struct {
	A, R, G, B uint8
}

// ParseColor parses #AARRGGBB or #RRGGBB hex notation.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	hex := s[1:]

	parse := func(h string) (uint8, bool) {
		v, err := strconv.ParseUint(h, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}

	switch len(hex) {
	case 8:
		a, ok1 := parse(hex[0:2])
		r, ok2 := parse(hex[2:4])
		g, ok3 := parse(hex[4:6])
		b, ok4 := parse(hex[6:8])
		if ok1 && ok2 && ok3 && ok4 {
			return Color{A: a, R: r, G: g, B: b}, true
		}
	case 6:
		r, ok1 := parse(hex[0:2])
		g, ok2 := parse(hex[2:4])
		b, ok3 := parse(hex[4:6])
		if ok1 && ok2 && ok3 {
			return Color{A: 0xFF, R: r, G: g, B: b}, true
		}
	}
	return Color{}, false
}

// CSS returns the CSS color value. Opaque colors render as #rrggbb,
// translucent ones as rgba() with a three-decimal alpha.
func (c Color) CSS() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
