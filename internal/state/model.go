package state

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind is the shape the user picked to draw.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindRectangle
)

// Kinds lists every kind in picker order.
var Kinds = []Kind{KindPoint, KindLine, KindCircle, KindRectangle}

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindCircle:
		return "Circle"
	case KindRectangle:
		return "Rectangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the picker label of a kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return KindPoint, fmt.Errorf("unknown shape kind %q", s)
}

// Color is a palette entry. The zero value means no color.
type Color int

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
)

// Palette lists the selectable colors in picker order.
var Palette = []Color{ColorBlack, ColorRed, ColorGreen, ColorBlue}

// Name returns the color name written to save files, "" for ColorNone.
func (c Color) Name() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	}
	return ""
}

func (c Color) String() string {
	if c == ColorNone {
		return "None"
	}
	n := c.Name()
	return strings.ToUpper(n[:1]) + n[1:]
}

// RGBA returns the paint color, or nil when the slot is unset.
func (c Color) RGBA() color.Color {
	switch c {
	case ColorBlack:
		return color.NRGBA{A: 255}
	case ColorRed:
		return color.NRGBA{R: 255, A: 255}
	case ColorGreen:
		return color.NRGBA{G: 255, A: 255}
	case ColorBlue:
		return color.NRGBA{B: 255, A: 255}
	}
	return nil
}

// ParseColor maps a color name to a palette entry. The empty string is ColorNone.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorNone, nil
	}
	for _, c := range Palette {
		if strings.EqualFold(c.Name(), s) {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}

// Geometry is the primitive a shape is stored and rendered as.
type Geometry string

const (
	GeometryLine      Geometry = "line"
	GeometryOval      Geometry = "oval"
	GeometryRectangle Geometry = "rectangle"
)

// Shape is one item on the board.
//
// Lines are colored through Fill; ovals and rectangles through Outline,
// with Fill only set for points.
type Shape struct {
	ID       string
	Geometry Geometry
	Coords   [4]float64
	Fill     Color
	Outline  Color
}

// DefaultPointRadius is the half-size of the dot drawn for a Point.
const DefaultPointRadius = 2.0

// NewShape builds the shape of the given kind spanning (x1,y1)-(x2,y2).
// A Point ignores the first corner and is centered on (x2,y2).
func NewShape(kind Kind, c Color, x1, y1, x2, y2, pointRadius float64) Shape {
	switch kind {
	case KindPoint:
		r := pointRadius
		return Shape{
			Geometry: GeometryOval,
			Coords:   [4]float64{x2 - r, y2 - r, x2 + r, y2 + r},
			Fill:     c,
			Outline:  ColorBlack,
		}
	case KindLine:
		return NewLine(x1, y1, x2, y2, c)
	case KindCircle:
		return NewOval(x1, y1, x2, y2, c)
	case KindRectangle:
		return NewRectangle(x1, y1, x2, y2, c)
	}
	panic(fmt.Sprintf("state: unhandled kind %v", kind))
}

// NewLine returns a line stroked with c.
func NewLine(x1, y1, x2, y2 float64, c Color) Shape {
	return Shape{Geometry: GeometryLine, Coords: [4]float64{x1, y1, x2, y2}, Fill: c}
}

// NewOval returns an unfilled oval inside the given box.
func NewOval(x1, y1, x2, y2 float64, outline Color) Shape {
	return Shape{Geometry: GeometryOval, Coords: [4]float64{x1, y1, x2, y2}, Outline: outline}
}

// NewRectangle returns an unfilled rectangle.
func NewRectangle(x1, y1, x2, y2 float64, outline Color) Shape {
	return Shape{Geometry: GeometryRectangle, Coords: [4]float64{x1, y1, x2, y2}, Outline: outline}
}

// Stroke is the color the shape's edge is painted with.
func (s Shape) Stroke() Color {
	if s.Geometry == GeometryLine {
		return s.Fill
	}
	return s.Outline
}

// Box returns the coords ordered as min corner then max corner.
func (s Shape) Box() (minX, minY, maxX, maxY float64) {
	minX, maxX = s.Coords[0], s.Coords[2]
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY = s.Coords[1], s.Coords[3]
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return minX, minY, maxX, maxY
}
