package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedShapeType is returned for an stype outside circle,
	// ellipse, box and polygon.
	ErrUnsupportedShapeType = errors.New("unsupported shape type")
	// ErrInvalidShape is returned when the shape parameters cannot be parsed
	// or do not match the arity of the shape kind.
	ErrInvalidShape = errors.New("invalid shape parameters")
)

// ShapeKind identifies the geometry of a region.
type ShapeKind string

const (
	ShapeCircle  ShapeKind = "circle"
	ShapeEllipse ShapeKind = "ellipse"
	ShapeBox     ShapeKind = "box"
	ShapePolygon ShapeKind = "polygon"
)

// Valid reports whether k is one of the supported shape kinds.
func (k ShapeKind) Valid() bool {
	switch k {
	case ShapeCircle, ShapeEllipse, ShapeBox, ShapePolygon:
		return true
	}
	return false
}

// Size is a linear size as written in the catalog: the trimmed source token
// and its parsed value, both in the record's shape unit.
type Size struct {
	Raw   string
	Value float64
}

// ShapeParameters is implemented by Circle, Ellipse, Box and Polygon.
type ShapeParameters interface {
	Kind() ShapeKind
	isShape()
}

// Circle has a single radius.
type Circle struct {
	Radius Size
}

// Ellipse has two semi-axes and a rotation angle in degrees.
type Ellipse struct {
	Major, Minor Size
	Angle        Size
}

// Box has width, height and a rotation angle in degrees.
type Box struct {
	Width, Height Size
	Angle         Size
}

// Polygon holds the vertices after the center, as (x, y) offset pairs.
type Polygon struct {
	Offsets [][2]Size
}

func (Circle) Kind() ShapeKind  { return ShapeCircle }
func (Ellipse) Kind() ShapeKind { return ShapeEllipse }
func (Box) Kind() ShapeKind     { return ShapeBox }
func (Polygon) Kind() ShapeKind { return ShapePolygon }

func (Circle) isShape()  {}
func (Ellipse) isShape() {}
func (Box) isShape()     {}
func (Polygon) isShape() {}

// ParseShape splits text on commas and builds the parameters for kind.
//
//	circle   radius
//	ellipse  radius, radius, angle
//	box      width, height, angle
//	polygon  x2, y2, x3, y3, ...   (x1, y1 is the record's center)
func ParseShape(kind ShapeKind, text string) (ShapeParameters, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShapeType, string(kind))
	}

	parts := strings.Split(text, ",")
	sizes := make([]Size, 0, len(parts))
	for i, p := range parts {
		raw := strings.TrimSpace(p)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %d (%q) is not a number", ErrInvalidShape, i+1, raw)
		}
		sizes = append(sizes, Size{Raw: raw, Value: v})
	}

	switch kind {
	case ShapeCircle:
		if len(sizes) != 1 {
			return nil, arityError(kind, "1", len(sizes))
		}
		return Circle{Radius: sizes[0]}, nil
	case ShapeEllipse:
		if len(sizes) != 3 {
			return nil, arityError(kind, "3", len(sizes))
		}
		return Ellipse{Major: sizes[0], Minor: sizes[1], Angle: sizes[2]}, nil
	case ShapeBox:
		if len(sizes) != 3 {
			return nil, arityError(kind, "3", len(sizes))
		}
		return Box{Width: sizes[0], Height: sizes[1], Angle: sizes[2]}, nil
	default:
		if len(sizes) < 6 || len(sizes)%2 != 0 {
			return nil, arityError(kind, "an even count >= 6", len(sizes))
		}
		offsets := make([][2]Size, 0, len(sizes)/2)
		for i := 0; i < len(sizes); i += 2 {
			offsets = append(offsets, [2]Size{sizes[i], sizes[i+1]})
		}
		return Polygon{Offsets: offsets}, nil
	}
}

func arityError(kind ShapeKind, want string, got int) error {
	return fmt.Errorf("%w: %s expects %s parameters, got %d", ErrInvalidShape, kind, want, got)
}
