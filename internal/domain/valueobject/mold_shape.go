// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Shape errors define domain-specific error conditions for molds.
var (
	ErrInvalidDimension = errors.New("invalid mold dimension")
	ErrUnsupportedShape = errors.New("unsupported mold shape")
)

// ShapeKind names a mold shape variant.
type ShapeKind string

// Supported mold shapes.
const (
	ShapeRectangle ShapeKind = "rectangle" // Tables, trays
	ShapeCircle    ShapeKind = "circle"    // Coasters, round art
)

// ShapeKinds returns every supported shape kind.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{ShapeRectangle, ShapeCircle}
}

// ParseShapeKind converts a text shape name into a ShapeKind.
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Parameters:
//   - s: shape name (e.g., "rectangle", "Circle")
//
// Returns:
//   - ShapeKind: the matching shape kind
//   - error: ErrUnsupportedShape if the name is unknown
func ParseShapeKind(s string) (ShapeKind, error) {
	switch ShapeKind(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeRectangle:
		return ShapeRectangle, nil
	case ShapeCircle:
		return ShapeCircle, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedShape, s, ShapeKinds())
}

// DimensionError describes which dimension failed validation.
type DimensionError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s must be a finite number greater than zero, got %v", ErrInvalidDimension, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// MoldShape is a closed set of mold geometries.
// Only Rectangle and Circle implement it; the unexported marker keeps
// other packages from adding variants.
//
// Example usage:
//
//	shape, err := valueobject.NewRectangle(24, 12, 1)
//	cubicInches, err := valueobject.CubicInches(shape)
type MoldShape interface {
	// Kind returns the shape variant name.
	Kind() ShapeKind

	// Depth returns the pour depth in inches.
	Depth() float64

	// Validate checks that every dimension is finite and positive.
	Validate() error

	// String returns a formatted string representation.
	String() string

	moldShape()
}

// Rectangle is a rectangular prism mold. All measurements are in inches.
type Rectangle struct {
	// Length in inches.
	Length float64 `json:"length"`

	// Width in inches.
	Width float64 `json:"width"`

	// DepthInches is the pour depth in inches.
	DepthInches float64 `json:"depth"`
}

// NewRectangle creates a validated Rectangle.
//
// Parameters:
//   - length: Length in inches
//   - width: Width in inches
//   - depth: Pour depth in inches
//
// Returns:
//   - Rectangle: new Rectangle value object
//   - error: DimensionError if any dimension is not a positive finite number
func NewRectangle(length, width, depth float64) (Rectangle, error) {
	r := Rectangle{Length: length, Width: width, DepthInches: depth}
	if err := r.Validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// Kind implements MoldShape.
func (r Rectangle) Kind() ShapeKind { return ShapeRectangle }

// Depth implements MoldShape.
func (r Rectangle) Depth() float64 { return r.DepthInches }

// Validate implements MoldShape.
func (r Rectangle) Validate() error {
	return validateDimensions(
		dimension{"length", r.Length},
		dimension{"width", r.Width},
		dimension{"depth", r.DepthInches},
	)
}

// String returns a formatted string representation (e.g., "24.0x12.0x1.0 in").
func (r Rectangle) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f in", r.Length, r.Width, r.DepthInches)
}

func (Rectangle) moldShape() {}

// Circle is a cylindrical mold. All measurements are in inches.
type Circle struct {
	// Diameter in inches.
	Diameter float64 `json:"diameter"`

	// DepthInches is the pour depth in inches.
	DepthInches float64 `json:"depth"`
}

// NewCircle creates a validated Circle.
//
// Parameters:
//   - diameter: Diameter in inches
//   - depth: Pour depth in inches
//
// Returns:
//   - Circle: new Circle value object
//   - error: DimensionError if any dimension is not a positive finite number
func NewCircle(diameter, depth float64) (Circle, error) {
	c := Circle{Diameter: diameter, DepthInches: depth}
	if err := c.Validate(); err != nil {
		return Circle{}, err
	}
	return c, nil
}

// Kind implements MoldShape.
func (c Circle) Kind() ShapeKind { return ShapeCircle }

// Depth implements MoldShape.
func (c Circle) Depth() float64 { return c.DepthInches }

// Radius returns half the diameter.
func (c Circle) Radius() float64 { return c.Diameter / 2 }

// Validate implements MoldShape.
func (c Circle) Validate() error {
	return validateDimensions(
		dimension{"diameter", c.Diameter},
		dimension{"depth", c.DepthInches},
	)
}

// String returns a formatted string representation (e.g., "ø4.0x0.5 in").
func (c Circle) String() string {
	return fmt.Sprintf("ø%.1fx%.1f in", c.Diameter, c.DepthInches)
}

func (Circle) moldShape() {}

// MoldDimensions is the flat set of measurements a caller may supply.
// Which fields matter depends on the shape: Length, Width and Depth for a
// rectangle; Diameter and Depth for a circle. Other fields are ignored.
type MoldDimensions struct {
	Length   float64
	Width    float64
	Diameter float64
	Depth    float64
}

// NewMoldShape builds the shape variant for kind from flat dimensions.
//
// Parameters:
//   - kind: the shape variant
//   - dims: measurements in inches
//
// Returns:
//   - MoldShape: Rectangle or Circle
//   - error: ErrUnsupportedShape or a DimensionError
func NewMoldShape(kind ShapeKind, dims MoldDimensions) (MoldShape, error) {
	switch kind {
	case ShapeRectangle:
		r, err := NewRectangle(dims.Length, dims.Width, dims.Depth)
		if err != nil {
			return nil, err
		}
		return r, nil
	case ShapeCircle:
		c, err := NewCircle(dims.Diameter, dims.Depth)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedShape, kind)
}

// CubicInches computes the mold volume in cubic inches.
//
// Parameters:
//   - shape: the mold geometry
//
// Returns:
//   - float64: volume in in³
//   - error: DimensionError if the shape has an invalid dimension or the
//     dimensions are too large for the volume to be represented
func CubicInches(shape MoldShape) (float64, error) {
	if shape == nil {
		return 0, ErrUnsupportedShape
	}
	if err := shape.Validate(); err != nil {
		return 0, err
	}

	var volume float64
	switch s := shape.(type) {
	case Rectangle:
		volume = s.Length * s.Width * s.DepthInches
	case Circle:
		radius := s.Radius()
		volume = math.Pi * (radius * radius) * s.DepthInches
	default:
		// unreachable while the marker method stays unexported
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedShape, shape)
	}

	if err := validateDimensions(dimension{"volume", volume}); err != nil {
		return 0, err
	}
	return volume, nil
}

type dimension struct {
	name  string
	value float64
}

func validateDimensions(dims ...dimension) error {
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) || d.value <= 0 {
			return &DimensionError{Field: d.name, Value: d.value}
		}
	}
	return nil
}
