package valueobject

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicInches(t *testing.T) {
	tests := []struct {
		name     string
		shape    MoldShape
		expected float64
	}{
		{
			name:     "rectangle table top",
			shape:    Rectangle{Length: 24, Width: 12, DepthInches: 1},
			expected: 288,
		},
		{
			name:     "rectangle thin tray",
			shape:    Rectangle{Length: 10, Width: 5, DepthInches: 0.25},
			expected: 12.5,
		},
		{
			name:     "circle coaster",
			shape:    Circle{Diameter: 4, DepthInches: 0.5},
			expected: 2 * math.Pi,
		},
		{
			name:     "circle uses radius squared",
			shape:    Circle{Diameter: 10, DepthInches: 1},
			expected: 25 * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CubicInches(tt.shape)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCubicInches_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name  string
		shape MoldShape
		field string
	}{
		{"zero length", Rectangle{Length: 0, Width: 12, DepthInches: 1}, "length"},
		{"negative width", Rectangle{Length: 24, Width: -1, DepthInches: 1}, "width"},
		{"zero depth", Rectangle{Length: 24, Width: 12, DepthInches: 0}, "depth"},
		{"NaN depth", Rectangle{Length: 24, Width: 12, DepthInches: math.NaN()}, "depth"},
		{"infinite length", Rectangle{Length: math.Inf(1), Width: 12, DepthInches: 1}, "length"},
		{"zero diameter", Circle{Diameter: 0, DepthInches: 1}, "diameter"},
		{"negative circle depth", Circle{Diameter: 4, DepthInches: -0.5}, "depth"},
		{"rectangle volume overflows", Rectangle{Length: 1e200, Width: 1e200, DepthInches: 1}, "volume"},
		{"circle volume overflows", Circle{Diameter: 1e200, DepthInches: 1}, "volume"},
		{"volume underflows to zero", Rectangle{Length: 1e-200, Width: 1e-200, DepthInches: 1}, "volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CubicInches(tt.shape)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDimension)

			var dimErr *DimensionError
			require.True(t, errors.As(err, &dimErr))
			assert.Equal(t, tt.field, dimErr.Field)
		})
	}
}

func TestCubicInches_NilShape(t *testing.T) {
	_, err := CubicInches(nil)
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestCubicInches_MonotonicInEachDimension(t *testing.T) {
	base := Rectangle{Length: 10, Width: 8, DepthInches: 1}
	baseVolume, err := CubicInches(base)
	require.NoError(t, err)

	grown := []Rectangle{
		{Length: 11, Width: 8, DepthInches: 1},
		{Length: 10, Width: 9, DepthInches: 1},
		{Length: 10, Width: 8, DepthInches: 1.5},
	}
	for _, r := range grown {
		v, err := CubicInches(r)
		require.NoError(t, err)
		assert.Greater(t, v, baseVolume, r.String())
	}

	small, err := CubicInches(Circle{Diameter: 4, DepthInches: 1})
	require.NoError(t, err)
	large, err := CubicInches(Circle{Diameter: 5, DepthInches: 1})
	require.NoError(t, err)
	assert.Greater(t, large, small)
}

func TestNewMoldShape(t *testing.T) {
	t.Run("rectangle ignores diameter", func(t *testing.T) {
		shape, err := NewMoldShape(ShapeRectangle, MoldDimensions{Length: 24, Width: 12, Diameter: 99, Depth: 1})
		require.NoError(t, err)
		assert.Equal(t, Rectangle{Length: 24, Width: 12, DepthInches: 1}, shape)
		assert.Equal(t, ShapeRectangle, shape.Kind())
		assert.Equal(t, 1.0, shape.Depth())
	})

	t.Run("circle ignores length and width", func(t *testing.T) {
		shape, err := NewMoldShape(ShapeCircle, MoldDimensions{Length: 1, Width: 1, Diameter: 4, Depth: 0.5})
		require.NoError(t, err)
		assert.Equal(t, Circle{Diameter: 4, DepthInches: 0.5}, shape)
		assert.Equal(t, ShapeCircle, shape.Kind())
	})

	t.Run("invalid dimension returns nil shape", func(t *testing.T) {
		shape, err := NewMoldShape(ShapeCircle, MoldDimensions{Depth: 1})
		assert.Nil(t, shape)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("unknown kind", func(t *testing.T) {
		shape, err := NewMoldShape(ShapeKind("triangle"), MoldDimensions{Length: 1, Width: 1, Depth: 1})
		assert.Nil(t, shape)
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})
}

func TestParseShapeKind(t *testing.T) {
	tests := []struct {
		input    string
		expected ShapeKind
		wantErr  bool
	}{
		{"rectangle", ShapeRectangle, false},
		{"Rectangle", ShapeRectangle, false},
		{"  CIRCLE ", ShapeCircle, false},
		{"circle", ShapeCircle, false},
		{"triangle", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseShapeKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestShapeStrings(t *testing.T) {
	assert.Equal(t, "24.0x12.0x1.0 in", Rectangle{Length: 24, Width: 12, DepthInches: 1}.String())
	assert.Equal(t, "ø4.0x0.5 in", Circle{Diameter: 4, DepthInches: 0.5}.String())
	assert.Equal(t, 2.0, Circle{Diameter: 4, DepthInches: 0.5}.Radius())
	assert.Equal(t, []ShapeKind{ShapeRectangle, ShapeCircle}, ShapeKinds())
}
