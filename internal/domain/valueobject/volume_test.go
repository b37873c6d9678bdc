package valueobject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	assert.InDelta(t, 159.584544, ToFluidOunces(288), 1e-9)
	assert.InDelta(t, 0.0295735, ToLiters(1), 1e-12)
	assert.InDelta(t, 1.0, ToGallons(231), 1e-12)
	assert.Zero(t, ToFluidOunces(0))
}

func TestToGallons_RoundTrip(t *testing.T) {
	for _, v := range []float64{0.5, 1, 12.5, 288, 10000} {
		assert.InDelta(t, v, ToGallons(v)*CubicInchesPerGallon, 1e-9)
	}
}

func TestNewMarginRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{"default", 0.05, false},
		{"zero", 0, false},
		{"full", 1, false},
		{"negative", -0.01, true},
		{"above one", 1.5, true},
		{"NaN", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := NewMarginRate(tt.rate)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMarginRate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MarginRate(tt.rate), rate)
		})
	}
}

func TestMarginRate_FactorAndPercent(t *testing.T) {
	rate := MarginRate(DefaultMarginRate)
	assert.InDelta(t, 1.05, rate.Factor(), 1e-12)
	assert.InDelta(t, 5.0, rate.Percent(), 1e-12)
}

func TestApplyMargin(t *testing.T) {
	rate := MarginRate(0.05)
	assert.InDelta(t, 105.0, ApplyMargin(100, rate), 1e-9)
	assert.Equal(t, 42.0, ApplyMargin(42, 0))
}

func TestApplyMargin_NotIdempotent(t *testing.T) {
	rate := MarginRate(0.05)
	once := ApplyMargin(100, rate)
	twice := ApplyMargin(once, rate)

	assert.NotEqual(t, once, twice)
	assert.InDelta(t, 110.25, twice, 1e-9)
}

func TestComputeVolume_RectangleTableTop(t *testing.T) {
	shape, err := NewRectangle(24, 12, 1)
	require.NoError(t, err)

	v, err := ComputeVolume(shape, DefaultMarginRate)
	require.NoError(t, err)

	assert.InDelta(t, 288.0, v.CubicInches, 1e-9)
	assert.InDelta(t, 159.585, v.FluidOunces, 1e-3)
	assert.InDelta(t, 167.564, v.MarginedFluidOunces, 1e-3)
	assert.InDelta(t, 1.2468, v.Gallons, 1e-4)
	assert.Equal(t, MarginRate(DefaultMarginRate), v.MarginRate)
}

func TestComputeVolume_CircleCoaster(t *testing.T) {
	shape, err := NewCircle(4, 0.5)
	require.NoError(t, err)

	v, err := ComputeVolume(shape, DefaultMarginRate)
	require.NoError(t, err)

	assert.InDelta(t, 6.2832, v.CubicInches, 1e-4)
	assert.InDelta(t, 3.4815, v.FluidOunces, 1e-4)
	assert.InDelta(t, 3.6556, v.MarginedFluidOunces, 1e-4)
}

func TestComputeVolume_MarginAppliedIndependentlyToLiters(t *testing.T) {
	v := NewVolumeResult(288, DefaultMarginRate)

	assert.InDelta(t, v.FluidOunces*LitersPerFluidOunce, v.Liters, 1e-12)
	assert.InDelta(t, v.Liters*1.05, v.MarginedLiters, 1e-12)
	// Gallons never carry the margin
	assert.InDelta(t, 288.0/231.0, v.Gallons, 1e-12)
}

func TestComputeVolume_MarginedOverflow(t *testing.T) {
	full, err := NewMarginRate(1)
	require.NoError(t, err)

	_, err = ComputeVolume(Rectangle{Length: math.MaxFloat64, Width: 1, DepthInches: 1}, full)
	require.ErrorIs(t, err, ErrInvalidDimension)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, "margined_fluid_ounces", dimErr.Field)
}

func TestComputeVolume_InvalidShape(t *testing.T) {
	_, err := ComputeVolume(Rectangle{Length: 24, Width: 0, DepthInches: 1}, DefaultMarginRate)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
