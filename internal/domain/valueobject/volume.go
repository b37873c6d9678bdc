package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// Volumetric conversion factors. These are kept as literals so results
// match published calculator output to the last rounding digit.
const (
	FluidOuncesPerCubicInch = 0.554113
	LitersPerFluidOunce     = 0.0295735
	CubicInchesPerGallon    = 231.0
)

// DefaultMarginRate is the overage added for spills and mixing-cup residue (5%).
const DefaultMarginRate = 0.05

// ErrInvalidMarginRate is returned when a margin rate is negative, above 100% or not finite.
var ErrInvalidMarginRate = errors.New("margin rate must be between 0 and 1")

// ToFluidOunces converts cubic inches to US fluid ounces.
func ToFluidOunces(cubicInches float64) float64 {
	return cubicInches * FluidOuncesPerCubicInch
}

// ToLiters converts US fluid ounces to liters.
func ToLiters(fluidOunces float64) float64 {
	return fluidOunces * LitersPerFluidOunce
}

// ToGallons converts cubic inches to US gallons.
func ToGallons(cubicInches float64) float64 {
	return cubicInches / CubicInchesPerGallon
}

// MarginRate is the fraction added on top of a raw volume (0.05 = 5%).
type MarginRate float64

// NewMarginRate creates a validated MarginRate.
//
// Parameters:
//   - rate: fraction to add (0 <= rate <= 1)
//
// Returns:
//   - MarginRate: the validated rate
//   - error: ErrInvalidMarginRate if rate is out of range or not finite
func NewMarginRate(rate float64) (MarginRate, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate > 1 {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidMarginRate, rate)
	}
	return MarginRate(rate), nil
}

// Factor returns the multiplier applied to a raw value (1 + rate).
func (m MarginRate) Factor() float64 {
	return 1 + float64(m)
}

// Percent returns the rate as a percentage (e.g., 5 for 0.05).
func (m MarginRate) Percent() float64 {
	return float64(m) * 100
}

// ApplyMargin adds the margin to a value.
//
// Parameters:
//   - value: the raw quantity
//   - rate: margin rate
//
// Returns:
//   - float64: value × (1 + rate)
func ApplyMargin(value float64, rate MarginRate) float64 {
	return value * rate.Factor()
}

// VolumeResult holds one mold volume expressed in every supported unit.
// Gallons is informational and never margined.
type VolumeResult struct {
	// CubicInches is the raw geometric volume.
	CubicInches float64 `json:"cubic_inches"`

	// FluidOunces is the raw volume in US fluid ounces.
	FluidOunces float64 `json:"fluid_ounces"`

	// Liters is the raw volume in liters.
	Liters float64 `json:"liters"`

	// Gallons is the raw volume in US gallons.
	Gallons float64 `json:"gallons"`

	// MarginedFluidOunces is the total mix to prepare, in fluid ounces.
	MarginedFluidOunces float64 `json:"margined_fluid_ounces"`

	// MarginedLiters is the total mix to prepare, in liters.
	MarginedLiters float64 `json:"margined_liters"`

	// MarginRate is the rate used for the margined values.
	MarginRate MarginRate `json:"margin_rate"`
}

// NewVolumeResult converts a raw cubic-inch volume into every unit and applies the margin.
//
// The margin is applied to ounces and to liters separately, each from its own
// unmargined value, rather than converting margined ounces into liters.
//
// Parameters:
//   - cubicInches: raw mold volume
//   - rate: margin rate
//
// Returns:
//   - VolumeResult: the converted and margined volumes
func NewVolumeResult(cubicInches float64, rate MarginRate) VolumeResult {
	ounces := ToFluidOunces(cubicInches)
	liters := ToLiters(ounces)

	return VolumeResult{
		CubicInches:         cubicInches,
		FluidOunces:         ounces,
		Liters:              liters,
		Gallons:             ToGallons(cubicInches),
		MarginedFluidOunces: ApplyMargin(ounces, rate),
		MarginedLiters:      ApplyMargin(liters, rate),
		MarginRate:          rate,
	}
}

// ComputeVolume runs geometry, conversion and margin for a shape.
//
// Parameters:
//   - shape: the mold geometry
//   - rate: margin rate
//
// Returns:
//   - VolumeResult: the computed volumes
//   - error: DimensionError if the shape has an invalid dimension
func ComputeVolume(shape MoldShape, rate MarginRate) (VolumeResult, error) {
	cubicInches, err := CubicInches(shape)
	if err != nil {
		return VolumeResult{}, err
	}

	result := NewVolumeResult(cubicInches, rate)
	if err := validateDimensions(
		dimension{"margined_fluid_ounces", result.MarginedFluidOunces},
		dimension{"margined_liters", result.MarginedLiters},
	); err != nil {
		return VolumeResult{}, err
	}
	return result, nil
}
