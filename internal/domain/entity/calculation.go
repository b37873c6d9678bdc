package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// ErrMissingShape is returned when a calculation is requested without a mold shape.
var ErrMissingShape = errors.New("mold shape is required")

// Calculation is the result of running one mold through the volume pipeline:
// shape → raw volume → converted volume → margined volume → mix split and recommendation.
// It is created fresh per request and never mutated or stored.
type Calculation struct {
	// ID identifies this calculation in logs and responses
	ID uuid.UUID `json:"id"`

	// Shape is the mold geometry that was measured
	Shape valueobject.MoldShape `json:"-"`

	// Volume holds the raw, converted and margined volumes
	Volume valueobject.VolumeResult `json:"volume"`

	// Mix holds the Part A / Part B quantities
	Mix valueobject.MixRecommendation `json:"mix"`

	// Recommendation holds the resin category to buy
	Recommendation valueobject.ProductRecommendation `json:"recommendation"`

	// CreatedAt is the timestamp when the calculation ran
	CreatedAt time.Time `json:"created_at"`
}

// CalculationOptions tunes a calculation. Zero values fall back to defaults.
type CalculationOptions struct {
	// MarginRate is the overage to add; nil means DefaultMarginRate
	MarginRate *valueobject.MarginRate

	// MixRatio is the Part A to Part B ratio; zero means 1:1
	MixRatio valueobject.MixRatio
}

// NewCalculation runs the full pipeline for a mold.
//
// Parameters:
//   - shape: the mold geometry (required)
//   - opts: margin and mix ratio overrides
//
// Returns:
//   - *Calculation: the computed calculation
//   - error: ErrMissingShape, or a DimensionError for invalid dimensions
func NewCalculation(shape valueobject.MoldShape, opts CalculationOptions) (*Calculation, error) {
	if shape == nil {
		return nil, ErrMissingShape
	}

	rate := valueobject.MarginRate(valueobject.DefaultMarginRate)
	if opts.MarginRate != nil {
		rate = *opts.MarginRate
	}

	volume, err := valueobject.ComputeVolume(shape, rate)
	if err != nil {
		return nil, err
	}

	return &Calculation{
		ID:             uuid.New(),
		Shape:          shape,
		Volume:         volume,
		Mix:            valueobject.SplitMix(volume.MarginedFluidOunces, opts.MixRatio),
		Recommendation: valueobject.RecommendProduct(shape.Depth()),
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// ShapeKind returns the variant of the measured mold.
func (c *Calculation) ShapeKind() valueobject.ShapeKind {
	return c.Shape.Kind()
}

// IsDeepPour reports whether the mold requires deep pour resin.
func (c *Calculation) IsDeepPour() bool {
	return c.Recommendation.IsDeepPour()
}
