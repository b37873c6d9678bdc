package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// CalculateRequest is the JSON body for POST /api/v1/calculations.
// Dimensions are pointers so a missing field is told apart from an explicit zero,
// which the domain rejects as an invalid dimension.
type CalculateRequest struct {
	// Shape is "rectangle" or "circle".
	Shape string `json:"shape" validate:"required"`

	// Length in inches (rectangle only).
	Length *float64 `json:"length,omitempty" validate:"required_if=Shape rectangle"`

	// Width in inches (rectangle only).
	Width *float64 `json:"width,omitempty" validate:"required_if=Shape rectangle"`

	// Diameter in inches (circle only).
	Diameter *float64 `json:"diameter,omitempty" validate:"required_if=Shape circle"`

	// Depth is the pour depth in inches.
	Depth *float64 `json:"depth" validate:"required"`

	// MarginRate overrides the configured safety margin (0.05 = 5%).
	// The range is checked by valueobject.NewMarginRate.
	MarginRate *float64 `json:"margin_rate,omitempty"`

	// MixRatio overrides the configured Part A:Part B ratio (e.g., "1:1").
	MixRatio string `json:"mix_ratio,omitempty" validate:"omitempty,max=11"`
}

// Normalize lowercases and trims the shape so conditional validation matches.
func (r *CalculateRequest) Normalize() {
	r.Shape = strings.ToLower(strings.TrimSpace(r.Shape))
	r.MixRatio = strings.TrimSpace(r.MixRatio)
}

// Dimensions flattens the request measurements, treating missing values as zero.
func (r *CalculateRequest) Dimensions() valueobject.MoldDimensions {
	return valueobject.MoldDimensions{
		Length:   deref(r.Length),
		Width:    deref(r.Width),
		Diameter: deref(r.Diameter),
		Depth:    deref(r.Depth),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// CalculationResponse is the payload returned for a calculation.
type CalculationResponse struct {
	// CalculationID identifies the calculation in logs.
	CalculationID string `json:"calculation_id"`

	// Shape is the mold shape kind.
	Shape string `json:"shape"`

	// Dimensions echoes the measurements used.
	Dimensions DimensionsResponse `json:"dimensions"`

	// Volume holds raw, converted and margined volumes.
	Volume VolumeResponse `json:"volume"`

	// Mix holds the Part A / Part B split.
	Mix MixResponse `json:"mix"`

	// Recommendation holds the resin category and products.
	Recommendation RecommendationResponse `json:"recommendation"`

	// Display holds human-friendly rounded values.
	Display DisplayResponse `json:"display"`

	// CreatedAt is when the calculation ran (RFC 3339).
	CreatedAt string `json:"created_at"`
}

// DimensionsResponse echoes the mold measurements in inches.
type DimensionsResponse struct {
	Length   float64 `json:"length,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Diameter float64 `json:"diameter,omitempty"`
	Depth    float64 `json:"depth"`
}

// VolumeResponse carries every volume unit.
type VolumeResponse struct {
	CubicInches         float64 `json:"cubic_inches"`
	FluidOunces         float64 `json:"fluid_ounces"`
	Liters              float64 `json:"liters"`
	Gallons             float64 `json:"gallons"`
	MarginedFluidOunces float64 `json:"margined_fluid_ounces"`
	MarginedLiters      float64 `json:"margined_liters"`
	MarginRate          float64 `json:"margin_rate"`
}

// MixResponse carries the Part A / Part B split.
type MixResponse struct {
	Ratio       string  `json:"ratio"`
	PartAOunces float64 `json:"part_a_ounces"`
	PartBOunces float64 `json:"part_b_ounces"`
}

// RecommendationResponse carries the resin category and products to buy.
type RecommendationResponse struct {
	Category    string            `json:"category"`
	DeepPour    bool              `json:"deep_pour"`
	Message     string            `json:"message"`
	Product     *ProductResponse  `json:"product,omitempty"`
	Accessories []ProductResponse `json:"accessories"`
}

// DisplayResponse holds values rounded the way they are shown to users:
// ounces to 1 decimal, liters to 2 and gallons to 3.
type DisplayResponse struct {
	MarginedFluidOunces string `json:"margined_fluid_ounces"`
	MarginedLiters      string `json:"margined_liters"`
	Gallons             string `json:"gallons"`
	PartAOunces         string `json:"part_a_ounces"`
	PartBOunces         string `json:"part_b_ounces"`
	MarginPercent       string `json:"margin_percent"`
}

// ProductResponse is a catalog product.
type ProductResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Price       string `json:"price,omitempty"`
	BestSeller  bool   `json:"best_seller"`
}

// NewCalculationResponse maps a calculation and its products to the API payload.
//
// Parameters:
//   - calc: the calculation
//   - product: the recommended resin, may be nil
//   - accessories: extra products to suggest
//
// Returns:
//   - CalculationResponse: the response payload
func NewCalculationResponse(calc *entity.Calculation, product *entity.ResinProduct, accessories []*entity.ResinProduct) CalculationResponse {
	v := calc.Volume
	resp := CalculationResponse{
		CalculationID: calc.ID.String(),
		Shape:         string(calc.ShapeKind()),
		Dimensions:    newDimensionsResponse(calc.Shape),
		Volume: VolumeResponse{
			CubicInches:         v.CubicInches,
			FluidOunces:         v.FluidOunces,
			Liters:              v.Liters,
			Gallons:             v.Gallons,
			MarginedFluidOunces: v.MarginedFluidOunces,
			MarginedLiters:      v.MarginedLiters,
			MarginRate:          float64(v.MarginRate),
		},
		Mix: MixResponse{
			Ratio:       calc.Mix.Ratio,
			PartAOunces: calc.Mix.PartAOunces,
			PartBOunces: calc.Mix.PartBOunces,
		},
		Recommendation: RecommendationResponse{
			Category:    string(calc.Recommendation.Category),
			DeepPour:    calc.IsDeepPour(),
			Message:     calc.Recommendation.Message,
			Accessories: NewProductResponses(accessories),
		},
		Display: DisplayResponse{
			MarginedFluidOunces: FormatOunces(v.MarginedFluidOunces),
			MarginedLiters:      FormatLiters(v.MarginedLiters),
			Gallons:             FormatGallons(v.Gallons),
			PartAOunces:         FormatOunces(calc.Mix.PartAOunces),
			PartBOunces:         FormatOunces(calc.Mix.PartBOunces),
			MarginPercent:       Round(v.MarginRate.Percent(), 1) + "%",
		},
		CreatedAt: calc.CreatedAt.Format(time.RFC3339),
	}
	if product != nil {
		p := NewProductResponse(product)
		resp.Recommendation.Product = &p
	}
	return resp
}

func newDimensionsResponse(shape valueobject.MoldShape) DimensionsResponse {
	switch s := shape.(type) {
	case valueobject.Rectangle:
		return DimensionsResponse{Length: s.Length, Width: s.Width, Depth: s.DepthInches}
	case valueobject.Circle:
		return DimensionsResponse{Diameter: s.Diameter, Depth: s.DepthInches}
	}
	return DimensionsResponse{}
}

// NewProductResponse maps a catalog product.
func NewProductResponse(p *entity.ResinProduct) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		URL:         p.URL,
		BestSeller:  p.BestSeller,
	}
	if p.HasPrice() {
		resp.Price = p.Price.Format()
	}
	return resp
}

// NewProductResponses maps a product list; the result is never nil.
func NewProductResponses(products []*entity.ResinProduct) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// Round formats v rounded half away from zero to the given number of places.
func Round(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// FormatOunces formats fluid ounces to one decimal (e.g., "167.6 fl oz").
func FormatOunces(v float64) string {
	return Round(v, 1) + " fl oz"
}

// FormatLiters formats liters to two decimals (e.g., "4.96 L").
func FormatLiters(v float64) string {
	return Round(v, 2) + " L"
}

// FormatGallons formats gallons to three decimals (e.g., "1.247 gal").
func FormatGallons(v float64) string {
	return Round(v, 3) + " gal"
}
