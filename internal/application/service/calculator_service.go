// Package service contains the application services that orchestrate the domain.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/repository"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// ErrCatalogEmpty is returned by Ready when no product can be recommended.
var ErrCatalogEmpty = errors.New("product catalog is empty")

// Metric names recorded by the calculator.
const (
	MetricCalculationsTotal  = "calculations_total"
	MetricCalculationErrors  = "calculation_errors_total"
	MetricMarginedOunces     = "margined_fluid_ounces"
	MetricCalculationLatency = "calculation_duration"
)

// Defaults are applied when a request leaves a tunable unset.
type Defaults struct {
	// MarginRate is the overage added to the raw volume
	MarginRate valueobject.MarginRate

	// MixRatio is the Part A to Part B ratio
	MixRatio valueobject.MixRatio
}

// DefaultDefaults returns 5% margin and a 1:1 mix.
func DefaultDefaults() Defaults {
	return Defaults{
		MarginRate: valueobject.DefaultMarginRate,
		MixRatio:   valueobject.OneToOne,
	}
}

// CalculateInput is one calculation request.
type CalculateInput struct {
	// Shape is the mold geometry (required)
	Shape valueobject.MoldShape

	// MarginRate overrides the default margin when set
	MarginRate *float64

	// MixRatio overrides the default ratio when non-empty (e.g., "2:1")
	MixRatio string
}

// CalculationResult is a calculation plus the products to surface with it.
type CalculationResult struct {
	// Calculation holds volumes, mix split and category
	Calculation *entity.Calculation

	// Product is the recommended resin, nil when the catalog has none for the category
	Product *entity.ResinProduct

	// Accessories are the extra tools to suggest (mixing kit, ...)
	Accessories []*entity.ResinProduct
}

// CalculatorService runs resin calculations and resolves product recommendations.
type CalculatorService struct {
	catalog  repository.ProductCatalog
	logger   port.Logger
	metrics  port.Metrics
	defaults Defaults
	now      func() time.Time
}

// NewCalculatorService creates a CalculatorService.
//
// Parameters:
//   - catalog: product catalog used for recommendations
//   - logger: structured logger
//   - metrics: metrics recorder (port.NopMetrics{} to disable)
//   - defaults: margin and ratio defaults; the zero value means DefaultDefaults().
//     A zero MarginRate next to a set MixRatio is kept as an explicit 0% margin,
//     and a zero MixRatio always falls back to 1:1.
//
// Returns:
//   - *CalculatorService: the service
func NewCalculatorService(
	catalog repository.ProductCatalog,
	logger port.Logger,
	metrics port.Metrics,
	defaults Defaults,
) *CalculatorService {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	if defaults == (Defaults{}) {
		defaults = DefaultDefaults()
	}
	if defaults.MixRatio.IsZero() {
		defaults.MixRatio = DefaultDefaults().MixRatio
	}
	return &CalculatorService{
		catalog:  catalog,
		logger:   logger,
		metrics:  metrics,
		defaults: defaults,
		now:      time.Now,
	}
}

// Defaults returns the defaults the service applies.
func (s *CalculatorService) Defaults() Defaults {
	return s.defaults
}

// Calculate runs the full pipeline for one mold.
//
// Parameters:
//   - ctx: request context, used for log correlation
//   - in: shape and optional overrides
//
// Returns:
//   - *CalculationResult: volumes, mix split, category and products
//   - error: ErrMissingShape, DimensionError, ErrInvalidMarginRate or ErrInvalidMixRatio
func (s *CalculatorService) Calculate(ctx context.Context, in CalculateInput) (*CalculationResult, error) {
	log := s.logger.WithContext(ctx)
	start := s.now()

	opts, err := s.options(in)
	if err != nil {
		s.recordError(in.Shape, err)
		log.Warn("Rejected calculation options", "error", err)
		return nil, err
	}

	calc, err := entity.NewCalculation(in.Shape, opts)
	if err != nil {
		s.recordError(in.Shape, err)
		log.Warn("Rejected mold dimensions", "error", err)
		return nil, err
	}

	log = log.With("calculation_id", calc.ID.String())

	result := &CalculationResult{Calculation: calc}
	result.Product = s.primaryProduct(ctx, log, calc.Recommendation.Category)
	result.Accessories = s.accessories(ctx, log)

	tags := map[string]string{
		"shape":    string(calc.ShapeKind()),
		"category": string(calc.Recommendation.Category),
	}
	s.metrics.Counter(MetricCalculationsTotal, 1, tags)
	s.metrics.Histogram(MetricMarginedOunces, calc.Volume.MarginedFluidOunces, tags)
	s.metrics.Timing(MetricCalculationLatency, s.now().Sub(start), tags)

	if calc.IsDeepPour() {
		log.Info("Deep pour required",
			"depth_inches", calc.Shape.Depth(),
			"threshold_inches", valueobject.DeepPourThresholdInches,
		)
	}

	log.Debug("Calculation completed",
		"shape", calc.Shape.String(),
		"cubic_inches", calc.Volume.CubicInches,
		"margined_fluid_ounces", calc.Volume.MarginedFluidOunces,
		"margined_liters", calc.Volume.MarginedLiters,
		"category", calc.Recommendation.Category,
	)

	return result, nil
}

// options resolves request overrides against the service defaults.
func (s *CalculatorService) options(in CalculateInput) (entity.CalculationOptions, error) {
	rate := s.defaults.MarginRate
	if in.MarginRate != nil {
		r, err := valueobject.NewMarginRate(*in.MarginRate)
		if err != nil {
			return entity.CalculationOptions{}, err
		}
		rate = r
	}

	ratio := s.defaults.MixRatio
	if in.MixRatio != "" {
		r, err := valueobject.ParseMixRatio(in.MixRatio)
		if err != nil {
			return entity.CalculationOptions{}, err
		}
		ratio = r
	}

	return entity.CalculationOptions{MarginRate: &rate, MixRatio: ratio}, nil
}

// primaryProduct never fails the calculation; a missing product is only logged.
func (s *CalculatorService) primaryProduct(ctx context.Context, log port.Logger, category valueobject.ProductCategory) *entity.ResinProduct {
	p, err := s.catalog.PrimaryFor(ctx, category)
	if err != nil {
		log.Warn("No catalog product for category", "category", category, "error", err)
		return nil
	}
	return p
}

func (s *CalculatorService) accessories(ctx context.Context, log port.Logger) []*entity.ResinProduct {
	category := valueobject.CategoryAccessory
	items, err := s.catalog.FindAll(ctx, repository.ProductFilter{Category: &category})
	if err != nil {
		log.Warn("Failed to list accessories", "error", err)
		return nil
	}
	return items
}

func (s *CalculatorService) recordError(shape valueobject.MoldShape, err error) {
	kind := "unknown"
	if shape != nil {
		kind = string(shape.Kind())
	}
	s.metrics.Counter(MetricCalculationErrors, 1, map[string]string{
		"shape":  kind,
		"reason": errorReason(err),
	})
}

// errorReason maps an error to a low-cardinality metric label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, valueobject.ErrInvalidDimension):
		return "invalid_dimension"
	case errors.Is(err, valueobject.ErrUnsupportedShape), errors.Is(err, entity.ErrMissingShape):
		return "unsupported_shape"
	case errors.Is(err, valueobject.ErrInvalidMarginRate):
		return "invalid_margin_rate"
	case errors.Is(err, valueobject.ErrInvalidMixRatio):
		return "invalid_mix_ratio"
	default:
		return "other"
	}
}

// ListProducts returns catalog products, optionally filtered by category name.
//
// Parameters:
//   - ctx: request context
//   - category: category name, or "" for every product
//
// Returns:
//   - []*entity.ResinProduct: matching products in catalog order
//   - error: ErrInvalidCategory for an unknown category name
func (s *CalculatorService) ListProducts(ctx context.Context, category string) ([]*entity.ResinProduct, error) {
	filter := repository.ProductFilter{}
	if category != "" {
		c, ok := valueobject.ParseProductCategory(category)
		if !ok {
			return nil, fmt.Errorf("%w: %q", repository.ErrInvalidCategory, category)
		}
		filter.Category = &c
	}
	return s.catalog.FindAll(ctx, filter)
}

// GetProduct looks up one catalog product.
//
// Parameters:
//   - ctx: request context
//   - sku: product SKU, surrounding whitespace ignored
//
// Returns:
//   - *entity.ResinProduct: the product
//   - error: ErrProductNotFound if no product has the SKU
func (s *CalculatorService) GetProduct(ctx context.Context, sku string) (*entity.ResinProduct, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, fmt.Errorf("%w: empty sku", repository.ErrProductNotFound)
	}
	return s.catalog.GetBySKU(ctx, sku)
}

// Ready reports whether the service can serve recommendations.
//
// Returns:
//   - error: ErrCatalogEmpty if the catalog has no products
func (s *CalculatorService) Ready(ctx context.Context) error {
	n, err := s.catalog.Count(ctx)
	if err != nil {
		return fmt.Errorf("count catalog products: %w", err)
	}
	if n == 0 {
		return ErrCatalogEmpty
	}
	return nil
}
