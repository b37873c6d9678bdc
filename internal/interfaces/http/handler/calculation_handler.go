// Package handler contains the HTTP handlers of the resin calculator API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/internal/application/service"
	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/repository"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
	"github.com/hapkiduki/resin-calc/internal/interfaces/http/middleware"
	"github.com/hapkiduki/resin-calc/internal/validator"
)

// Calculator is the application service the handlers depend on.
type Calculator interface {
	Calculate(ctx context.Context, in service.CalculateInput) (*service.CalculationResult, error)
	ListProducts(ctx context.Context, category string) ([]*entity.ResinProduct, error)
	GetProduct(ctx context.Context, sku string) (*entity.ResinProduct, error)
	Ready(ctx context.Context) error
}

// CalculationHandler serves calculation and catalog endpoints.
type CalculationHandler struct {
	calculator Calculator
	logger     port.Logger
	version    string
}

// NewCalculationHandler creates a CalculationHandler.
//
// Parameters:
//   - calculator: the calculator service
//   - logger: structured logger
//   - version: API version reported in response meta
//
// Returns:
//   - *CalculationHandler: the handler
func NewCalculationHandler(calculator Calculator, logger port.Logger, version string) *CalculationHandler {
	return &CalculationHandler{
		calculator: calculator,
		logger:     logger,
		version:    version,
	}
}

// Calculate handles POST /api/v1/calculations.
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge, dto.CodePayloadTooLarge, "Request body is too large")
			return
		}
		h.respondError(w, r, http.StatusBadRequest, dto.CodeInvalidJSON, "Request body must be valid JSON")
		return
	}
	req.Normalize()

	if err := validator.Validate(req); err != nil {
		if !validator.IsValidationError(err) {
			h.logger.WithContext(r.Context()).Error("Request validation failed unexpectedly", "error", err)
			h.respondError(w, r, http.StatusInternalServerError, dto.CodeInternal, "An unexpected error occurred")
			return
		}
		h.respondValidation(w, r, err)
		return
	}

	kind, err := valueobject.ParseShapeKind(req.Shape)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	shape, err := valueobject.NewMoldShape(kind, req.Dimensions())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	result, err := h.calculator.Calculate(r.Context(), service.CalculateInput{
		Shape:      shape,
		MarginRate: req.MarginRate,
		MixRatio:   req.MixRatio,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondOK(h, w, r, dto.NewCalculationResponse(result.Calculation, result.Product, result.Accessories))
}

// ListProducts handles GET /api/v1/products?category=...
func (h *CalculationHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.calculator.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondOK(h, w, r, dto.NewListResponse(dto.NewProductResponses(products)))
}

// GetProduct handles GET /api/v1/products/{sku}.
func (h *CalculationHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.calculator.GetProduct(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondOK(h, w, r, dto.NewProductResponse(product))
}

func (h *CalculationHandler) meta(r *http.Request) *dto.ResponseMeta {
	return &dto.ResponseMeta{
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	}
}

func respondOK[T any](h *CalculationHandler, w http.ResponseWriter, r *http.Request, data T) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(data).WithMeta(h.meta(r)))
}

func (h *CalculationHandler) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := dto.NewErrorResponse[any](code, message).WithMeta(h.meta(r))
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (h *CalculationHandler) respondValidation(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	_ = errors.As(err, &verrs)

	fields := make([]dto.ValidationError, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, dto.ValidationError{Field: v.Field, Message: v.Message})
	}
	resp := dto.NewValidationErrorResponse[any](fields).WithMeta(h.meta(r))
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, resp)
}

// respondDomainError maps domain errors to status codes and error codes.
func (h *CalculationHandler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, dto.CodeInternal
	message := err.Error()

	switch {
	case errors.Is(err, valueobject.ErrInvalidDimension):
		status, code = http.StatusUnprocessableEntity, dto.CodeInvalidDimension
	case errors.Is(err, valueobject.ErrUnsupportedShape), errors.Is(err, entity.ErrMissingShape):
		status, code = http.StatusUnprocessableEntity, dto.CodeUnsupportedShape
	case errors.Is(err, valueobject.ErrInvalidMarginRate):
		status, code = http.StatusUnprocessableEntity, dto.CodeInvalidMarginRate
	case errors.Is(err, valueobject.ErrInvalidMixRatio):
		status, code = http.StatusUnprocessableEntity, dto.CodeInvalidMixRatio
	case errors.Is(err, repository.ErrInvalidCategory):
		status, code = http.StatusBadRequest, dto.CodeInvalidCategory
	case repository.IsNotFoundError(err):
		status, code = http.StatusNotFound, dto.CodeNotFound
	default:
		h.logger.WithContext(r.Context()).Error("Unhandled error", "error", err, "path", r.URL.Path)
		message = "An unexpected error occurred"
	}

	h.respondError(w, r, status, code, message)
}
