package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

func TestFormatting(t *testing.T) {
	assert.Equal(t, "167.6 fl oz", FormatOunces(167.5637712))
	assert.Equal(t, "4.96 L", FormatLiters(4.955))
	assert.Equal(t, "1.247 gal", FormatGallons(288.0/231.0))
	assert.Equal(t, "83.8", Round(83.7818856, 1))
	assert.Equal(t, "0.0", Round(0, 1))
}

func TestCalculateRequest_NormalizeAndDimensions(t *testing.T) {
	length, width, depth := 24.0, 12.0, 1.0
	req := CalculateRequest{Shape: "  Rectangle ", Length: &length, Width: &width, Depth: &depth, MixRatio: " 1:1 "}
	req.Normalize()

	assert.Equal(t, "rectangle", req.Shape)
	assert.Equal(t, "1:1", req.MixRatio)
	assert.Equal(t, valueobject.MoldDimensions{Length: 24, Width: 12, Depth: 1}, req.Dimensions())
}

func TestNewCalculationResponse(t *testing.T) {
	calc, err := entity.NewCalculation(valueobject.Circle{Diameter: 4, DepthInches: 0.5}, entity.CalculationOptions{})
	require.NoError(t, err)

	resp := NewCalculationResponse(calc, nil, nil)

	assert.Equal(t, calc.ID.String(), resp.CalculationID)
	assert.Equal(t, "circle", resp.Shape)
	assert.Equal(t, DimensionsResponse{Diameter: 4, Depth: 0.5}, resp.Dimensions)
	assert.Equal(t, "3.7 fl oz", resp.Display.MarginedFluidOunces)
	assert.Equal(t, "1.8 fl oz", resp.Display.PartAOunces)
	assert.Equal(t, "5.0%", resp.Display.MarginPercent)
	assert.Nil(t, resp.Recommendation.Product)
	assert.NotNil(t, resp.Recommendation.Accessories)
	assert.Empty(t, resp.Recommendation.Accessories)
}

func TestNewProductResponse(t *testing.T) {
	p, err := entity.NewResinProduct("mixing-kit", "Mixing Kit", valueobject.CategoryAccessory, "https://amzn.to/44gz9a7")
	require.NoError(t, err)

	assert.Empty(t, NewProductResponse(p).Price)

	p.WithPrice(valueobject.NewMoney(1500, valueobject.CurrencyUSD))
	resp := NewProductResponse(p)
	assert.Equal(t, "$15.00", resp.Price)
	assert.Equal(t, "accessory", resp.Category)
	assert.Equal(t, p.ID.String(), resp.ID)
}

func TestNewListResponse(t *testing.T) {
	empty := NewListResponse[ProductResponse](nil)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Total)
}
