package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/repository"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/config"
)

func mustProduct(t *testing.T, sku string, category valueobject.ProductCategory) *entity.ResinProduct {
	t.Helper()
	p, err := entity.NewResinProduct(sku, "Product "+sku, category, "https://example.com/"+sku)
	require.NoError(t, err)
	return p
}

func TestNewMemoryCatalog_DuplicateSKU(t *testing.T) {
	_, err := NewMemoryCatalog([]*entity.ResinProduct{
		mustProduct(t, "a", valueobject.CategoryStandard),
		mustProduct(t, "a", valueobject.CategoryDeepPour),
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateSKU)
}

func TestMemoryCatalog_PrimaryFor(t *testing.T) {
	ctx := context.Background()
	best := mustProduct(t, "deep-2", valueobject.CategoryDeepPour).MarkBestSeller()

	c, err := NewMemoryCatalog([]*entity.ResinProduct{
		mustProduct(t, "deep-1", valueobject.CategoryDeepPour),
		best,
		mustProduct(t, "std-1", valueobject.CategoryStandard),
		mustProduct(t, "std-2", valueobject.CategoryStandard),
	})
	require.NoError(t, err)

	got, err := c.PrimaryFor(ctx, valueobject.CategoryDeepPour)
	require.NoError(t, err)
	assert.Equal(t, "deep-2", got.SKU, "best seller wins")

	got, err = c.PrimaryFor(ctx, valueobject.CategoryStandard)
	require.NoError(t, err)
	assert.Equal(t, "std-1", got.SKU, "first in order otherwise")

	_, err = c.PrimaryFor(ctx, valueobject.CategoryAccessory)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.True(t, repository.IsNotFoundError(err))
}

func TestMemoryCatalog_FindAllAndGet(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCatalog([]*entity.ResinProduct{
		mustProduct(t, "deep-1", valueobject.CategoryDeepPour).MarkBestSeller(),
		mustProduct(t, "kit", valueobject.CategoryAccessory),
		mustProduct(t, "std-1", valueobject.CategoryStandard),
	})
	require.NoError(t, err)

	all, err := c.FindAll(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	accessory := valueobject.CategoryAccessory
	kits, err := c.FindAll(ctx, repository.ProductFilter{Category: &accessory})
	require.NoError(t, err)
	require.Len(t, kits, 1)
	assert.Equal(t, "kit", kits[0].SKU)

	best, err := c.FindAll(ctx, repository.ProductFilter{BestSellerOnly: true})
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, "deep-1", best[0].SKU)

	p, err := c.GetBySKU(ctx, "std-1")
	require.NoError(t, err)
	assert.Equal(t, valueobject.CategoryStandard, p.Category)

	_, err = c.GetBySKU(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNewFromConfig(t *testing.T) {
	c, err := NewFromConfig(config.CatalogConfig{Products: []config.ProductConfig{
		{SKU: "deep", Name: "Deep", Category: "deep_pour", URL: "https://amzn.to/4im5zpe", BestSeller: true},
		{SKU: "kit", Name: "Kit", Category: "accessory", URL: "https://amzn.to/44gz9a7", Price: "15"},
	}})
	require.NoError(t, err)

	kit, err := c.GetBySKU(context.Background(), "kit")
	require.NoError(t, err)
	assert.Equal(t, valueobject.CurrencyUSD, kit.Price.Currency)
	assert.Equal(t, int64(1500), kit.Price.Amount)

	deep, err := c.PrimaryFor(context.Background(), valueobject.CategoryDeepPour)
	require.NoError(t, err)
	assert.True(t, deep.BestSeller)
}

func TestNewFromConfig_InvalidProduct(t *testing.T) {
	tests := []struct {
		name    string
		product config.ProductConfig
		err     error
	}{
		{"bad category", config.ProductConfig{SKU: "x", Name: "X", Category: "glitter", URL: "https://x.io"}, entity.ErrInvalidProductCategory},
		{"bad url", config.ProductConfig{SKU: "x", Name: "X", Category: "standard", URL: "not a url"}, entity.ErrInvalidProductURL},
		{"bad price", config.ProductConfig{SKU: "x", Name: "X", Category: "standard", URL: "https://x.io", Price: "cheap"}, valueobject.ErrInvalidAmount},
		{"bad currency", config.ProductConfig{SKU: "x", Name: "X", Category: "standard", URL: "https://x.io", Price: "1", Currency: "XYZ"}, valueobject.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromConfig(config.CatalogConfig{Products: []config.ProductConfig{tt.product}})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
