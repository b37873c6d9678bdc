// Package catalog provides an in-memory implementation of repository.ProductCatalog.
// Products are loaded once from configuration and never change afterwards,
// so the catalog is safe for concurrent reads without locking.
package catalog

import (
	"context"
	"fmt"

	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/repository"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/config"
)

// MemoryCatalog is an immutable, ordered product list indexed by SKU.
type MemoryCatalog struct {
	products []*entity.ResinProduct
	bySKU    map[string]*entity.ResinProduct
}

// NewMemoryCatalog builds a catalog from products, keeping their order.
//
// Parameters:
//   - products: catalog products
//
// Returns:
//   - *MemoryCatalog: the catalog
//   - error: ErrDuplicateSKU if two products share a SKU
func NewMemoryCatalog(products []*entity.ResinProduct) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		products: make([]*entity.ResinProduct, 0, len(products)),
		bySKU:    make(map[string]*entity.ResinProduct, len(products)),
	}
	for _, p := range products {
		if _, exists := c.bySKU[p.SKU]; exists {
			return nil, fmt.Errorf("%w: %s", repository.ErrDuplicateSKU, p.SKU)
		}
		c.bySKU[p.SKU] = p
		c.products = append(c.products, p)
	}
	return c, nil
}

// NewFromConfig builds the catalog described by configuration.
//
// Parameters:
//   - cfg: catalog configuration
//
// Returns:
//   - *MemoryCatalog: the catalog
//   - error: the first invalid product, wrapped with its SKU
func NewFromConfig(cfg config.CatalogConfig) (*MemoryCatalog, error) {
	products := make([]*entity.ResinProduct, 0, len(cfg.Products))
	for i, pc := range cfg.Products {
		p, err := productFromConfig(pc)
		if err != nil {
			return nil, fmt.Errorf("catalog product %d (%s): %w", i, pc.SKU, err)
		}
		products = append(products, p)
	}
	return NewMemoryCatalog(products)
}

func productFromConfig(pc config.ProductConfig) (*entity.ResinProduct, error) {
	category, ok := valueobject.ParseProductCategory(pc.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidProductCategory, pc.Category)
	}

	p, err := entity.NewResinProduct(pc.SKU, pc.Name, category, pc.URL)
	if err != nil {
		return nil, err
	}
	p.WithDescription(pc.Description)

	if pc.Price != "" {
		currency := pc.Currency
		if currency == "" {
			currency = string(valueobject.CurrencyUSD)
		}
		price, err := valueobject.ParseMoney(pc.Price, currency)
		if err != nil {
			return nil, err
		}
		p.WithPrice(price)
	}

	if pc.BestSeller {
		p.MarkBestSeller()
	}
	return p, nil
}

// GetBySKU implements repository.ProductCatalog.
func (c *MemoryCatalog) GetBySKU(_ context.Context, sku string) (*entity.ResinProduct, error) {
	if p, ok := c.bySKU[sku]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: sku %s", repository.ErrProductNotFound, sku)
}

// PrimaryFor implements repository.ProductCatalog.
func (c *MemoryCatalog) PrimaryFor(_ context.Context, category valueobject.ProductCategory) (*entity.ResinProduct, error) {
	var first *entity.ResinProduct
	for _, p := range c.products {
		if p.Category != category {
			continue
		}
		if p.BestSeller {
			return p, nil
		}
		if first == nil {
			first = p
		}
	}
	if first == nil {
		return nil, fmt.Errorf("%w: category %s", repository.ErrProductNotFound, category)
	}
	return first, nil
}

// FindAll implements repository.ProductCatalog.
func (c *MemoryCatalog) FindAll(_ context.Context, filter repository.ProductFilter) ([]*entity.ResinProduct, error) {
	out := make([]*entity.ResinProduct, 0, len(c.products))
	for _, p := range c.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.BestSellerOnly && !p.BestSeller {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Count implements repository.ProductCatalog.
func (c *MemoryCatalog) Count(_ context.Context) (int, error) {
	return len(c.products), nil
}
