// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/hapkiduki/resin-calc/internal/domain/entity"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// ProductFilter contains criteria for listing catalog products.
type ProductFilter struct {
	// Category filters products by category.
	Category *valueobject.ProductCategory

	// BestSellerOnly keeps only products flagged as best sellers.
	BestSellerOnly bool
}

// ProductCatalog defines read access to the products a calculation can recommend.
//
// Example usage:
//
//	catalog, err := catalog.NewMemoryCatalog(products)
//	product, err := catalog.PrimaryFor(ctx, valueobject.CategoryDeepPour)
type ProductCatalog interface {
	// GetBySKU retrieves a product by its SKU.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - sku: The product's SKU
	//
	// Returns:
	//   - *entity.ResinProduct: The retrieved product
	//   - error: ErrProductNotFound if product doesn't exist
	GetBySKU(ctx context.Context, sku string) (*entity.ResinProduct, error)

	// PrimaryFor returns the product to surface for a category.
	// Best sellers win over other products of the same category.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - category: The product category
	//
	// Returns:
	//   - *entity.ResinProduct: The preferred product
	//   - error: ErrProductNotFound if the category has no products
	PrimaryFor(ctx context.Context, category valueobject.ProductCategory) (*entity.ResinProduct, error)

	// FindAll retrieves products matching the filter, in catalog order.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - filter: Criteria to filter products
	//
	// Returns:
	//   - []*entity.ResinProduct: List of matching products
	//   - error: any error encountered during retrieval
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.ResinProduct, error)

	// Count returns the number of products in the catalog.
	Count(ctx context.Context) (int, error)
}
