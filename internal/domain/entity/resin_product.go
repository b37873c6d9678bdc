// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// Product errors define domain-specific error conditions for products.
var (
	ErrInvalidProductName     = errors.New("product name cannot be empty")
	ErrInvalidProductSKU      = errors.New("product SKU cannot be empty")
	ErrInvalidProductCategory = errors.New("unknown product category")
	ErrInvalidProductURL      = errors.New("product URL must be an absolute http(s) URL")
)

// productNamespace seeds deterministic product IDs derived from the SKU.
var productNamespace = uuid.MustParse("5f0c8a2e-3b1d-4c7e-9a44-2d6f1e8b7c10")

// ResinProduct is a purchasable item that can be recommended after a calculation.
type ResinProduct struct {
	// ID is the unique identifier for the product, stable for a given SKU
	ID uuid.UUID `json:"id"`

	// SKU is the stock keeping unit identifier
	SKU string `json:"sku"`

	// Name is the display name of the product
	Name string `json:"name"`

	// Description provides details about the product
	Description string `json:"description,omitempty"`

	// Category classifies the product (deep_pour, standard, accessory)
	Category valueobject.ProductCategory `json:"category"`

	// URL is where the product can be bought
	URL string `json:"url"`

	// Price is the indicative price, zero when unknown
	Price valueobject.Money `json:"price"`

	// BestSeller flags the preferred product within a category
	BestSeller bool `json:"best_seller"`
}

// NewResinProduct creates a new ResinProduct with the provided details.
//
// Parameters:
//   - sku: Stock Keeping Unit identifier (required)
//   - name: Name of the product (required)
//   - category: Product category
//   - rawURL: Purchase link (absolute http or https URL)
//
// Returns:
//   - *ResinProduct: newly created product
//   - error: Validation error if input is invalid
func NewResinProduct(sku, name string, category valueobject.ProductCategory, rawURL string) (*ResinProduct, error) {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)

	if sku == "" {
		return nil, ErrInvalidProductSKU
	}
	if name == "" {
		return nil, ErrInvalidProductName
	}
	category, ok := valueobject.ParseProductCategory(string(category))
	if !ok {
		return nil, ErrInvalidProductCategory
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidProductURL
	}

	return &ResinProduct{
		ID:       uuid.NewSHA1(productNamespace, []byte(sku)),
		SKU:      sku,
		Name:     name,
		Category: category,
		URL:      u.String(),
	}, nil
}

// WithPrice sets the indicative price.
//
// Parameters:
//   - price: product price
//
// Returns:
//   - *ResinProduct: the same product for chaining
func (p *ResinProduct) WithPrice(price valueobject.Money) *ResinProduct {
	p.Price = price
	return p
}

// WithDescription sets the product description.
func (p *ResinProduct) WithDescription(description string) *ResinProduct {
	p.Description = strings.TrimSpace(description)
	return p
}

// MarkBestSeller flags the product as the preferred pick in its category.
func (p *ResinProduct) MarkBestSeller() *ResinProduct {
	p.BestSeller = true
	return p
}

// IsResin reports whether the product is a resin rather than an accessory.
func (p *ResinProduct) IsResin() bool {
	return p.Category.IsResin()
}

// HasPrice reports whether an indicative price is known.
func (p *ResinProduct) HasPrice() bool {
	return !p.Price.IsZero()
}
