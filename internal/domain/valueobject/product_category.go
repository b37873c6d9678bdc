package valueobject

import (
	"fmt"
	"strings"
)

// DeepPourThresholdInches is the depth above which standard resin overheats.
// A pour of exactly this depth still counts as standard.
const DeepPourThresholdInches = 1.0

// Recommendation messages shown with each category.
const (
	DeepPourWarning = "You are pouring over 1 inch thick. You MUST use 'Deep Pour' resin or it will overheat and crack."
	StandardNote    = "For thin coats and coasters, use a standard Table Top resin."
)

// ProductCategory classifies resin products.
type ProductCategory string

const (
	CategoryDeepPour  ProductCategory = "deep_pour" // Thick castings, river tables
	CategoryStandard  ProductCategory = "standard"  // Table top coatings, coasters
	CategoryAccessory ProductCategory = "accessory" // Mixing cups, stir sticks
)

// ParseProductCategory converts a text category into a ProductCategory.
//
// Parameters:
//   - s: category name
//
// Returns:
//   - ProductCategory: the matching category
//   - bool: false if the name is unknown
func ParseProductCategory(s string) (ProductCategory, bool) {
	switch c := ProductCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryDeepPour, CategoryStandard, CategoryAccessory:
		return c, true
	}
	return "", false
}

// IsResin reports whether the category is a resin formulation rather than an accessory.
func (c ProductCategory) IsResin() bool {
	return c == CategoryDeepPour || c == CategoryStandard
}

// CategoryForDepth selects the resin category for a pour depth.
//
// Parameters:
//   - depth: pour depth in inches
//
// Returns:
//   - ProductCategory: CategoryDeepPour if depth > 1.0, CategoryStandard otherwise
func CategoryForDepth(depth float64) ProductCategory {
	if depth > DeepPourThresholdInches {
		return CategoryDeepPour
	}
	return CategoryStandard
}

// ProductRecommendation is the outcome of the deep pour rule for one mold.
type ProductRecommendation struct {
	// Category is the resin type to buy.
	Category ProductCategory `json:"category"`

	// DepthInches is the depth the rule was evaluated on.
	DepthInches float64 `json:"depth_inches"`

	// Message explains the choice; for deep pours it is a structural warning.
	Message string `json:"message"`
}

// RecommendProduct applies the deep pour rule.
//
// Parameters:
//   - depth: pour depth in inches
//
// Returns:
//   - ProductRecommendation: category plus message
func RecommendProduct(depth float64) ProductRecommendation {
	category := CategoryForDepth(depth)
	message := StandardNote
	if category == CategoryDeepPour {
		message = DeepPourWarning
	}
	return ProductRecommendation{
		Category:    category,
		DepthInches: depth,
		Message:     message,
	}
}

// IsDeepPour reports whether the recommendation requires deep pour resin.
func (p ProductRecommendation) IsDeepPour() bool {
	return p.Category == CategoryDeepPour
}

// String returns a short description (e.g., "deep_pour @ 2.00 in").
func (p ProductRecommendation) String() string {
	return fmt.Sprintf("%s @ %.2f in", p.Category, p.DepthInches)
}
