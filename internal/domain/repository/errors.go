// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
var (
	// ErrProductNotFound is returned when a product cannot be found by SKU or category.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when a catalog is built with the same SKU twice.
	ErrDuplicateSKU = errors.New("SKU already exists")

	// ErrInvalidCategory is returned when a filter names an unknown category.
	ErrInvalidCategory = errors.New("invalid product category")
)

// IsNotFoundError checks if the error is a not found error.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
