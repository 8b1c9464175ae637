package service

import (
	"errors"
	"fmt"

	"github.com/shopkart/catalog-service/internal/model"
)

// ErrValidation marks failures caused by malformed or out-of-range input.
// Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation failed")

func validateNewProduct(product *model.Product) error {
	if product.Title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("price must be positive: %w", ErrValidation)
	}
	if product.StockQuantity < 0 {
		return fmt.Errorf("stockQuantity must not be negative: %w", ErrValidation)
	}
	return validatePricePair(product.Price, product.DiscountPrice)
}

// validateProductPatch checks the patch against the current entity state, so
// the price/discount relationship holds for the merged result.
func validateProductPatch(current *model.Product, patch model.ProductPatch) error {
	price := current.Price
	if patch.Price != nil {
		price = *patch.Price
	}
	if price <= 0 {
		return fmt.Errorf("price must be positive: %w", ErrValidation)
	}

	discount := current.DiscountPrice
	if patch.DiscountPrice != nil {
		discount = patch.DiscountPrice
	}
	if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
		return fmt.Errorf("stockQuantity must not be negative: %w", ErrValidation)
	}
	if patch.Title != nil && *patch.Title == "" {
		return fmt.Errorf("title must not be empty: %w", ErrValidation)
	}
	return validatePricePair(price, discount)
}

func validatePricePair(price float64, discount *float64) error {
	if discount == nil {
		return nil
	}
	if *discount <= 0 {
		return fmt.Errorf("discountPrice must be positive: %w", ErrValidation)
	}
	if *discount >= price {
		return fmt.Errorf("discountPrice must be less than price: %w", ErrValidation)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}
	return nil
}

func validateNewCategory(category *model.Category) error {
	if category.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	return nil
}

func validateCategoryPatch(patch model.CategoryPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	return nil
}
