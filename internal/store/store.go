package store

import (
	"context"
	"errors"

	"github.com/shopkart/catalog-service/internal/model"
)

var (
	// ErrNotFound is returned when the requested entity does not exist in
	// its collection.
	ErrNotFound = errors.New("entity not found")

	// ErrReviewNotFound is returned when the product exists but the
	// requested review does not. Callers can tell the two lookups apart.
	ErrReviewNotFound = errors.New("review not found")
)

// ProductStore is the authoritative collection of products. Implementations
// own durability; callers never touch the backing file or database directly.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)

	// Review sub-operations. Reviews have no lifecycle outside their
	// owning product; the product's rating is recomputed on every call.
	AddReview(ctx context.Context, productID string, review *model.Review) (*model.Product, error)
	UpdateReview(ctx context.Context, productID, reviewID string, patch model.ReviewPatch) (*model.Product, error)
	DeleteReview(ctx context.Context, productID, reviewID string) (*model.Product, error)
}

// CategoryStore is the authoritative collection of categories.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id string) (*model.Category, error)
}
