package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopkart/catalog-service/internal/event"
	"github.com/shopkart/catalog-service/internal/metrics"
	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
)

// ProductService owns the product business rules: field validation, metrics
// and change-event publishing around the store operations.
type ProductService struct {
	products  store.ProductStore
	publisher *event.Publisher
}

// NewProductService creates a new ProductService with the given store and
// optional event publisher (nil disables publishing).
func NewProductService(products store.ProductStore, publisher *event.Publisher) *ProductService {
	return &ProductService{
		products:  products,
		publisher: publisher,
	}
}

// ListProducts returns all products in insertion order.
func (ps *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return ps.products.List(ctx)
}

// GetProduct returns the product with the given ID.
func (ps *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return ps.products.GetByID(ctx, id)
}

// GetProductBySlug returns the first product with the given slug.
func (ps *ProductService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return ps.products.GetBySlug(ctx, slug)
}

// SearchProducts returns products whose title or description contains the
// query, case-insensitively.
func (ps *ProductService) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	products, err := ps.products.List(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	matches := []model.Product{}
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), term) ||
			strings.Contains(strings.ToLower(product.Description), term) {
			matches = append(matches, product)
		}
	}
	return matches, nil
}

// ListProductsByCategory returns one page of the category's products plus the
// page token for the next page ("" on the last page). Paging resumes after
// the product the cursor points at.
func (ps *ProductService) ListProductsByCategory(ctx context.Context, categoryID string, page store.Page) ([]model.Product, string, error) {
	products, err := ps.products.List(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := []model.Product{}
	for _, product := range products {
		if product.CategoryID == categoryID {
			filtered = append(filtered, product)
		}
	}

	start := 0
	if page.Cursor != nil {
		for i, product := range filtered {
			if product.ID == page.Cursor.LastID {
				start = i + 1
				break
			}
		}
	}
	if start >= len(filtered) {
		return []model.Product{}, "", nil
	}

	end := min(start+page.Limit, len(filtered))
	result := filtered[start:end]

	nextToken := ""
	if end < len(filtered) {
		cursor := store.Cursor{LastID: result[len(result)-1].ID}
		nextToken = cursor.Encode()
	}
	return result, nextToken, nil
}

// CreateProduct validates and creates a product, then publishes a change event.
func (ps *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateNewProduct(product); err != nil {
		return nil, err
	}

	created, err := ps.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	ps.publish(ctx, "created", created.ID, created.Title)
	return created, nil
}

// UpdateProduct validates the patch against the current product, merge-patches
// it and publishes a change event.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	current, err := ps.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateProductPatch(current, patch); err != nil {
		return nil, err
	}

	updated, err := ps.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	ps.publish(ctx, "updated", updated.ID, updated.Title)
	return updated, nil
}

// DeleteProduct removes the product (and implicitly its reviews) and
// publishes a change event.
func (ps *ProductService) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	deleted, err := ps.products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ProductsDeleted.Inc()
	ps.publish(ctx, "deleted", deleted.ID, deleted.Title)
	return deleted, nil
}

// AddReview validates and appends a review to the owning product. Returns the
// updated product with its recomputed rating.
func (ps *ProductService) AddReview(ctx context.Context, productID, userName string, rating int, comment string) (*model.Product, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
	}
	updated, err := ps.products.AddReview(ctx, productID, review)
	if err != nil {
		return nil, err
	}

	metrics.ReviewsAdded.Inc()
	return updated, nil
}

// UpdateReview validates and merge-patches a review within its owning product.
func (ps *ProductService) UpdateReview(ctx context.Context, productID, reviewID string, patch model.ReviewPatch) (*model.Product, error) {
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
	}
	return ps.products.UpdateReview(ctx, productID, reviewID, patch)
}

// DeleteReview removes a review from its owning product.
func (ps *ProductService) DeleteReview(ctx context.Context, productID, reviewID string) (*model.Product, error) {
	return ps.products.DeleteReview(ctx, productID, reviewID)
}

func (ps *ProductService) publish(ctx context.Context, action, id, title string) {
	if ps.publisher == nil {
		return
	}
	msg := event.CatalogMessage{
		Action: action,
		Entity: "product",
		ID:     id,
		Name:   title,
	}
	if err := ps.publisher.PublishCatalogMessage(ctx, msg); err != nil {
		// Log error but don't fail the request
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.String("product_id", id))
	}
}
