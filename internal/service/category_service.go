package service

import (
	"context"
	"log/slog"

	"github.com/shopkart/catalog-service/internal/event"
	"github.com/shopkart/catalog-service/internal/metrics"
	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
)

// CategoryService owns the category business rules around the store operations.
type CategoryService struct {
	categories store.CategoryStore
	publisher  *event.Publisher
}

// NewCategoryService creates a new CategoryService with the given store and
// optional event publisher (nil disables publishing).
func NewCategoryService(categories store.CategoryStore, publisher *event.Publisher) *CategoryService {
	return &CategoryService{
		categories: categories,
		publisher:  publisher,
	}
}

// ListCategories returns all categories in insertion order.
func (cs *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return cs.categories.List(ctx)
}

// GetCategory returns the category with the given ID.
func (cs *CategoryService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return cs.categories.GetByID(ctx, id)
}

// GetCategoryBySlug returns the first category with the given slug.
func (cs *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return cs.categories.GetBySlug(ctx, slug)
}

// CreateCategory validates and creates a category, then publishes a change event.
func (cs *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := validateNewCategory(category); err != nil {
		return nil, err
	}

	created, err := cs.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	metrics.CategoriesCreated.Inc()
	cs.publish(ctx, "created", created.ID, created.Name)
	return created, nil
}

// UpdateCategory validates and merge-patches the category.
func (cs *CategoryService) UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	if err := validateCategoryPatch(patch); err != nil {
		return nil, err
	}

	updated, err := cs.categories.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	cs.publish(ctx, "updated", updated.ID, updated.Name)
	return updated, nil
}

// DeleteCategory removes the category. Products keep their categoryId; there
// is no cascade and no referential check.
func (cs *CategoryService) DeleteCategory(ctx context.Context, id string) (*model.Category, error) {
	deleted, err := cs.categories.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.CategoriesDeleted.Inc()
	cs.publish(ctx, "deleted", deleted.ID, deleted.Name)
	return deleted, nil
}

func (cs *CategoryService) publish(ctx context.Context, action, id, name string) {
	if cs.publisher == nil {
		return
	}
	msg := event.CatalogMessage{
		Action: action,
		Entity: "category",
		ID:     id,
		Name:   name,
	}
	if err := cs.publisher.PublishCatalogMessage(ctx, msg); err != nil {
		// Log error but don't fail the request
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.String("category_id", id))
	}
}
