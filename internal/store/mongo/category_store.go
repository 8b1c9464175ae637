package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
)

// CategoryStore is a MongoDB-backed store.CategoryStore.
type CategoryStore struct {
	col *mongo.Collection
}

// NewCategoryStore creates a category store over the "categories" collection.
func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{col: db.Collection("categories")}
}

// List returns all categories ordered by creation time.
func (s *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []model.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// GetByID returns the category with the given ID, or store.ErrNotFound.
func (s *CategoryStore) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetBySlug returns the first category with the given slug, or store.ErrNotFound.
func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *CategoryStore) findOne(ctx context.Context, filter bson.M) (*model.Category, error) {
	var category model.Category
	err := s.col.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %v: %w", filter, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return &category, nil
}

// Create assigns metadata to the category and inserts it.
func (s *CategoryStore) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	category.InitMeta()

	var countErr error
	category.Slug = model.UniqueSlug(category.Name, func(candidate string) bool {
		n, err := s.col.CountDocuments(ctx, bson.M{"slug": candidate})
		if err != nil {
			countErr = err
			return false
		}
		return n > 0
	})
	if countErr != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", countErr)
	}

	if _, err := s.col.InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	return category, nil
}

// Update merge-patches the category with the given ID and replaces the document.
func (s *CategoryStore) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Apply(patch)

	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("category %s: %w", id, store.ErrNotFound)
	}
	return category, nil
}

// Delete removes the category with the given ID and returns the removed document.
func (s *CategoryStore) Delete(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return &category, nil
}
