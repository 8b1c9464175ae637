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

// ProductStore is a MongoDB-backed store.ProductStore.
type ProductStore struct {
	col *mongo.Collection
}

// NewProductStore creates a product store over the "products" collection.
func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{col: db.Collection("products")}
}

// List returns all products ordered by creation time.
func (s *ProductStore) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID returns the product with the given ID, or store.ErrNotFound.
func (s *ProductStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetBySlug returns the first product with the given slug, or store.ErrNotFound.
func (s *ProductStore) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *ProductStore) findOne(ctx context.Context, filter bson.M) (*model.Product, error) {
	var product model.Product
	err := s.col.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %v: %w", filter, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &product, nil
}

// Create assigns metadata to the product and inserts it.
func (s *ProductStore) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.InitMeta()

	slug, err := s.uniqueSlug(ctx, product.Title)
	if err != nil {
		return nil, err
	}
	product.Slug = slug
	if product.Images == nil {
		product.Images = []string{}
	}

	if _, err := s.col.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

// Update merge-patches the product with the given ID and replaces the document.
func (s *ProductStore) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Apply(patch)
	return s.replace(ctx, product)
}

// Delete removes the product with the given ID and returns the removed document.
func (s *ProductStore) Delete(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return &product, nil
}

// AddReview appends a review to the embedded review list, recomputes the
// rating and replaces the document.
func (s *ProductStore) AddReview(ctx context.Context, productID string, review *model.Review) (*model.Product, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	review.InitMeta()
	review.ProductID = productID
	product.Reviews = append(product.Reviews, *review)
	product.RecalculateRating()
	return s.replace(ctx, product)
}

// UpdateReview merge-patches an embedded review and recomputes the rating.
func (s *ProductStore) UpdateReview(ctx context.Context, productID, reviewID string, patch model.ReviewPatch) (*model.Product, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	i := product.ReviewIndex(reviewID)
	if i < 0 {
		return nil, fmt.Errorf("review %s: %w", reviewID, store.ErrReviewNotFound)
	}

	product.Reviews[i].Apply(patch)
	product.RecalculateRating()
	return s.replace(ctx, product)
}

// DeleteReview removes an embedded review and recomputes the rating.
func (s *ProductStore) DeleteReview(ctx context.Context, productID, reviewID string) (*model.Product, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	i := product.ReviewIndex(reviewID)
	if i < 0 {
		return nil, fmt.Errorf("review %s: %w", reviewID, store.ErrReviewNotFound)
	}

	product.Reviews = append(product.Reviews[:i], product.Reviews[i+1:]...)
	product.RecalculateRating()
	return s.replace(ctx, product)
}

func (s *ProductStore) replace(ctx context.Context, product *model.Product) (*model.Product, error) {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("product %s: %w", product.ID, store.ErrNotFound)
	}
	return product, nil
}

func (s *ProductStore) uniqueSlug(ctx context.Context, title string) (string, error) {
	var countErr error
	slug := model.UniqueSlug(title, func(candidate string) bool {
		n, err := s.col.CountDocuments(ctx, bson.M{"slug": candidate})
		if err != nil {
			countErr = err
			return false
		}
		return n > 0
	})
	if countErr != nil {
		return "", fmt.Errorf("failed to check slug uniqueness: %w", countErr)
	}
	return slug, nil
}
