package file

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
)

// ProductStore is a file-backed store.ProductStore. The in-memory slice is
// authoritative; the backing file is rewritten after every mutation.
type ProductStore struct {
	path string

	mu       sync.Mutex
	loaded   bool
	products []model.Product
}

// NewProductStore creates a product store backed by the JSON file at path.
// The file is loaded lazily on first access.
func NewProductStore(path string) *ProductStore {
	return &ProductStore{path: path}
}

// ensureLoaded reads the backing file once. Callers must hold s.mu.
func (s *ProductStore) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	s.products = []model.Product{}
	if err := readCollection(s.path, &s.products); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

// persist rewrites the backing file in full. Callers must hold s.mu.
func (s *ProductStore) persist() error {
	return writeCollection(s.path, s.products)
}

// cloneProduct returns a copy whose Reviews slice is detached from the
// store-owned one, so callers cannot mutate store state after the lock drops.
func cloneProduct(p model.Product) *model.Product {
	clone := p
	clone.Reviews = make([]model.Review, len(p.Reviews))
	copy(clone.Reviews, p.Reviews)
	return &clone
}

// List returns all products in insertion order.
func (s *ProductStore) List(_ context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	result := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, *cloneProduct(p))
	}
	return result, nil
}

// GetByID returns the product with the given ID, or store.ErrNotFound.
func (s *ProductStore) GetByID(_ context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
	}
	return cloneProduct(s.products[i]), nil
}

// GetBySlug returns the first product with the given slug, or store.ErrNotFound.
func (s *ProductStore) GetBySlug(_ context.Context, slug string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	for i := range s.products {
		if s.products[i].Slug == slug {
			return cloneProduct(s.products[i]), nil
		}
	}
	return nil, fmt.Errorf("product slug %q: %w", slug, store.ErrNotFound)
}

// Create assigns metadata to the product, appends it to the collection and
// persists. The slug is derived from the title and suffixed until unique.
func (s *ProductStore) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	product.InitMeta()
	product.Slug = model.UniqueSlug(product.Title, s.slugTaken)
	if product.Images == nil {
		product.Images = []string{}
	}

	s.products = append(s.products, *product)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(*product), nil
}

// Update merge-patches the product with the given ID and persists.
func (s *ProductStore) Update(_ context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
	}

	s.products[i].Apply(patch)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(s.products[i]), nil
}

// Delete removes the product with the given ID, persists, and returns the
// removed product. Its reviews vanish with it.
func (s *ProductStore) Delete(_ context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
	}

	deleted := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(deleted), nil
}

// AddReview appends a review to the owning product, recomputes the rating
// and persists. Returns the updated product.
func (s *ProductStore) AddReview(_ context.Context, productID string, review *model.Review) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(productID)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", productID, store.ErrNotFound)
	}

	review.InitMeta()
	review.ProductID = productID
	s.products[i].Reviews = append(s.products[i].Reviews, *review)
	s.products[i].RecalculateRating()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(s.products[i]), nil
}

// UpdateReview merge-patches a review within its owning product, recomputes
// the rating and persists. Product-missing and review-missing are reported
// with distinct errors.
func (s *ProductStore) UpdateReview(_ context.Context, productID, reviewID string, patch model.ReviewPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(productID)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", productID, store.ErrNotFound)
	}
	j := s.products[i].ReviewIndex(reviewID)
	if j < 0 {
		return nil, fmt.Errorf("review %s: %w", reviewID, store.ErrReviewNotFound)
	}

	s.products[i].Reviews[j].Apply(patch)
	s.products[i].RecalculateRating()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(s.products[i]), nil
}

// DeleteReview removes a review from its owning product, recomputes the
// rating (back to 0 when no reviews remain) and persists.
func (s *ProductStore) DeleteReview(_ context.Context, productID, reviewID string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(productID)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", productID, store.ErrNotFound)
	}
	j := s.products[i].ReviewIndex(reviewID)
	if j < 0 {
		return nil, fmt.Errorf("review %s: %w", reviewID, store.ErrReviewNotFound)
	}

	s.products[i].Reviews = append(s.products[i].Reviews[:j], s.products[i].Reviews[j+1:]...)
	s.products[i].RecalculateRating()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return cloneProduct(s.products[i]), nil
}

func (s *ProductStore) indexByID(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ProductStore) slugTaken(slug string) bool {
	for i := range s.products {
		if s.products[i].Slug == slug {
			return true
		}
	}
	return false
}
