package file

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
)

// CategoryStore is a file-backed store.CategoryStore.
type CategoryStore struct {
	path string

	mu         sync.Mutex
	loaded     bool
	categories []model.Category
}

// NewCategoryStore creates a category store backed by the JSON file at path.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{path: path}
}

func (s *CategoryStore) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	s.categories = []model.Category{}
	if err := readCollection(s.path, &s.categories); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *CategoryStore) persist() error {
	return writeCollection(s.path, s.categories)
}

// List returns all categories in insertion order.
func (s *CategoryStore) List(_ context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	result := make([]model.Category, len(s.categories))
	copy(result, s.categories)
	return result, nil
}

// GetByID returns the category with the given ID, or store.ErrNotFound.
func (s *CategoryStore) GetByID(_ context.Context, id string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("category %s: %w", id, store.ErrNotFound)
	}
	category := s.categories[i]
	return &category, nil
}

// GetBySlug returns the first category with the given slug, or store.ErrNotFound.
func (s *CategoryStore) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			category := s.categories[i]
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category slug %q: %w", slug, store.ErrNotFound)
}

// Create assigns metadata to the category, appends it and persists.
func (s *CategoryStore) Create(_ context.Context, category *model.Category) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	category.InitMeta()
	category.Slug = model.UniqueSlug(category.Name, s.slugTaken)

	s.categories = append(s.categories, *category)
	if err := s.persist(); err != nil {
		return nil, err
	}
	created := *category
	return &created, nil
}

// Update merge-patches the category with the given ID and persists.
func (s *CategoryStore) Update(_ context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("category %s: %w", id, store.ErrNotFound)
	}

	s.categories[i].Apply(patch)
	if err := s.persist(); err != nil {
		return nil, err
	}
	updated := s.categories[i]
	return &updated, nil
}

// Delete removes the category with the given ID, persists, and returns the
// removed category. Products referencing it keep their dangling categoryId.
func (s *CategoryStore) Delete(_ context.Context, id string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("category %s: %w", id, store.ErrNotFound)
	}

	deleted := s.categories[i]
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (s *CategoryStore) indexByID(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CategoryStore) slugTaken(slug string) bool {
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return true
		}
	}
	return false
}
