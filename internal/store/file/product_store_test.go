package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductStore(t *testing.T) (*ProductStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	return NewProductStore(path), path
}

func TestProductStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, path := newTestProductStore(t)

	created, err := s.Create(ctx, &model.Product{Title: "Test Shirt", Price: 20})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "test-shirt", created.Slug)
	assert.Equal(t, 20.0, created.Price)
	assert.Zero(t, created.Rating)
	assert.Empty(t, created.Reviews)
	assert.NotNil(t, created.Images)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)
	assert.Equal(t, created.Price, found.Price)

	// The backing file holds the full collection after the mutation.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []model.Product
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Len(t, onDisk, 1)
	assert.Equal(t, created.ID, onDisk[0].ID)
}

func TestProductStore_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	_, err := s.GetByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStore_GetBySlug(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	created, err := s.Create(ctx, &model.Product{Title: "Blue Jacket", Price: 80})
	require.NoError(t, err)

	found, err := s.GetBySlug(ctx, "blue-jacket")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStore_SlugCollisionGetsSuffix(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	first, err := s.Create(ctx, &model.Product{Title: "Test Shirt", Price: 10})
	require.NoError(t, err)
	second, err := s.Create(ctx, &model.Product{Title: "Test Shirt", Price: 12})
	require.NoError(t, err)

	assert.Equal(t, "test-shirt", first.Slug)
	assert.Equal(t, "test-shirt-2", second.Slug)
}

func TestProductStore_Update_MergePatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	created, err := s.Create(ctx, &model.Product{Title: "X", Price: 100, StockQuantity: 5})
	require.NoError(t, err)

	newPrice := 50.0
	updated, err := s.Update(ctx, created.ID, model.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	// Untouched fields survive the patch.
	assert.Equal(t, 50.0, updated.Price)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, 5, updated.StockQuantity)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProductStore_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	price := 1.0
	_, err := s.Update(ctx, "missing", model.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStore_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	created, err := s.Create(ctx, &model.Product{Title: "Doomed", Price: 5})
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Doomed", deleted.Title)

	_, err = s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStore_Reviews(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	created, err := s.Create(ctx, &model.Product{Title: "Rated", Price: 30})
	require.NoError(t, err)

	t.Run("add recomputes rating", func(t *testing.T) {
		updated, err := s.AddReview(ctx, created.ID, &model.Review{UserName: "ann", Rating: 4, Comment: "good"})
		require.NoError(t, err)
		assert.Equal(t, 4.0, updated.Rating)

		updated, err = s.AddReview(ctx, created.ID, &model.Review{UserName: "bob", Rating: 5, Comment: "great"})
		require.NoError(t, err)
		assert.Equal(t, 4.5, updated.Rating)
		require.Len(t, updated.Reviews, 2)
		assert.Equal(t, created.ID, updated.Reviews[0].ProductID)
		assert.NotEmpty(t, updated.Reviews[0].ID)
		assert.False(t, updated.Reviews[0].Date.IsZero())
	})

	t.Run("update recomputes rating", func(t *testing.T) {
		current, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		reviewID := current.Reviews[0].ID

		rating := 2
		updated, err := s.UpdateReview(ctx, created.ID, reviewID, model.ReviewPatch{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 3.5, updated.Rating)
		assert.Equal(t, "ann", updated.Reviews[0].UserName)
	})

	t.Run("missing review is distinguishable from missing product", func(t *testing.T) {
		rating := 4
		_, err := s.UpdateReview(ctx, created.ID, "no-such-review", model.ReviewPatch{Rating: &rating})
		assert.ErrorIs(t, err, store.ErrReviewNotFound)

		_, err = s.UpdateReview(ctx, "no-such-product", "no-such-review", model.ReviewPatch{Rating: &rating})
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NotErrorIs(t, err, store.ErrReviewNotFound)
	})

	t.Run("deleting all reviews resets rating to zero", func(t *testing.T) {
		current, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)

		for _, review := range current.Reviews {
			_, err := s.DeleteReview(ctx, created.ID, review.ID)
			require.NoError(t, err)
		}

		final, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, final.Reviews)
		assert.Zero(t, final.Rating)
	})
}

func TestProductStore_RoundTripReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "products.json")

	s := NewProductStore(path)
	created, err := s.Create(ctx, &model.Product{Title: "Durable", Price: 42, Brand: "Acme"})
	require.NoError(t, err)
	_, err = s.AddReview(ctx, created.ID, &model.Review{UserName: "ann", Rating: 5, Comment: "keeps"})
	require.NoError(t, err)

	// Simulate a process restart: a fresh store over the same file.
	reloaded := NewProductStore(path)
	products, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Durable", got.Title)
	assert.Equal(t, 42.0, got.Price)
	assert.Equal(t, "Acme", got.Brand)
	assert.Equal(t, 5.0, got.Rating)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "ann", got.Reviews[0].UserName)
}

func TestProductStore_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestProductStore(t)

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := s.Create(ctx, &model.Product{Title: title, Price: 1})
		require.NoError(t, err)
	}

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "First", products[0].Title)
	assert.Equal(t, "Second", products[1].Title)
	assert.Equal(t, "Third", products[2].Title)
}

func TestProductStore_MissingFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "products.json")
	s := NewProductStore(path)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// First access creates the file with an empty collection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
