package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_InitMeta(t *testing.T) {
	product := &Product{Title: "Test Shirt", Price: 20}
	product.InitMeta()

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "test-shirt", product.Slug)
	assert.False(t, product.CreatedAt.IsZero())
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
	assert.NotNil(t, product.Reviews)
	assert.Empty(t, product.Reviews)
	assert.Zero(t, product.Rating)
}

func TestProduct_RecalculateRating(t *testing.T) {
	t.Run("no reviews yields zero", func(t *testing.T) {
		product := &Product{Rating: 4.2}
		product.RecalculateRating()
		assert.Zero(t, product.Rating)
	})

	t.Run("mean rounded to one decimal", func(t *testing.T) {
		product := &Product{Reviews: []Review{
			{Rating: 4},
			{Rating: 5},
		}}
		product.RecalculateRating()
		assert.Equal(t, 4.5, product.Rating)
	})

	t.Run("repeating mean rounds", func(t *testing.T) {
		product := &Product{Reviews: []Review{
			{Rating: 5},
			{Rating: 5},
			{Rating: 4},
		}}
		product.RecalculateRating()
		assert.Equal(t, 4.7, product.Rating)
	})
}

func TestProduct_Apply(t *testing.T) {
	price := 100.0
	product := &Product{
		Title:         "X",
		Price:         price,
		StockQuantity: 3,
		Images:        []string{"a.jpg"},
		Features:      []string{"soft"},
	}

	t.Run("present fields overwrite, omitted fields survive", func(t *testing.T) {
		newPrice := 50.0
		product.Apply(ProductPatch{Price: &newPrice})

		assert.Equal(t, 50.0, product.Price)
		assert.Equal(t, "X", product.Title)
		assert.Equal(t, 3, product.StockQuantity)
		assert.Equal(t, []string{"a.jpg"}, product.Images)
	})

	t.Run("slice fields replace fully", func(t *testing.T) {
		product.Apply(ProductPatch{Images: []string{"b.jpg", "c.jpg"}})

		assert.Equal(t, []string{"b.jpg", "c.jpg"}, product.Images)
		assert.Equal(t, []string{"soft"}, product.Features)
	})

	t.Run("updatedAt is refreshed", func(t *testing.T) {
		before := product.UpdatedAt
		title := "Y"
		product.Apply(ProductPatch{Title: &title})
		assert.False(t, product.UpdatedAt.Before(before))
		assert.Equal(t, "Y", product.Title)
	})
}

func TestReview_Apply(t *testing.T) {
	review := &Review{ID: "r1", ProductID: "p1", UserName: "ann", Rating: 3, Comment: "ok"}

	rating := 5
	review.Apply(ReviewPatch{Rating: &rating})

	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "ann", review.UserName)
	assert.Equal(t, "ok", review.Comment)
	assert.Equal(t, "r1", review.ID)
	assert.Equal(t, "p1", review.ProductID)
}

func TestProduct_ReviewIndex(t *testing.T) {
	product := &Product{Reviews: []Review{{ID: "a"}, {ID: "b"}}}

	require.Equal(t, 1, product.ReviewIndex("b"))
	assert.Equal(t, -1, product.ReviewIndex("missing"))
}
