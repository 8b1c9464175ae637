package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog product with its nested reviews and metadata.
type Product struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Slug          string    `json:"slug" bson:"slug"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	DiscountPrice *float64  `json:"discountPrice,omitempty" bson:"discountPrice,omitempty"`
	StockQuantity int       `json:"stockQuantity" bson:"stockQuantity"`
	CategoryID    string    `json:"categoryId" bson:"categoryId"`
	Brand         string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Features      []string  `json:"features,omitempty" bson:"features,omitempty"`
	Images        []string  `json:"images" bson:"images"`
	AffiliateURL  string    `json:"affiliateUrl,omitempty" bson:"affiliateUrl,omitempty"`
	Rating        float64   `json:"rating" bson:"rating"`
	Reviews       []Review  `json:"reviews" bson:"reviews"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Review represents a customer review owned by exactly one product.
type Review struct {
	ID        string    `json:"id" bson:"id"`
	ProductID string    `json:"productId" bson:"productId"`
	UserName  string    `json:"userName" bson:"userName"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	Date      time.Time `json:"date" bson:"date"`
}

// InitMeta initializes the product metadata: ID, slug, timestamps and the
// derived review defaults (empty review list, zero rating).
func (p *Product) InitMeta() {
	p.ID = uuid.New().String()
	p.Slug = Slugify(p.Title)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reviews == nil {
		p.Reviews = []Review{}
	}
	p.RecalculateRating()
}

// InitMeta initializes the review metadata including ID and creation date.
func (r *Review) InitMeta() {
	r.ID = uuid.New().String()
	r.Date = time.Now()
}

// RecalculateRating recomputes the derived rating as the mean of all review
// ratings rounded to one decimal, or 0 when the product has no reviews.
func (p *Product) RecalculateRating() {
	if len(p.Reviews) == 0 {
		p.Rating = 0
		return
	}
	sum := 0
	for _, review := range p.Reviews {
		sum += review.Rating
	}
	mean := float64(sum) / float64(len(p.Reviews))
	p.Rating = math.Round(mean*10) / 10
}

// ReviewIndex returns the index of the review with the given ID, or -1.
func (p *Product) ReviewIndex(reviewID string) int {
	for i, review := range p.Reviews {
		if review.ID == reviewID {
			return i
		}
	}
	return -1
}

// ProductPatch holds the updatable product fields for merge-patch updates.
// Nil pointer fields (and nil slices) are left untouched; present fields fully
// replace the prior value, including the slice fields.
type ProductPatch struct {
	Title         *string  `json:"title"`
	Slug          *string  `json:"slug"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	StockQuantity *int     `json:"stockQuantity"`
	CategoryID    *string  `json:"categoryId"`
	Brand         *string  `json:"brand"`
	Features      []string `json:"features"`
	Images        []string `json:"images"`
	AffiliateURL  *string  `json:"affiliateUrl"`
}

// Apply merge-patches the product and refreshes UpdatedAt. The slug is not
// regenerated when the title changes; callers supply a new slug explicitly.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountPrice != nil {
		p.DiscountPrice = patch.DiscountPrice
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Features != nil {
		p.Features = patch.Features
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.AffiliateURL != nil {
		p.AffiliateURL = *patch.AffiliateURL
	}
	p.UpdatedAt = time.Now()
}

// ReviewPatch holds the updatable review fields for merge-patch updates.
type ReviewPatch struct {
	UserName *string `json:"userName"`
	Rating   *int    `json:"rating"`
	Comment  *string `json:"comment"`
}

// Apply merge-patches the review. ID, ProductID and Date never change.
func (r *Review) Apply(patch ReviewPatch) {
	if patch.UserName != nil {
		r.UserName = *patch.UserName
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		r.Comment = *patch.Comment
	}
}
