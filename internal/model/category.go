package model

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a catalog category. Products reference categories by ID
// only; deleting a category does not cascade to its products.
type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// InitMeta initializes the category metadata including ID, slug and timestamps.
func (c *Category) InitMeta() {
	c.ID = uuid.New().String()
	c.Slug = Slugify(c.Name)
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
}

// CategoryPatch holds the updatable category fields for merge-patch updates.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Apply merge-patches the category and refreshes UpdatedAt.
func (c *Category) Apply(patch CategoryPatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Slug != nil {
		c.Slug = *patch.Slug
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	c.UpdatedAt = time.Now()
}
