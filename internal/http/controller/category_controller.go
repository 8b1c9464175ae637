package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/service"
)

// CategoryController handles HTTP requests for category operations.
type CategoryController struct {
	categoryService *service.CategoryService
}

// NewCategoryController creates a new CategoryController with the given category service.
func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ListCategories handles GET /api/categories: the full collection as a bare array.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id.
func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryBySlug handles GET /api/categories/slug/:slug.
func (cc *CategoryController) GetCategoryBySlug(c *gin.Context) {
	category, err := cc.categoryService.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categories.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	created, err := cc.categoryService.CreateCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err, "Category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category added successfully",
		"category": created,
	})
}

// UpdateCategory handles PUT /api/categories/:id with merge-patch semantics.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var patch model.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, err)
		return
	}

	updated, err := cc.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": updated,
	})
}

// DeleteCategory handles DELETE /api/categories/:id, echoing the removed category.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	deleted, err := cc.categoryService.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category deleted successfully",
		"category": deleted,
	})
}
