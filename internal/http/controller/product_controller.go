package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/catalog-service/internal/model"
	"github.com/shopkart/catalog-service/internal/service"
	"github.com/shopkart/catalog-service/internal/store"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice *float64 `json:"discountPrice"`
	StockQuantity int      `json:"stockQuantity" binding:"gte=0"`
	CategoryID    string   `json:"categoryId"`
	Brand         string   `json:"brand"`
	Features      []string `json:"features"`
	Images        []string `json:"images"`
	AffiliateURL  string   `json:"affiliateUrl"`
}

// ListProducts handles GET /api/products: the full collection as a bare array.
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductBySlug handles GET /api/products/slug/:slug.
func (pc *ProductController) GetProductBySlug(c *gin.Context) {
	product, err := pc.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// SearchProducts handles GET /api/products/search?q=.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, err := pc.productService.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	product := &model.Product{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		Brand:         req.Brand,
		Features:      req.Features,
		Images:        req.Images,
		AffiliateURL:  req.AffiliateURL,
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": created,
	})
}

// UpdateProduct handles PUT /api/products/:id with merge-patch semantics:
// omitted fields keep their prior value.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var patch model.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, err)
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": updated,
	})
}

// DeleteProduct handles DELETE /api/products/:id, echoing the removed product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	deleted, err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
		"product": deleted,
	})
}

// AddReviewRequest represents the request body for adding a review.
type AddReviewRequest struct {
	UserName string `json:"userName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// AddReview handles POST /api/products/:id/reviews.
func (pc *ProductController) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	updated, err := pc.productService.AddReview(c.Request.Context(), c.Param("id"), req.UserName, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review added successfully",
		"product": updated,
	})
}

// UpdateReview handles PUT /api/products/:id/reviews/:reviewId.
func (pc *ProductController) UpdateReview(c *gin.Context) {
	var patch model.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, err)
		return
	}

	updated, err := pc.productService.UpdateReview(c.Request.Context(), c.Param("id"), c.Param("reviewId"), patch)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"product": updated,
	})
}

// DeleteReview handles DELETE /api/products/:id/reviews/:reviewId.
func (pc *ProductController) DeleteReview(c *gin.Context) {
	updated, err := pc.productService.DeleteReview(c.Request.Context(), c.Param("id"), c.Param("reviewId"))
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review deleted successfully",
		"product": updated,
	})
}

// ListByCategoryRequest represents the query parameters for listing a
// category's products with pagination.
type ListByCategoryRequest struct {
	Limit int    `form:"limit"`
	Token string `form:"token"`
}

// ListByCategoryResponse represents one page of a category's products.
type ListByCategoryResponse struct {
	Products      []model.Product `json:"products"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

// ListByCategory handles GET /api/categories/:id/products with cursor paging.
func (pc *ProductController) ListByCategory(c *gin.Context) {
	var req ListByCategoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := store.NewPage(req.Limit, req.Token)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	products, nextToken, err := pc.productService.ListProductsByCategory(c.Request.Context(), c.Param("id"), *page)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, ListByCategoryResponse{
		Products:      products,
		NextPageToken: nextToken,
	})
}
