package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopkart/catalog-service/internal/config"
	"github.com/shopkart/catalog-service/internal/http/controller"
	"github.com/shopkart/catalog-service/internal/http/middleware"
)

// InitRouter wires the catalog REST surface onto the given gin engine.
func InitRouter(_ *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController, categoryCtr *controller.CategoryController) *gin.Engine {
	// Recovery keeps handler panics from crashing the server; the API is
	// fronted by browser storefronts, so CORS stays open.
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestLogger())

	server.GET("/ping", ctr.Ping)

	api := server.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", productCtr.ListProducts)
		products.GET("/search", productCtr.SearchProducts)
		products.GET("/slug/:slug", productCtr.GetProductBySlug)
		products.GET("/:id", productCtr.GetProduct)
		products.POST("", productCtr.CreateProduct)
		products.PUT("/:id", productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)

		// Reviews are reachable only through their owning product.
		products.POST("/:id/reviews", productCtr.AddReview)
		products.PUT("/:id/reviews/:reviewId", productCtr.UpdateReview)
		products.DELETE("/:id/reviews/:reviewId", productCtr.DeleteReview)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryCtr.ListCategories)
		categories.GET("/slug/:slug", categoryCtr.GetCategoryBySlug)
		categories.GET("/:id", categoryCtr.GetCategory)
		categories.POST("", categoryCtr.CreateCategory)
		categories.PUT("/:id", categoryCtr.UpdateCategory)
		categories.DELETE("/:id", categoryCtr.DeleteCategory)
		categories.GET("/:id/products", productCtr.ListByCategory)
	}

	return server
}
