package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/catalog-service/internal/config"
	"github.com/shopkart/catalog-service/internal/service"
	"github.com/shopkart/catalog-service/internal/store"
)

// Controller handles general HTTP requests.
type Controller struct {
	config *config.Config
}

// New creates a new Controller with the given configuration.
func New(config *config.Config) *Controller {
	return &Controller{
		config: config,
	}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

// respondError maps a service/store error to the catalog error envelope:
// 404 {"message": "<Entity> not found"}, 400 on validation failures, and
// 500 {"message": "Server error", "error": ...} for anything unexpected.
func respondError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
}
