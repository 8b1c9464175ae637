package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_created_total",
		Help: "The total number of products created",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_deleted_total",
		Help: "The total number of products deleted",
	})

	// CategoriesCreated is a Prometheus counter for tracking the total number of categories created.
	CategoriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_categories_created_total",
		Help: "The total number of categories created",
	})

	// CategoriesDeleted is a Prometheus counter for tracking the total number of categories deleted.
	CategoriesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_categories_deleted_total",
		Help: "The total number of categories deleted",
	})

	// ReviewsAdded is a Prometheus counter for tracking the total number of reviews added.
	ReviewsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_reviews_added_total",
		Help: "The total number of product reviews added",
	})
)
