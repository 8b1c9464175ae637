package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopkart/catalog-service/internal/config"
	"github.com/shopkart/catalog-service/internal/event"
	httpAPI "github.com/shopkart/catalog-service/internal/http"
	"github.com/shopkart/catalog-service/internal/http/controller"
	"github.com/shopkart/catalog-service/internal/logger"
	"github.com/shopkart/catalog-service/internal/metrics"
	"github.com/shopkart/catalog-service/internal/service"
	"github.com/shopkart/catalog-service/internal/store"
	filestore "github.com/shopkart/catalog-service/internal/store/file"
	mongostore "github.com/shopkart/catalog-service/internal/store/mongo"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	productStore, categoryStore, err := openStores(ctx, conf)
	handleErr("opening stores", err)
	slog.Info("catalog store ready", slog.String("driver", conf.Store.Driver))

	// Event publishing is optional; without a queue URL the services run
	// without messaging.
	var publisher *event.Publisher
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := event.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("loading AWS config", err)
		publisher = event.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	}

	productService := service.NewProductService(productStore, publisher)
	categoryService := service.NewCategoryService(categoryStore, publisher)

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	httpAPI.InitRouter(conf, engine,
		controller.New(conf),
		controller.NewProductController(productService),
		controller.NewCategoryController(categoryService),
	)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
}

func openStores(ctx context.Context, conf *config.Config) (store.ProductStore, store.CategoryStore, error) {
	switch conf.Store.Driver {
	case config.StoreDriverMongo:
		client, err := mongostore.Connect(ctx, conf.Store.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(conf.Store.MongoDatabase)
		return mongostore.NewProductStore(db), mongostore.NewCategoryStore(db), nil
	default:
		if err := os.MkdirAll(conf.Store.DataDir, 0o755); err != nil {
			return nil, nil, err
		}
		products := filestore.NewProductStore(filepath.Join(conf.Store.DataDir, "products.json"))
		categories := filestore.NewCategoryStore(filepath.Join(conf.Store.DataDir, "categories.json"))
		return products, categories, nil
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
