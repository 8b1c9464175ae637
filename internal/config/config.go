package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// StoreDriverEnv is the environment variable selecting the storage driver.
	StoreDriverEnv = "STORE_DRIVER"

	// DataDirEnv is the environment variable for the file store data directory.
	DataDirEnv = "DATA_DIR"

	// MongoURIEnv is the environment variable for the MongoDB connection URI.
	MongoURIEnv = "MONGO_URI"

	// MongoDatabaseEnv is the environment variable for the MongoDB database name.
	MongoDatabaseEnv = "MONGO_DB"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for the catalog events SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"
)

// Storage driver names accepted in StoreDriverEnv.
const (
	StoreDriverFile  = "file"
	StoreDriverMongo = "mongo"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")

	// ErrUnknownStoreDriver is returned when StoreDriverEnv names an unsupported driver.
	ErrUnknownStoreDriver = errors.New("unknown store driver")
)

// Config represents the application configuration.
type Config struct {
	DebugMode     bool
	HTTPServer    Server
	MetricsServer Server
	Store         Store
	AWS           AWSConfig
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// Store represents storage driver configuration settings.
type Store struct {
	Driver        string
	DataDir       string
	MongoURI      string
	MongoDatabase string
}

// AWSConfig represents AWS-specific configuration settings. The SQS queue is
// optional; when QueueURL is empty, event publishing is disabled.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	switch c.Store.Driver {
	case StoreDriverFile:
		if err := allNonEmpty(map[string]string{
			DataDirEnv: c.Store.DataDir,
		}); err != nil {
			return fmt.Errorf("file store configuration incomplete: %w", err)
		}
	case StoreDriverMongo:
		if err := allNonEmpty(map[string]string{
			MongoURIEnv:      c.Store.MongoURI,
			MongoDatabaseEnv: c.Store.MongoDatabase,
		}); err != nil {
			return fmt.Errorf("mongo store configuration incomplete: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStoreDriver, c.Store.Driver)
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		Store: Store{
			Driver:        getEnvOrDefault(StoreDriverEnv, StoreDriverFile),
			DataDir:       getEnvOrDefault(DataDirEnv, "data"),
			MongoURI:      os.Getenv(MongoURIEnv),
			MongoDatabase: os.Getenv(MongoDatabaseEnv),
		},
		AWS: AWSConfig{
			Region:      os.Getenv(AWSRegionEnv),
			Endpoint:    os.Getenv(AWSEndpointEnv),
			SQSQueueURL: os.Getenv(SQSQueueURLEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
