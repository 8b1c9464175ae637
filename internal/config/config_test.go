package config_test

import (
	"testing"

	"github.com/shopkart/catalog-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.DebugModeEnv, "true")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.StoreDriverEnv, "file")
	t.Setenv(config.DataDirEnv, "testdata")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "loading config should not return error")

	assert.True(t, conf.DebugMode, "DebugMode should be true")
	assert.Equal(t, "8080", conf.HTTPServer.Port, "HTTP Server Port should be '8080'")
	assert.Equal(t, "9090", conf.MetricsServer.Port, "Metrics Server Port should be '9090'")
	assert.Equal(t, config.StoreDriverFile, conf.Store.Driver, "Store Driver should be 'file'")
	assert.Equal(t, "testdata", conf.Store.DataDir, "Data dir should be 'testdata'")
}

func TestLoadFromEnv_MongoDriver(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.StoreDriverEnv, "mongo")
	t.Setenv(config.MongoURIEnv, "mongodb://localhost:27017")
	t.Setenv(config.MongoDatabaseEnv, "catalog")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMongo, conf.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", conf.Store.MongoURI)
	assert.Equal(t, "catalog", conf.Store.MongoDatabase)
}

func TestLoadFromEnv_MongoDriverMissingURI(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.StoreDriverEnv, "mongo")
	t.Setenv(config.MongoURIEnv, "")
	t.Setenv(config.MongoDatabaseEnv, "")

	_, err := config.LoadFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestLoadFromEnv_UnknownDriver(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.StoreDriverEnv, "cassandra")

	_, err := config.LoadFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownStoreDriver)
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{"GetEnvAsBool_True", "true", false, true},
		{"GetEnvAsBool_False", "false", true, false},
		{"GetEnvAsBool_Invalid", "invalid", true, true},
		{"GetEnvAsBool_Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnvAsBool("TEST_ENV", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	err := config.AllNonEmpty(map[string]string{"A": "1", "B": "2"})
	assert.NoError(t, err)

	err = config.AllNonEmpty(map[string]string{"A": ""})
	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestAllNumbers(t *testing.T) {
	err := config.AllNumbers(map[string]string{"PORT": "8080"})
	assert.NoError(t, err)

	err = config.AllNumbers(map[string]string{"PORT": "eighty"})
	assert.Error(t, err)
}
