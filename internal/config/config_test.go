package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, "8080", cfg.HttpServer.Port)
		assert.Equal(t, 10*time.Second, cfg.HttpServer.Timeout)
		assert.Equal(t, SourceCSV, cfg.Dataset.Source)
		assert.Equal(t, "covid_19_clean_complete.csv", cfg.Dataset.Path)
		assert.Equal(t, "US", cfg.Dataset.DefaultCountry)
		assert.False(t, cfg.Dataset.Watch)
		assert.Equal(t, 30, cfg.Forecast.Window)
		assert.Equal(t, 14, cfg.Forecast.Horizon)
		assert.Empty(t, cfg.Cache.Type)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DATASET_PATH", "/data/covid.csv")
		t.Setenv("DATASET_WATCH", "true")
		t.Setenv("FORECAST_WINDOW", "7")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HttpServer.Port)
		assert.Equal(t, "/data/covid.csv", cfg.Dataset.Path)
		assert.True(t, cfg.Dataset.Watch)
		assert.Equal(t, 7, cfg.Forecast.Window)
	})

	t.Run("mysql source needs a database", func(t *testing.T) {
		t.Setenv("DATASET_SOURCE", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_SERVER")

		t.Setenv("DB_SERVER", "localhost:3306")
		t.Setenv("DB_NAME", "covid")
		t.Setenv("DB_USER", "dashboard")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, SourceMySQL, cfg.Dataset.Source)
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("DATASET_SOURCE", "parquet")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("export needs redis", func(t *testing.T) {
		t.Setenv("EXPORT_ENABLED", "true")
		_, err := Load()
		assert.Error(t, err)

		t.Setenv("REDIS_TYPE", "redis")
		_, err = Load()
		assert.NoError(t, err)
	})
}
