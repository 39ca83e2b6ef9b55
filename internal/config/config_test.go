package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/meridian/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_ENV", "local")
	t.Setenv("MERIDIAN_INTERVAL", "10m")
	t.Setenv("MERIDIAN_UNIT", "kilometers")
	t.Setenv("MERIDIAN_RESOLVER_TYPE", "google")
	t.Setenv("MERIDIAN_PROVIDER_KEY", "testAPIKey")
	t.Setenv("MERIDIAN_REFERENCE_LAT", "40.6892")
	t.Setenv("MERIDIAN_REFERENCE_LON", "-74.0445")
	t.Setenv("MERIDIAN_REFERENCE_ADDRESS", "Liberty Island, NY")
	t.Setenv("MERIDIAN_DATASET", "/data/hotels.csv")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "kilometers", cfg.Unit)
	assert.Equal(t, "google", cfg.ResolverType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, "Liberty Island, NY", cfg.ReferenceAddress)
	assert.Equal(t, "/data/hotels.csv", cfg.DatasetPath)
	assert.InEpsilon(t, 40.6892, cfg.ReferenceLat, 1e-9)
	assert.InEpsilon(t, -74.0445, cfg.ReferenceLon, 1e-9)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 500, cfg.BatchSize)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "miles", cfg.Unit)
	assert.Equal(t, "static", cfg.ResolverType)
	assert.InEpsilon(t, 40.671, cfg.ReferenceLat, 1e-9)
	assert.InEpsilon(t, -73.985, cfg.ReferenceLon, 1e-9)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("MERIDIAN_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("MERIDIAN_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("MERIDIAN_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer type", func() {
		config.MustLoad()
	})
}

func TestMustLoad_BatchSizeError(t *testing.T) {
	t.Setenv("MERIDIAN_BATCH_SIZE", "error_value")

	assert.PanicsWithValue(t, "failed to parse batch size from configuration, must be an integer type", func() {
		config.MustLoad()
	})
}

func TestMustLoad_ReferenceLatError(t *testing.T) {
	t.Setenv("MERIDIAN_REFERENCE_LAT", "error_value")

	assert.PanicsWithValue(t, "failed to parse reference latitude from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_ReferenceLonError(t *testing.T) {
	t.Setenv("MERIDIAN_REFERENCE_LON", "error_value")

	assert.PanicsWithValue(t, "failed to parse reference longitude from configuration", func() {
		config.MustLoad()
	})
}
