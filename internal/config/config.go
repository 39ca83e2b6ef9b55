package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the distance service.
// It includes the environment, monitoring port, reference-point settings,
// batching parameters, and database configuration.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the monitoring server.
// - Unit: The distance unit results are computed in (miles, kilometers).
// - ResolverType: How the reference point is resolved (static, google, nominatim).
// - APIKey: The API key for the geocoding resolver (required for Google).
// - ReferenceLat / ReferenceLon: Static reference-point coordinates in degrees.
// - ReferenceAddress: Address to geocode into the reference point.
// - Workers: The number of concurrent workers for processing batches.
// - BatchSize: The maximum number of pending locations fetched per tick.
// - Interval: The duration between processing intervals.
// - DatasetPath: Optional CSV dataset to load into the locations table at startup.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env              string         `yaml:"env"`               // Env is the current environment: local, dev, prod.
	Port             int            `yaml:"meridian.port"`     // Port is the monitoring server port.
	Unit             string         `yaml:"meridian.unit"`     // Unit selects the distance unit.
	ResolverType     string         `yaml:"resolver.type"`     // ResolverType specifies which reference-point resolver to use.
	APIKey           string         `yaml:"resolver.api_key"`  // The API key for the geocoding resolver.
	ReferenceLat     float64        `yaml:"reference.lat"`     // Static reference latitude, in degrees.
	ReferenceLon     float64        `yaml:"reference.lon"`     // Static reference longitude, in degrees.
	ReferenceAddress string         `yaml:"reference.address"` // Address geocoded into the reference point.
	Workers          int            `yaml:"meridian.workers"`  // The number of concurrent workers for processing batches.
	BatchSize        int            `yaml:"meridian.batch"`    // The maximum number of locations fetched per tick.
	Interval         time.Duration  `yaml:"meridian.interval"` // The duration between processing intervals.
	DatasetPath      string         `yaml:"meridian.dataset"`  // Optional CSV dataset loaded at startup.
	Database         PostgresConfig `yaml:"postgres"`          // Database holds the postgres database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("MERIDIAN_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(setDefaultEnv("MERIDIAN_HEALTH_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("MERIDIAN_WORKERS", "4"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer type")
	}

	batchSize, err := strconv.Atoi(setDefaultEnv("MERIDIAN_BATCH_SIZE", "500"))
	if err != nil {
		panic("failed to parse batch size from configuration, must be an integer type")
	}

	// Defaults to a reference point in Brooklyn.
	refLat, err := strconv.ParseFloat(setDefaultEnv("MERIDIAN_REFERENCE_LAT", "40.671"), 64)
	if err != nil {
		panic("failed to parse reference latitude from configuration")
	}

	refLon, err := strconv.ParseFloat(setDefaultEnv("MERIDIAN_REFERENCE_LON", "-73.985"), 64)
	if err != nil {
		panic("failed to parse reference longitude from configuration")
	}

	return &Config{
		Env:              setDefaultEnv("MERIDIAN_ENV", "production"),
		Port:             healthPort,
		Unit:             setDefaultEnv("MERIDIAN_UNIT", "miles"),
		ResolverType:     setDefaultEnv("MERIDIAN_RESOLVER_TYPE", "static"),
		APIKey:           os.Getenv("MERIDIAN_PROVIDER_KEY"),
		ReferenceLat:     refLat,
		ReferenceLon:     refLon,
		ReferenceAddress: os.Getenv("MERIDIAN_REFERENCE_ADDRESS"),
		Workers:          workers,
		BatchSize:        batchSize,
		Interval:         interval,
		DatasetPath:      os.Getenv("MERIDIAN_DATASET"),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
