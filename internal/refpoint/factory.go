package refpoint

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ResolverType represents the type of reference-point resolver.
type ResolverType string

const (
	// ResolverTypeStatic takes the reference point directly from configuration.
	ResolverTypeStatic ResolverType = "static"
	// ResolverTypeGoogle geocodes the reference address with Google Maps.
	ResolverTypeGoogle ResolverType = "google"
	// ResolverTypeNominatim geocodes the reference address with OpenStreetMap Nominatim.
	ResolverTypeNominatim ResolverType = "nominatim"
)

// ResolverConfig holds configuration for creating a reference-point resolver.
type ResolverConfig struct {
	Type      ResolverType // Type of resolver to create
	APIKey    string       // API key (used by Google resolver)
	Address   string       // Reference address (used by geocoding resolvers)
	Latitude  float64      // Static reference latitude, in degrees
	Longitude float64      // Static reference longitude, in degrees
	RateLimit int          // Rate limit for requests per second (used by Google resolver)
	Logger    *slog.Logger // Logger for the resolver
}

// NewResolver creates a reference-point resolver based on the provided
// configuration. It applies the Factory pattern to decouple resolver
// instantiation from business logic.
//
// Supported resolver types:
// - "static": fixed coordinates from configuration (no network access)
// - "google": Google Maps Geocoding API (requires API key and address)
// - "nominatim": OpenStreetMap Nominatim API (free, requires address only)
//
// Returns an error if the resolver type is unsupported or if resolver creation fails.
func NewResolver(config ResolverConfig) (Resolver, error) {
	switch config.Type {
	case ResolverTypeStatic:
		return NewStaticResolver(config.Latitude, config.Longitude, config.Logger)
	case ResolverTypeGoogle:
		return newGoogleResolver(config)
	case ResolverTypeNominatim:
		return newNominatimResolver(config)
	default:
		return nil, fmt.Errorf("unsupported resolver type: %s", config.Type)
	}
}

// newGoogleResolver creates a Google Maps reference-point resolver.
func newGoogleResolver(config ResolverConfig) (Resolver, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google resolver")
	}
	if config.Address == "" {
		return nil, errors.New("reference address is required for Google resolver")
	}

	// Create Google Maps client with API key and rate limiting
	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	// Apply rate limiting if specified
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleResolver(client, config.Address, config.Logger), nil
}

// newNominatimResolver creates a Nominatim reference-point resolver.
func newNominatimResolver(config ResolverConfig) (Resolver, error) {
	// Nominatim is free and doesn't require an API key
	if config.Address == "" {
		return nil, errors.New("reference address is required for Nominatim resolver")
	}

	return NewNominatimResolver(config.Address, config.Logger), nil
}
