package refpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleResolver geocodes the configured reference address into coordinates
// using the Google Maps Geocoding API.
type GoogleResolver struct {
	client  GoogleAPIClient // client is the Google Maps API client
	address string          // address is the reference address to geocode
	log     *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleResolver initializes a new GoogleResolver with the given API client,
// reference address, and logger. Returns a pointer to the GoogleResolver.
func NewGoogleResolver(client GoogleAPIClient, address string, log *slog.Logger) *GoogleResolver {
	return &GoogleResolver{client: client, address: address, log: log}
}

// Resolve geocodes the configured reference address into geographical
// coordinates (latitude and longitude) using the Google Maps Geocoding API.
// It logs the geocoding request and handles any errors that may occur during
// the process. If the address cannot be geocoded or if the response is empty,
// it returns an appropriate error.
func (gr *GoogleResolver) Resolve(ctx context.Context) (*models.Coordinates, error) {
	gr.log.DebugContext(ctx, "Resolving reference point using Google Maps", "address", gr.address)

	req := maps.GeocodingRequest{Address: gr.address}
	geocodeResponse, err := gr.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode reference address: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Coordinates{Longitude: coords.Lng, Latitude: coords.Lat}, nil
}
