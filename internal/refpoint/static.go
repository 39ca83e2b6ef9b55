package refpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// StaticResolver returns a fixed reference point taken from configuration.
// Unlike the distance core, it validates the coordinate ranges strictly: a
// misconfigured reference point would silently poison every computed row.
type StaticResolver struct {
	coords models.Coordinates // coords is the configured reference point
	log    *slog.Logger       // log is the logger for logging operations
}

// Common errors for the static resolver.
var (
	ErrCoordinateNotFinite = errors.New("reference coordinate is not a finite number")
	ErrLatitudeRange       = errors.New("reference latitude outside [-90, 90]")
	ErrLongitudeRange      = errors.New("reference longitude outside [-180, 180]")
)

// NewStaticResolver creates a static resolver for the given reference
// coordinates in degrees. It fails when a coordinate is NaN, infinite, or
// outside the valid degree ranges.
func NewStaticResolver(lat, lon float64, log *slog.Logger) (*StaticResolver, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrCoordinateNotFinite, lat, lon)
	}
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: %v", ErrLatitudeRange, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: %v", ErrLongitudeRange, lon)
	}

	return &StaticResolver{
		coords: models.Coordinates{Latitude: lat, Longitude: lon},
		log:    log,
	}, nil
}

// Resolve returns the configured reference point.
func (sr *StaticResolver) Resolve(ctx context.Context) (*models.Coordinates, error) {
	sr.log.DebugContext(ctx, "Resolved static reference point",
		"lat", sr.coords.Latitude, "lon", sr.coords.Longitude)

	coords := sr.coords

	return &coords, nil
}
