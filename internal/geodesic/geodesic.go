// Package geodesic computes great-circle distances between geographical
// coordinates using the haversine formula. It exposes two entry points that
// share one internal formula: a scalar form for a single target point and a
// batch form that evaluates whole aligned collections of targets in one pass,
// with the reference-point trigonometry hoisted out of the element loop.
package geodesic

import (
	"errors"
	"fmt"
	"math"
)

// Unit selects the sphere radius used to scale the central angle into a
// distance.
type Unit string

const (
	// Miles computes distances in statute miles.
	Miles Unit = "miles"
	// Kilometers computes distances in kilometers.
	Kilometers Unit = "kilometers"
)

// Mean Earth radii for the supported units.
const (
	radiusMiles      = 3959.0
	radiusKilometers = 6371.0
)

const degToRad = math.Pi / 180.0

// Common errors returned by the distance functions.
var (
	// ErrShapeMismatch is returned when the target latitude and longitude
	// collections differ in length.
	ErrShapeMismatch = errors.New("latitude and longitude collections differ in length")
	// ErrInvalidValue is returned when a coordinate is NaN or infinite.
	ErrInvalidValue = errors.New("coordinate is not a finite number")
	// ErrUnknownUnit is returned when a unit has no configured radius.
	ErrUnknownUnit = errors.New("unknown distance unit")
)

// ParseUnit converts a configuration string into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Miles:
		return Miles, nil
	case Kilometers:
		return Kilometers, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Radius returns the sphere radius for the unit.
func (u Unit) Radius() (float64, error) {
	switch u {
	case Miles:
		return radiusMiles, nil
	case Kilometers:
		return radiusKilometers, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
}

// Distance returns the great-circle distance between the reference point
// (lat1, lon1) and the target point (lat2, lon2), all in degrees, in the given
// unit. It fails with ErrInvalidValue if any coordinate is NaN or infinite.
// Finite values outside the usual [-90, 90] / [-180, 180] ranges pass through
// and yield a mathematically defined result.
func Distance(lat1, lon1, lat2, lon2 float64, unit Unit) (float64, error) {
	radius, err := unit.Radius()
	if err != nil {
		return 0, err
	}
	if !isFinite(lat1) || !isFinite(lon1) {
		return 0, fmt.Errorf("%w: reference point (%v, %v)", ErrInvalidValue, lat1, lon1)
	}
	if !isFinite(lat2) || !isFinite(lon2) {
		return 0, fmt.Errorf("%w: target point (%v, %v)", ErrInvalidValue, lat2, lon2)
	}

	refLat := lat1 * degToRad
	angle := centralAngle(refLat, lon1*degToRad, math.Cos(refLat), lat2*degToRad, lon2*degToRad)

	return radius * angle, nil
}

// BatchDistance returns the great-circle distances between the reference point
// (lat1, lon1) and every target point in the aligned lats/lons collections, in
// the given unit. The result preserves the order of the inputs and has the
// same length. It fails with ErrShapeMismatch when the collections differ in
// length and with ErrInvalidValue when any coordinate is NaN or infinite; no
// partial result is returned.
//
// The output is numerically identical to invoking Distance once per element,
// but the degree conversion and cosine of the reference latitude are computed
// once for the whole batch rather than once per element.
func BatchDistance(lat1, lon1 float64, lats, lons []float64, unit Unit) ([]float64, error) {
	radius, err := unit.Radius()
	if err != nil {
		return nil, err
	}
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("%w: %d latitudes vs %d longitudes", ErrShapeMismatch, len(lats), len(lons))
	}
	if !isFinite(lat1) || !isFinite(lon1) {
		return nil, fmt.Errorf("%w: reference point (%v, %v)", ErrInvalidValue, lat1, lon1)
	}
	for i := range lats {
		if !isFinite(lats[i]) || !isFinite(lons[i]) {
			return nil, fmt.Errorf("%w: element %d (%v, %v)", ErrInvalidValue, i, lats[i], lons[i])
		}
	}

	refLat := lat1 * degToRad
	refLon := lon1 * degToRad
	cosRefLat := math.Cos(refLat)

	out := make([]float64, len(lats))
	for i := range lats {
		out[i] = radius * centralAngle(refLat, refLon, cosRefLat, lats[i]*degToRad, lons[i]*degToRad)
	}

	return out, nil
}

// centralAngle computes the haversine central angle between two points already
// converted to radians. cosLat1 is passed in so batch callers pay for the
// reference-point cosine once per batch.
func centralAngle(lat1, lon1, cosLat1, lat2, lon2 float64) float64 {
	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)

	a := sinLat*sinLat + cosLat1*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push a fractionally outside [0, 1] for coincident or
	// near-antipodal points, which is outside the domain of Asin.
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	return 2 * math.Asin(math.Sqrt(a))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
