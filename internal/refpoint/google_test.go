package refpoint_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/refpoint"
	"github.com/UnknownOlympus/meridian/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleResolve(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	ctx := t.Context()
	address := "Liberty Island, New York, NY"
	req := &maps.GeocodingRequest{Address: address}
	resolver := refpoint.NewGoogleResolver(mockClient, address, slog.Default())

	t.Run("api returns error", func(t *testing.T) {
		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := resolver.Resolve(ctx)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		mockClient.AssertExpectations(t)
	})

	t.Run("api returns empty response", func(t *testing.T) {
		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := resolver.Resolve(ctx)

		require.Nil(t, coords)
		require.ErrorIs(t, err, refpoint.ErrEmptyResponse)
		mockClient.AssertExpectations(t)
	})

	t.Run("successful resolution", func(t *testing.T) {
		mockResponse := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 40.6892, Lng: -74.0445}}},
		}

		mockClient.On("Geocode", ctx, req).Return(mockResponse, nil).Once()

		coords, err := resolver.Resolve(ctx)

		require.NoError(t, err)
		require.NotNil(t, coords)
		require.InEpsilon(t, 40.6892, coords.Latitude, 0.01)
		require.InEpsilon(t, -74.0445, coords.Longitude, 0.01)
		mockClient.AssertExpectations(t)
	})
}
