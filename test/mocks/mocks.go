// Package mocks contains hand-written testify mocks shared by the test suites.
package mocks

import (
	"context"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// Repository is a mock for repository.Interface.
type Repository struct {
	mock.Mock
}

// NewRepository creates a Repository mock bound to the test lifecycle.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *Repository) FetchPendingLocations(ctx context.Context, limit int) ([]models.Location, error) {
	args := m.Called(ctx, limit)

	var locations []models.Location
	if v := args.Get(0); v != nil {
		locations, _ = v.([]models.Location)
	}

	return locations, args.Error(1)
}

func (m *Repository) UpdateDistances(ctx context.Context, ids []int64, distances []float64) error {
	args := m.Called(ctx, ids, distances)

	return args.Error(0)
}

func (m *Repository) MarkComputeFailed(ctx context.Context, locationID int64, errMsg string) error {
	args := m.Called(ctx, locationID, errMsg)

	return args.Error(0)
}

func (m *Repository) InsertLocations(ctx context.Context, locations []models.Location) error {
	args := m.Called(ctx, locations)

	return args.Error(0)
}

// GoogleAPIClient is a mock for refpoint.GoogleAPIClient.
type GoogleAPIClient struct {
	mock.Mock
}

// NewGoogleAPIClient creates a GoogleAPIClient mock bound to the test lifecycle.
func NewGoogleAPIClient(t interface {
	mock.TestingT
	Cleanup(func())
},
) *GoogleAPIClient {
	m := &GoogleAPIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *GoogleAPIClient) Geocode(
	ctx context.Context,
	r *maps.GeocodingRequest,
) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)

	var results []maps.GeocodingResult
	if v := args.Get(0); v != nil {
		results, _ = v.([]maps.GeocodingResult)
	}

	return results, args.Error(1)
}
