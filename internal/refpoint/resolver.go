package refpoint

import (
	"context"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Resolver is an interface that defines a method for resolving the reference
// point all distances are measured from. The Resolve method takes a context
// as input and returns the reference coordinates and an error if any occurs.
type Resolver interface {
	Resolve(ctx context.Context) (*models.Coordinates, error)
}
