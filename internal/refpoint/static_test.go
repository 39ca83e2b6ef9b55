package refpoint_test

import (
	"log/slog"
	"math"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/refpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	logger := slog.Default()
	ctx := t.Context()

	t.Run("resolves configured coordinates", func(t *testing.T) {
		resolver, err := refpoint.NewStaticResolver(40.671, -73.985, logger)
		require.NoError(t, err)

		coords, err := resolver.Resolve(ctx)

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 40.671, coords.Latitude, 1e-9)
		assert.InEpsilon(t, -73.985, coords.Longitude, 1e-9)
	})

	t.Run("rejects NaN latitude", func(t *testing.T) {
		resolver, err := refpoint.NewStaticResolver(math.NaN(), 0, logger)

		require.Nil(t, resolver)
		require.ErrorIs(t, err, refpoint.ErrCoordinateNotFinite)
	})

	t.Run("rejects infinite longitude", func(t *testing.T) {
		resolver, err := refpoint.NewStaticResolver(0, math.Inf(1), logger)

		require.Nil(t, resolver)
		require.ErrorIs(t, err, refpoint.ErrCoordinateNotFinite)
	})

	t.Run("rejects latitude outside range", func(t *testing.T) {
		resolver, err := refpoint.NewStaticResolver(-90.5, 0, logger)

		require.Nil(t, resolver)
		require.ErrorIs(t, err, refpoint.ErrLatitudeRange)
	})

	t.Run("rejects longitude outside range", func(t *testing.T) {
		resolver, err := refpoint.NewStaticResolver(0, 181, logger)

		require.Nil(t, resolver)
		require.ErrorIs(t, err, refpoint.ErrLongitudeRange)
	})
}
