package ingest_test

import (
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/meridian/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	defer filet.CleanUp(t)

	t.Run("success - loads locations", func(t *testing.T) {
		content := "name,latitude,longitude\n" +
			"Hilton Garden Inn,40.7480,-73.9857\n" +
			"The Standard,40.7408,-74.0080\n"
		file := filet.TmpFile(t, "", content)

		locations, err := ingest.LoadCSV(file.Name())

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, "Hilton Garden Inn", locations[0].Name)
		assert.InEpsilon(t, 40.7480, locations[0].Coords.Latitude, 1e-9)
		assert.InEpsilon(t, -73.9857, locations[0].Coords.Longitude, 1e-9)
		assert.Equal(t, "The Standard", locations[1].Name)
	})

	t.Run("success - extra columns are ignored", func(t *testing.T) {
		content := "hotel_id,name,address,latitude,longitude,star_rating\n" +
			"1,Hotel Pennsylvania,401 7th Ave,40.7503,-73.9910,3.0\n"
		file := filet.TmpFile(t, "", content)

		locations, err := ingest.LoadCSV(file.Name())

		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, "Hotel Pennsylvania", locations[0].Name)
	})

	t.Run("success - header matching is case-insensitive", func(t *testing.T) {
		content := "Name,Latitude,Longitude\nSomewhere,1.5,-2.5\n"
		file := filet.TmpFile(t, "", content)

		locations, err := ingest.LoadCSV(file.Name())

		require.NoError(t, err)
		require.Len(t, locations, 1)
	})

	t.Run("success - empty dataset", func(t *testing.T) {
		file := filet.TmpFile(t, "", "name,latitude,longitude\n")

		locations, err := ingest.LoadCSV(file.Name())

		require.NoError(t, err)
		assert.Empty(t, locations)
	})

	t.Run("error - missing file", func(t *testing.T) {
		locations, err := ingest.LoadCSV("/nonexistent/dataset.csv")

		require.Nil(t, locations)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to open dataset")
	})

	t.Run("error - missing latitude column", func(t *testing.T) {
		file := filet.TmpFile(t, "", "name,lat,longitude\nSomewhere,1.5,-2.5\n")

		locations, err := ingest.LoadCSV(file.Name())

		require.Nil(t, locations)
		require.ErrorIs(t, err, ingest.ErrMissingColumn)
		require.ErrorContains(t, err, "latitude")
	})

	t.Run("error - invalid latitude value", func(t *testing.T) {
		content := "name,latitude,longitude\n" +
			"Good Row,40.7480,-73.9857\n" +
			"Bad Row,not-a-number,-74.0080\n"
		file := filet.TmpFile(t, "", content)

		locations, err := ingest.LoadCSV(file.Name())

		require.Nil(t, locations)
		require.Error(t, err)
		require.ErrorContains(t, err, "row 3: invalid latitude")
	})

	t.Run("error - invalid longitude value", func(t *testing.T) {
		content := "name,latitude,longitude\nBad Row,40.7480,east\n"
		file := filet.TmpFile(t, "", content)

		locations, err := ingest.LoadCSV(file.Name())

		require.Nil(t, locations)
		require.Error(t, err)
		require.ErrorContains(t, err, "row 2: invalid longitude")
	})
}
