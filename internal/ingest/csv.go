// Package ingest loads coordinate datasets from tabular files into location
// rows. Parsing stops at the first malformed row; validating the numeric
// ranges of the coordinates is left to the distance pipeline.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// ErrMissingColumn is returned when the dataset header lacks a required column.
var ErrMissingColumn = errors.New("dataset is missing a required column")

// Required dataset columns, matched case-insensitively against the header row.
const (
	columnName      = "name"
	columnLatitude  = "latitude"
	columnLongitude = "longitude"
)

// LoadCSV reads a coordinate dataset from the CSV file at path. The file must
// have a header row with name, latitude and longitude columns; extra columns
// are ignored. Rows with non-numeric coordinates are rejected with the row
// number in the error.
func LoadCSV(path string) ([]models.Location, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return parse(csv.NewReader(file))
}

func parse(reader *csv.Reader) ([]models.Location, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	nameIdx, latIdx, lonIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case columnName:
			nameIdx = i
		case columnLatitude:
			latIdx = i
		case columnLongitude:
			lonIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnName)
	}
	if latIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnLatitude)
	}
	if lonIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnLongitude)
	}

	var locations []models.Location
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", row, err)
		}

		lat, err := strconv.ParseFloat(record[latIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude %q: %w", row, record[latIdx], err)
		}
		lon, err := strconv.ParseFloat(record[lonIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q: %w", row, record[lonIdx], err)
		}

		locations = append(locations, models.Location{
			Name:   record[nameIdx],
			Coords: models.Coordinates{Latitude: lat, Longitude: lon},
		})
	}

	return locations, nil
}
