package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jackc/pgx/v5"
)

// EnsureSchema creates the locations table if it does not exist yet.
// Column types mirror the CSV dataset plus the computed distance and the
// bookkeeping columns used by the retry logic.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS locations (
			location_id      BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			latitude         DOUBLE PRECISION NOT NULL,
			longitude        DOUBLE PRECISION NOT NULL,
			distance         DOUBLE PRECISION,
			compute_error    TEXT,
			compute_attempts INTEGER NOT NULL DEFAULT 0,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to ensure locations schema: %w", err)
	}

	return nil
}

// FetchPendingLocations retrieves locations that still need a computed distance.
// It returns rows with a NULL distance and fewer than 5 compute attempts,
// ordered by creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of locations to retrieve.
//
// Returns:
// - A slice of models.Location containing the rows that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPendingLocations(ctx context.Context, limit int) ([]models.Location, error) {
	var locations []models.Location
	query := `
		SELECT location_id, name, latitude, longitude
		FROM public.locations
		WHERE
			distance IS NULL
			AND compute_attempts < 5
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var loc models.Location
		if errScan := rows.Scan(&loc.ID, &loc.Name, &loc.Coords.Latitude, &loc.Coords.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending location: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new location without a computed distance has been received.",
			"ID", loc.ID, "Name", loc.Name)
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return locations, nil
}

// UpdateDistances writes computed distances back to the locations identified by
// ids. The two slices are aligned positionally and must have equal length; the
// updates are sent to the database as a single batch. The compute_error field
// is cleared for every updated row.
func (r *Repository) UpdateDistances(ctx context.Context, ids []int64, distances []float64) error {
	if len(ids) != len(distances) {
		return fmt.Errorf("mismatched update collections: %d ids vs %d distances", len(ids), len(distances))
	}
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE locations
		SET
			distance = $1,
			compute_error = NULL
		WHERE
			location_id = $2;
	`

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(query, distances[i], id)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to update location distance: %w", err)
		}
	}

	return nil
}

// MarkComputeFailed increments the compute attempt count for a specific
// location identified by locationID and records the associated error message.
// If the update operation fails, it returns an error with additional context.
func (r *Repository) MarkComputeFailed(ctx context.Context, locationID int64, errMsg string) error {
	query := `
		UPDATE locations
		SET
			compute_attempts = compute_attempts + 1,
			compute_error = $1
		WHERE location_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, locationID)
	if err != nil {
		return fmt.Errorf("failed to update compute error and number of attempts: %w", err)
	}

	return nil
}

// InsertLocations stores the given locations as a single batch. Rows are
// inserted with a NULL distance so the service picks them up on the next tick.
func (r *Repository) InsertLocations(ctx context.Context, locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}

	query := `
		INSERT INTO locations (name, latitude, longitude)
		VALUES ($1, $2, $3);
	`

	batch := &pgx.Batch{}
	for _, loc := range locations {
		batch.Queue(query, loc.Name, loc.Coords.Latitude, loc.Coords.Longitude)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range locations {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert location: %w", err)
		}
	}

	return nil
}
