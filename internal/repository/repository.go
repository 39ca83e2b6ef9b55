package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database abstracts the subset of pgxpool.Pool used by the repository,
// so tests can substitute a pgxmock pool.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Ping(ctx context.Context) error
	Close()
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchPendingLocations(ctx context.Context, limit int) ([]models.Location, error)
	UpdateDistances(ctx context.Context, ids []int64, distances []float64) error
	MarkComputeFailed(ctx context.Context, locationID int64, errMsg string) error
	InsertLocations(ctx context.Context, locations []models.Location) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase creates a pgx connection pool for the given PostgreSQL settings
// and verifies the connection with a ping.
func NewDatabase(host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
