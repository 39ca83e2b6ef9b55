package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geodesic"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/repository"
)

// DistanceService periodically computes great-circle distances from the
// reference point to every stored location that does not have one yet,
// including logging, repository access, metrics tracking, and worker
// management.
type DistanceService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	reference    models.Coordinates   // Reference point all distances are measured from
	unit         geodesic.Unit        // Distance unit results are computed in
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	batchSize    int                  // Maximum number of pending locations fetched per tick
	pollInterval time.Duration        // Interval for polling pending locations
}

// NewDistanceService creates a new instance of DistanceService.
// It takes a logger, a repository interface, the resolved reference point, the
// distance unit, metrics for monitoring, the number of workers to use, the
// batch size, and a polling interval. It returns a pointer to the newly
// created DistanceService.
func NewDistanceService(
	log *slog.Logger,
	repo repository.Interface,
	reference models.Coordinates,
	unit geodesic.Unit,
	metrics *metrics.Metrics,
	numWorkers int,
	batchSize int,
	pollInterval time.Duration,
) *DistanceService {
	return &DistanceService{
		log:          log,
		repo:         repo,
		reference:    reference,
		unit:         unit,
		metrics:      metrics,
		numWorkers:   numWorkers,
		batchSize:    batchSize,
		pollInterval: pollInterval,
	}
}

// Run starts the distance service, which periodically polls for locations
// without a computed distance. It listens for a cancellation signal from the
// context to gracefully stop the service.
func (ds *DistanceService) Run(ctx context.Context) {
	ticker := time.NewTicker(ds.pollInterval)
	defer ticker.Stop()

	ds.log.InfoContext(ctx, "Distance service started...",
		"reference_lat", ds.reference.Latitude,
		"reference_lon", ds.reference.Longitude,
		"unit", string(ds.unit))

	for {
		select {
		case <-ctx.Done():
			ds.log.InfoContext(ctx, "Distance service stopped.")
			return
		case <-ticker.C:
			ds.log.InfoContext(ctx, "Polling for locations without a computed distance...")
			ds.processPending(ctx)
		}
	}
}

// processPending fetches locations without a computed distance from the
// repository, splits them into per-worker chunks, starts a worker pool, and
// waits for all workers to finish. It logs errors if the fetch fails and logs
// the status of batch processing.
func (ds *DistanceService) processPending(ctx context.Context) {
	locations, err := ds.repo.FetchPendingLocations(ctx, ds.batchSize)
	if err != nil {
		ds.log.ErrorContext(ctx, "Failed to fetch pending locations", "error", err)
		return
	}
	if len(locations) == 0 {
		ds.log.InfoContext(ctx, "No locations to process.")
		return
	}

	chunks := chunkLocations(locations, ds.numWorkers)

	ds.log.InfoContext(
		ctx,
		"Found locations to process. Starting worker pool.",
		"locations",
		len(locations),
		"chunks",
		len(chunks),
		"num_workers",
		ds.numWorkers,
	)

	jobs := make(chan []models.Location, len(chunks))
	var wgr sync.WaitGroup

	for i := 1; i <= ds.numWorkers; i++ {
		wgr.Add(1)
		go ds.worker(ctx, i, &wgr, jobs)
	}

	for _, chunk := range chunks {
		jobs <- chunk
	}
	close(jobs)

	wgr.Wait()
	ds.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes location chunks from the jobs channel. Each chunk is
// evaluated with a single batch invocation over the aligned coordinate
// collections; the per-element scalar form is only used as a fallback when the
// batch is rejected for containing an invalid coordinate, so the offending
// rows can be isolated and marked failed without losing the rest of the chunk.
func (ds *DistanceService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan []models.Location) {
	defer wg.Done()
	for chunk := range jobs {
		ds.metrics.ActiveWorkers.Inc()
		ds.log.DebugContext(ctx, "Processing chunk", "worker", idx, "locations", len(chunk))

		ids := make([]int64, len(chunk))
		lats := make([]float64, len(chunk))
		lons := make([]float64, len(chunk))
		for i, loc := range chunk {
			ids[i] = loc.ID
			lats[i] = loc.Coords.Latitude
			lons[i] = loc.Coords.Longitude
		}

		startTime := time.Now()
		distances, err := geodesic.BatchDistance(
			ds.reference.Latitude, ds.reference.Longitude, lats, lons, ds.unit,
		)
		duration := time.Since(startTime).Seconds()
		ds.metrics.BatchSeconds.WithLabelValues(string(ds.unit)).Observe(duration)

		if err != nil {
			ds.metrics.ComputeErrors.Inc()

			if errors.Is(err, geodesic.ErrInvalidValue) {
				ds.log.WarnContext(ctx, "Chunk contains invalid coordinates, retrying per element",
					"worker", idx, "error", err)
				ds.recoverChunk(ctx, idx, chunk)
				ds.metrics.ActiveWorkers.Dec()
				continue
			}

			ds.log.ErrorContext(ctx, "Failed to compute batch distances", "worker", idx, "error", err)
			ds.metrics.LocationsProcessed.WithLabelValues("failure").Add(float64(len(chunk)))
			ds.metrics.ActiveWorkers.Dec()
			continue
		}

		if err = ds.repo.UpdateDistances(ctx, ids, distances); err != nil {
			ds.log.ErrorContext(ctx, "Failed to update distances for chunk",
				"worker", idx, "locations", len(chunk), "error", err)
			ds.metrics.LocationsProcessed.WithLabelValues("failure").Add(float64(len(chunk)))
		} else {
			ds.metrics.LocationsProcessed.WithLabelValues("success").Add(float64(len(chunk)))
			ds.log.DebugContext(ctx, "Worker successfully processed the chunk",
				"worker", idx, "locations", len(chunk))
		}

		ds.metrics.ActiveWorkers.Dec()
	}
}

// recoverChunk retries every location of a rejected chunk with the scalar
// form. Locations that still fail are marked failed in the repository so the
// retry counter moves forward; valid locations are updated individually.
func (ds *DistanceService) recoverChunk(ctx context.Context, idx int, chunk []models.Location) {
	for _, loc := range chunk {
		dist, err := geodesic.Distance(
			ds.reference.Latitude, ds.reference.Longitude,
			loc.Coords.Latitude, loc.Coords.Longitude, ds.unit,
		)
		if err != nil {
			ds.log.WarnContext(ctx, "Failed to compute distance for location",
				"worker", idx, "location", loc.ID, "error", err)
			ds.metrics.LocationsProcessed.WithLabelValues("failure").Inc()

			if err = ds.repo.MarkComputeFailed(ctx, loc.ID, err.Error()); err != nil {
				ds.log.ErrorContext(
					ctx,
					"Could not update failure count for location",
					"worker", idx,
					"location", loc.ID,
					"error", err,
				)
			}
			continue
		}

		if err = ds.repo.UpdateDistances(ctx, []int64{loc.ID}, []float64{dist}); err != nil {
			ds.log.ErrorContext(ctx, "Failed to update distance for location",
				"worker", idx, "location", loc.ID, "error", err)
			ds.metrics.LocationsProcessed.WithLabelValues("failure").Inc()
		} else {
			ds.metrics.LocationsProcessed.WithLabelValues("success").Inc()
		}
	}
}

// chunkLocations splits locations into at most workers nearly-even chunks,
// preserving order.
func chunkLocations(locations []models.Location, workers int) [][]models.Location {
	if workers < 1 {
		workers = 1
	}

	size := (len(locations) + workers - 1) / workers
	var chunks [][]models.Location
	for start := 0; start < len(locations); start += size {
		end := min(start+size, len(locations))
		chunks = append(chunks, locations[start:end])
	}

	return chunks
}
