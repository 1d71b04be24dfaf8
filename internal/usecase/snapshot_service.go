package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchdayhq/leaguedesk/internal/domain/season"
)

const (
	snapshotStatusSuccess = "success"
	snapshotStatusFailed  = "failed"

	defaultSnapshotWorkers = 4
	maxSnapshotWorkers     = 16
)

// SnapshotTaskResult is one season's slice of a snapshot run.
type SnapshotTaskResult struct {
	SeasonID   string `json:"seasonId"`
	SeasonName string `json:"seasonName"`
	Rows       int    `json:"rows"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// SnapshotResult summarizes a full standings rebuild.
type SnapshotResult struct {
	SeasonCount  int                  `json:"seasonCount"`
	WorkerCount  int                  `json:"workerCount"`
	SuccessCount int                  `json:"successCount"`
	FailedCount  int                  `json:"failedCount"`
	Tasks        []SnapshotTaskResult `json:"tasks"`
}

// SnapshotService rebuilds the standings cache for every season in one
// pass. It is wired to the internal jobs surface so operators can warm
// the cache after bulk imports or repository restores.
type SnapshotService struct {
	seasonRepo  season.Repository
	standingSvc *StandingService
	workers     int
	logger      *slog.Logger
}

func NewSnapshotService(seasonRepo season.Repository, standingSvc *StandingService, workers int, logger *slog.Logger) *SnapshotService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SnapshotService{
		seasonRepo:  seasonRepo,
		standingSvc: standingSvc,
		workers:     workers,
		logger:      logger,
	}
}

// RebuildAll drops every season's cached table and recomputes it on a
// bounded worker pool. Individual season failures are reported per task,
// not returned as the run's error.
func (s *SnapshotService) RebuildAll(ctx context.Context) (SnapshotResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.RebuildAll")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return SnapshotResult{}, fmt.Errorf("list seasons: %w", err)
	}

	workerCount := normalizeSnapshotWorkerCount(s.workers, len(seasons))
	result := SnapshotResult{
		SeasonCount: len(seasons),
		WorkerCount: workerCount,
		Tasks:       make([]SnapshotTaskResult, 0, len(seasons)),
	}
	if len(seasons) == 0 {
		return result, nil
	}

	s.standingSvc.InvalidateAll(ctx)

	results := make(chan SnapshotTaskResult, len(seasons))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SnapshotResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, item := range seasons {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SnapshotTaskResult{
				SeasonID:   item.ID,
				SeasonName: item.Name,
			}

			table, err := s.standingSvc.TableBySeason(ctx, item.ID)
			if err != nil {
				row.Status = snapshotStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = snapshotStatusSuccess
				row.Rows = len(table)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return SnapshotResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].SeasonID < result.Tasks[j].SeasonID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "standings snapshot rebuilt",
		"seasons", result.SeasonCount,
		"workers", result.WorkerCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

func normalizeSnapshotWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultSnapshotWorkers
	}
	if count > maxSnapshotWorkers {
		count = maxSnapshotWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	return count
}
