package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	"github.com/matchdayhq/leaguedesk/internal/domain/standings"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
	"github.com/matchdayhq/leaguedesk/internal/platform/cache"
)

// StandingService is the single code path producing league tables. Every
// presentation surface goes through it; nothing else in the repo aggregates
// match results.
type StandingService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	fairPlayRepo fairplay.Repository
	cache        *cache.Store
	logger       *slog.Logger
}

func NewStandingService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	fairPlayRepo fairplay.Repository,
	cacheStore *cache.Store,
	logger *slog.Logger,
) *StandingService {
	if logger == nil {
		logger = slog.Default()
	}

	return &StandingService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		fairPlayRepo: fairPlayRepo,
		cache:        cacheStore,
		logger:       logger,
	}
}

func (s *StandingService) TableBySeason(ctx context.Context, seasonID string) ([]standings.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TableBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	if s.cache == nil {
		return s.computeTable(ctx, seasonID)
	}

	cacheKey := standingsCacheKey(seasonID)
	value, err := s.cache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (any, error) {
		return s.computeTable(ctx, seasonID)
	})
	if err != nil {
		return nil, err
	}

	table, ok := value.([]standings.TeamStanding)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for %s", cacheKey)
	}

	return table, nil
}

// computeTable fetches the season's inputs concurrently and runs the
// standings computation. Callers decide whether the result is cached.
func (s *StandingService) computeTable(ctx context.Context, seasonID string) ([]standings.TeamStanding, error) {
	var (
		teams   []team.Team
		matches []match.Match
		records []fairplay.Record
	)

	fetch := pool.New().WithErrors().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		var err error
		if teams, err = s.teamRepo.ListBySeason(ctx, seasonID); err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		var err error
		if matches, err = s.matchRepo.ListBySeason(ctx, seasonID); err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		var err error
		if records, err = s.fairPlayRepo.ListBySeason(ctx, seasonID); err != nil {
			return fmt.Errorf("list fair-play records: %w", err)
		}
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return nil, err
	}

	// Exclusion is silent by contract; logging it is advisory diagnostics.
	if _, excluded := standings.SplitValid(teams, matches); len(excluded) > 0 {
		ids := make([]string, 0, len(excluded))
		for _, m := range excluded {
			ids = append(ids, m.ID)
		}
		s.logger.DebugContext(ctx, "matches excluded from standings",
			"season_id", seasonID,
			"count", len(excluded),
			"match_ids", ids,
		)
	}

	return standings.Compute(teams, matches, records), nil
}

// InvalidateSeason drops the cached table after a write that can change it.
func (s *StandingService) InvalidateSeason(ctx context.Context, seasonID string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, standingsCacheKey(seasonID))
}

// InvalidateAll drops every cached table ahead of a full rebuild.
func (s *StandingService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, standingsCachePrefix)
}

const standingsCachePrefix = "standings|"

func standingsCacheKey(seasonID string) string {
	return standingsCachePrefix + seasonID
}
