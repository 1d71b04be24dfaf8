package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

type MatchService struct {
	matchRepo   match.Repository
	teamRepo    team.Repository
	standingSvc *StandingService
	ids         idgen.Generator
	logger      *slog.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	standingSvc *StandingService,
	ids idgen.Generator,
	logger *slog.Logger,
) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}

	return &MatchService{
		matchRepo:   matchRepo,
		teamRepo:    teamRepo,
		standingSvc: standingSvc,
		ids:         ids,
		logger:      logger,
	}
}

func (s *MatchService) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) Save(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Save")
	defer span.End()

	if item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate match id: %w", err)
		}
		item.ID = newID
	}
	item.Status = match.NormalizeStatus(item.Status)

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamsBelongToSeason(ctx, item); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}

	// Any match write can change the table; recomputation is cheap and the
	// cache stays consistent.
	s.standingSvc.InvalidateSeason(ctx, item.SeasonID)

	return item, nil
}

// RecordResult completes a match with its final score.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if homeScore < 0 || awayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	item.Status = match.StatusCompleted
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("record match result: %w", err)
	}

	s.standingSvc.InvalidateSeason(ctx, item.SeasonID)
	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", item.ID,
		"home_score", homeScore,
		"away_score", awayScore,
	)

	return item, nil
}

func (s *MatchService) teamsBelongToSeason(ctx context.Context, item match.Match) error {
	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		t, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if t.SeasonID != item.SeasonID {
			return fmt.Errorf("%w: team %s is not registered for season %s", ErrConflict, teamID, item.SeasonID)
		}
	}
	return nil
}
