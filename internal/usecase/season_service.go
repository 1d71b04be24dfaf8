package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

type SeasonService struct {
	seasonRepo season.Repository
	ids        idgen.Generator
}

func NewSeasonService(seasonRepo season.Repository, ids idgen.Generator) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo, ids: ids}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}

func (s *SeasonService) GetActive(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetActive")
	defer span.End()

	item, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}
	return item, nil
}

func (s *SeasonService) Save(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Save")
	defer span.End()

	if item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return season.Season{}, fmt.Errorf("generate season id: %w", err)
		}
		item.ID = newID
	}

	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Upsert(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}
	return item, nil
}
