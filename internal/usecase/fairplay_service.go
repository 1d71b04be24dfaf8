package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

type FairPlayService struct {
	fairPlayRepo fairplay.Repository
	standingSvc  *StandingService
	ids          idgen.Generator
}

func NewFairPlayService(fairPlayRepo fairplay.Repository, standingSvc *StandingService, ids idgen.Generator) *FairPlayService {
	return &FairPlayService{
		fairPlayRepo: fairPlayRepo,
		standingSvc:  standingSvc,
		ids:          ids,
	}
}

func (s *FairPlayService) ListBySeason(ctx context.Context, seasonID string) ([]fairplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FairPlayService.ListBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.fairPlayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list fair-play records: %w", err)
	}
	return items, nil
}

func (s *FairPlayService) Save(ctx context.Context, item fairplay.Record) (fairplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FairPlayService.Save")
	defer span.End()

	if item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return fairplay.Record{}, fmt.Errorf("generate fair-play record id: %w", err)
		}
		item.ID = newID
	}
	if item.Status == "" {
		item.Status = fairplay.StatusActive
	}

	if err := item.Validate(); err != nil {
		return fairplay.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.fairPlayRepo.Upsert(ctx, item); err != nil {
		return fairplay.Record{}, fmt.Errorf("upsert fair-play record: %w", err)
	}

	// Fair-play totals feed the tie-break chain.
	s.standingSvc.InvalidateSeason(ctx, item.SeasonID)

	return item, nil
}

// UpdateStatus moves a record through its appeal lifecycle.
func (s *FairPlayService) UpdateStatus(ctx context.Context, recordID string, status fairplay.Status) (fairplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FairPlayService.UpdateStatus")
	defer span.End()

	if _, ok := fairplay.AllStatuses[status]; !ok {
		return fairplay.Record{}, fmt.Errorf("%w: invalid fair-play status %q", ErrInvalidInput, status)
	}

	item, exists, err := s.fairPlayRepo.GetByID(ctx, strings.TrimSpace(recordID))
	if err != nil {
		return fairplay.Record{}, fmt.Errorf("get fair-play record: %w", err)
	}
	if !exists {
		return fairplay.Record{}, fmt.Errorf("%w: fair-play record=%s", ErrNotFound, recordID)
	}

	item.Status = status
	if err := s.fairPlayRepo.Upsert(ctx, item); err != nil {
		return fairplay.Record{}, fmt.Errorf("update fair-play status: %w", err)
	}

	s.standingSvc.InvalidateSeason(ctx, item.SeasonID)
	return item, nil
}
