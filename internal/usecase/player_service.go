package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	images     ImageStore
	ids        idgen.Generator
	logger     *slog.Logger
}

func NewPlayerService(playerRepo player.Repository, images ImageStore, ids idgen.Generator, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		images:     images,
		ids:        ids,
		logger:     logger,
	}
}

func (s *PlayerService) ListBySeason(ctx context.Context, seasonID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team roster: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// Save creates or updates player master data. Team assignment changes do
// not go through here: they belong to TransferService so the audit trail
// stays complete.
func (s *PlayerService) Save(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Save")
	defer span.End()

	if item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		item.ID = newID
	} else if existing, exists, err := s.playerRepo.GetByID(ctx, item.ID); err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	} else if exists && existing.TeamID != item.TeamID {
		return player.Player{}, fmt.Errorf("%w: team assignment changes must go through a transfer", ErrConflict)
	}

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) SetPhoto(ctx context.Context, playerID string, data []byte) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetPhoto")
	defer span.End()

	if s.images == nil {
		return player.Player{}, fmt.Errorf("%w: image store is not configured", ErrDependencyUnavailable)
	}
	if len(data) == 0 {
		return player.Player{}, fmt.Errorf("%w: photo data is required", ErrInvalidInput)
	}

	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	url, err := s.images.Store(ctx, "player-photo-"+item.ID, data)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: store photo: %v", ErrDependencyUnavailable, err)
	}

	if old := item.PhotoURL; old != "" && old != url {
		if err := s.images.Delete(ctx, old); err != nil {
			s.logger.WarnContext(ctx, "delete old photo failed", "player_id", item.ID, "url", old, "error", err)
		}
	}

	item.PhotoURL = url
	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("upsert player photo: %w", err)
	}
	return item, nil
}
