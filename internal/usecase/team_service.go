package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

// ImageStore is the outbound image-host collaborator: it keeps blobs and
// hands back public URLs.
type ImageStore interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

type TeamService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	transferSvc *TransferService
	images      ImageStore
	ids         idgen.Generator
	logger      *slog.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	transferSvc *TransferService,
	images ImageStore,
	ids idgen.Generator,
	logger *slog.Logger,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		transferSvc: transferSvc,
		images:      images,
		ids:         ids,
		logger:      logger,
	}
}

func (s *TeamService) ListBySeason(ctx context.Context, seasonID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) Save(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Save")
	defer span.End()

	if item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return team.Team{}, fmt.Errorf("generate team id: %w", err)
		}
		item.ID = newID
	}

	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("upsert team: %w", err)
	}
	return item, nil
}

// SetLogo uploads the blob to the image host and stores the returned URL.
func (s *TeamService) SetLogo(ctx context.Context, teamID string, data []byte) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetLogo")
	defer span.End()

	if s.images == nil {
		return team.Team{}, fmt.Errorf("%w: image store is not configured", ErrDependencyUnavailable)
	}
	if len(data) == 0 {
		return team.Team{}, fmt.Errorf("%w: logo data is required", ErrInvalidInput)
	}

	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	url, err := s.images.Store(ctx, "team-logo-"+item.ID, data)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: store logo: %v", ErrDependencyUnavailable, err)
	}

	if old := item.LogoURL; old != "" && old != url {
		if err := s.images.Delete(ctx, old); err != nil {
			s.logger.WarnContext(ctx, "delete old logo failed", "team_id", item.ID, "url", old, "error", err)
		}
	}

	item.LogoURL = url
	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("upsert team logo: %w", err)
	}
	return item, nil
}

// Delete releases the whole roster to free agency first so every player's
// audit trail records the departure, then soft-deletes the team.
func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	item, err := s.Get(ctx, teamID)
	if err != nil {
		return err
	}

	roster, err := s.playerRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("list roster: %w", err)
	}
	for _, p := range roster {
		if _, err := s.transferSvc.Move(ctx, MoveRequest{
			PlayerID:     p.ID,
			NewTeamID:    "",
			AdminRelease: true,
		}); err != nil {
			return fmt.Errorf("release player %s: %w", p.ID, err)
		}
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", item.ID, "released_players", len(roster))
	return nil
}
