package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
	idgen "github.com/matchdayhq/leaguedesk/internal/platform/id"
)

// TransferService is the only writer of players' team assignments. It runs
// the lifecycle rules, then persists the audit record and the player
// mutation. A per-player lock serializes concurrent requests so two racing
// moves cannot both read the same stale assignment.
type TransferService struct {
	playerRepo   player.Repository
	seasonRepo   season.Repository
	transferRepo transfer.Repository
	ids          idgen.Generator
	logger       *slog.Logger
	now          func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTransferService(
	playerRepo player.Repository,
	seasonRepo season.Repository,
	transferRepo transfer.Repository,
	ids idgen.Generator,
	logger *slog.Logger,
) *TransferService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TransferService{
		playerRepo:   playerRepo,
		seasonRepo:   seasonRepo,
		transferRepo: transferRepo,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
		locks:        make(map[string]*sync.Mutex),
	}
}

// MoveRequest asks to change one player's team assignment. An empty
// NewTeamID releases the player to free agency.
type MoveRequest struct {
	PlayerID     string
	NewTeamID    string
	Fee          int64
	AdminRelease bool
}

type LoanRequest struct {
	PlayerID   string
	ToTeamID   string
	ReturnDate time.Time
}

// MoveResult reports what happened. NoOp is distinguishable from a
// performed transfer: it carries no record.
type MoveResult struct {
	NoOp     bool
	Transfer transfer.Transfer
}

func (s *TransferService) Move(ctx context.Context, req MoveRequest) (MoveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Move")
	defer span.End()

	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return MoveResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	unlock := s.lockPlayer(playerID)
	defer unlock()

	p, active, err := s.loadMoveContext(ctx, playerID)
	if err != nil {
		return MoveResult{}, err
	}

	priorCount, err := s.transferRepo.CountByPlayer(ctx, playerID)
	if err != nil {
		return MoveResult{}, fmt.Errorf("count prior transfers: %w", err)
	}

	plan, err := transfer.PlanMove(transfer.MoveInput{
		Player:          p,
		NewTeamID:       strings.TrimSpace(req.NewTeamID),
		ActiveSeason:    active,
		HasPriorHistory: priorCount > 0,
		AdminRelease:    req.AdminRelease,
		Fee:             req.Fee,
		Now:             s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, transfer.ErrSeasonalLockActive) {
			return MoveResult{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return MoveResult{}, err
	}
	if plan.NoOp {
		return MoveResult{NoOp: true}, nil
	}

	status := player.ContractNormal
	if plan.Record.Type == transfer.TypeRelease {
		status = player.ContractFreeAgent
	}

	record, err := s.apply(ctx, plan.Record, status)
	if err != nil {
		return MoveResult{}, err
	}

	s.logger.InfoContext(ctx, "player moved",
		"player_id", record.PlayerID,
		"from_team", record.FromTeamID,
		"to_team", record.ToTeamID,
		"type", string(record.Type),
	)

	return MoveResult{Transfer: record}, nil
}

func (s *TransferService) Loan(ctx context.Context, req LoanRequest) (MoveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Loan")
	defer span.End()

	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return MoveResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if req.ReturnDate.IsZero() {
		return MoveResult{}, fmt.Errorf("%w: loan return date is required", ErrInvalidInput)
	}

	unlock := s.lockPlayer(playerID)
	defer unlock()

	p, active, err := s.loadMoveContext(ctx, playerID)
	if err != nil {
		return MoveResult{}, err
	}

	plan, err := transfer.PlanLoan(p, strings.TrimSpace(req.ToTeamID), active, req.ReturnDate, s.now().UTC())
	if err != nil {
		return MoveResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if plan.NoOp {
		return MoveResult{NoOp: true}, nil
	}

	// A loan moves the player without touching the contract status; the
	// parent contract stays in force for the return. A free agent taken on
	// loan gets a normal contract so assignment and status stay consistent.
	status := p.ContractStatus
	if status == player.ContractFreeAgent {
		status = player.ContractNormal
	}
	record, err := s.apply(ctx, plan.Record, status)
	if err != nil {
		return MoveResult{}, err
	}

	s.logger.InfoContext(ctx, "player loaned",
		"player_id", record.PlayerID,
		"to_team", record.ToTeamID,
		"return_date", record.ReturnDate,
	)

	return MoveResult{Transfer: record}, nil
}

func (s *TransferService) HistoryByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.HistoryByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	items, err := s.transferRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by player: %w", err)
	}
	return items, nil
}

func (s *TransferService) HistoryBySeason(ctx context.Context, seasonID string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.HistoryBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.transferRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by season: %w", err)
	}
	return items, nil
}

func (s *TransferService) loadMoveContext(ctx context.Context, playerID string) (player.Player, season.Season, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, season.Season{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, season.Season{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return player.Player{}, season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return player.Player{}, season.Season{}, fmt.Errorf("%w: no active season", ErrConflict)
	}

	return p, active, nil
}

// apply persists the audit record first, then the assignment; a transfer
// record without an applied move is a harmless duplicate in the audit trail,
// an applied move without a record would break the one-record guarantee.
func (s *TransferService) apply(ctx context.Context, record transfer.Transfer, status player.ContractStatus) (transfer.Transfer, error) {
	recordID, err := s.ids.NewID()
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("generate transfer id: %w", err)
	}
	record.ID = recordID

	if err := record.Validate(); err != nil {
		return transfer.Transfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.transferRepo.Append(ctx, record); err != nil {
		return transfer.Transfer{}, fmt.Errorf("append transfer record: %w", err)
	}
	if err := s.playerRepo.SetAssignment(ctx, record.PlayerID, record.ToTeamID, status); err != nil {
		return transfer.Transfer{}, fmt.Errorf("apply player assignment: %w", err)
	}

	return record, nil
}

func (s *TransferService) lockPlayer(playerID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[playerID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
