package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
)

func TestTransferService_Move_RegistersFreeAgent(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	result, err := service.Move(ctx, MoveRequest{PlayerID: "player-free-01", NewTeamID: "team-eastfield"})
	require.NoError(t, err)
	require.False(t, result.NoOp)
	require.Equal(t, transfer.TypeRegistration, result.Transfer.Type)
	require.Equal(t, "initial registration", result.Transfer.Notes)
	require.Empty(t, result.Transfer.FromTeamID)
	require.Equal(t, "team-eastfield", result.Transfer.ToTeamID)

	moved, exists, err := f.players.GetByID(ctx, "player-free-01")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "team-eastfield", moved.TeamID)
	require.Equal(t, player.ContractNormal, moved.ContractStatus)

	history, err := service.HistoryByPlayer(ctx, "player-free-01")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestTransferService_Move_SeasonalLockRejects(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	// player-out-02 holds a seasonal contract bound to the active season.
	_, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-02", NewTeamID: "team-harbour"})
	require.ErrorIs(t, err, ErrConflict)
	require.ErrorIs(t, err, transfer.ErrSeasonalLockActive)

	// The rejection must leave no trace: no record, no mutation.
	unchanged, _, err := f.players.GetByID(ctx, "player-out-02")
	require.NoError(t, err)
	require.Equal(t, "team-northside", unchanged.TeamID)
	require.Equal(t, player.ContractSeasonal, unchanged.ContractStatus)

	history, err := service.HistoryByPlayer(ctx, "player-out-02")
	require.NoError(t, err)
	require.Empty(t, history)

	// A repeat attempt fails the same way; rejections are repeatable.
	_, err = service.Move(ctx, MoveRequest{PlayerID: "player-out-02", NewTeamID: "team-harbour"})
	require.ErrorIs(t, err, transfer.ErrSeasonalLockActive)
}

func TestTransferService_Move_AdminReleaseOverridesLock(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	// The override only covers releases, not moves to another team.
	_, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-02", NewTeamID: "team-harbour", AdminRelease: true})
	require.ErrorIs(t, err, transfer.ErrSeasonalLockActive)

	result, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-02", AdminRelease: true})
	require.NoError(t, err)
	require.Equal(t, transfer.TypeRelease, result.Transfer.Type)
	require.Equal(t, "released to free agency", result.Transfer.Notes)

	released, _, err := f.players.GetByID(ctx, "player-out-02")
	require.NoError(t, err)
	require.True(t, released.IsFreeAgent())
	require.Equal(t, player.ContractFreeAgent, released.ContractStatus)
	require.Nil(t, released.Contract)
}

func TestTransferService_Move_BetweenTeamsAndRejoin(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	result, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-01", NewTeamID: "team-eastfield", Fee: 50_000})
	require.NoError(t, err)
	require.Equal(t, transfer.TypeTransfer, result.Transfer.Type)
	require.Equal(t, "transfer between teams", result.Transfer.Notes)
	require.Equal(t, int64(50_000), result.Transfer.Fee)
	require.Equal(t, "team-harbour", result.Transfer.FromTeamID)

	_, err = service.Move(ctx, MoveRequest{PlayerID: "player-out-01"})
	require.NoError(t, err)

	// Rejoining with history on file is not an initial registration.
	rejoin, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-01", NewTeamID: "team-northside"})
	require.NoError(t, err)
	require.Equal(t, transfer.TypeRegistration, rejoin.Transfer.Type)
	require.Equal(t, "joined team from free agency", rejoin.Transfer.Notes)

	history, err := service.HistoryByPlayer(ctx, "player-out-01")
	require.NoError(t, err)
	require.Len(t, history, 3)
}

func TestTransferService_Move_SameTeamIsNoOp(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	result, err := service.Move(ctx, MoveRequest{PlayerID: "player-out-01", NewTeamID: "team-harbour"})
	require.NoError(t, err)
	require.True(t, result.NoOp)

	history, err := service.HistoryByPlayer(ctx, "player-out-01")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestTransferService_Move_UnknownPlayer(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()

	_, err := service.Move(context.Background(), MoveRequest{PlayerID: "player-none", NewTeamID: "team-harbour"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.Move(context.Background(), MoveRequest{PlayerID: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransferService_Loan(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	service := f.transferService()
	ctx := context.Background()

	returnDate := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	result, err := service.Loan(ctx, LoanRequest{PlayerID: "player-out-03", ToTeamID: "team-harbour", ReturnDate: returnDate})
	require.NoError(t, err)
	require.False(t, result.NoOp)
	require.Equal(t, transfer.TypeLoan, result.Transfer.Type)
	require.Equal(t, "on loan until 2026-06-30", result.Transfer.Notes)
	require.NotNil(t, result.Transfer.ReturnDate)
	require.True(t, result.Transfer.ReturnDate.Equal(returnDate))

	loaned, _, err := f.players.GetByID(ctx, "player-out-03")
	require.NoError(t, err)
	require.Equal(t, "team-harbour", loaned.TeamID)
	require.Equal(t, player.ContractNormal, loaned.ContractStatus)

	// Loaning even a seasonally locked player is allowed.
	locked, err := service.Loan(ctx, LoanRequest{PlayerID: "player-out-02", ToTeamID: "team-westgate", ReturnDate: returnDate})
	require.NoError(t, err)
	require.Equal(t, transfer.TypeLoan, locked.Transfer.Type)

	_, err = service.Loan(ctx, LoanRequest{PlayerID: "player-out-03", ToTeamID: "team-eastfield"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
