package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
)

func TestPlayerService_Save_BlocksTeamReassignment(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	svc := NewPlayerService(f.players, nil, f.ids, nil)
	ctx := context.Background()

	existing, err := svc.Get(ctx, "player-out-01")
	require.NoError(t, err)
	require.Equal(t, "team-harbour", existing.TeamID)

	existing.TeamID = "team-northside"
	_, err = svc.Save(ctx, existing)
	require.ErrorIs(t, err, ErrConflict)

	// Non-assignment edits pass through.
	existing, err = svc.Get(ctx, "player-out-01")
	require.NoError(t, err)
	existing.Name = "Renamed Player"
	saved, err := svc.Save(ctx, existing)
	require.NoError(t, err)
	require.Equal(t, "Renamed Player", saved.Name)
}

func TestPlayerService_Save_GeneratesIDForNewPlayer(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	svc := NewPlayerService(f.players, nil, f.ids, nil)

	saved, err := svc.Save(context.Background(), player.Player{
		Name:           "New Signing",
		Position:       player.PositionOutfield,
		ContractStatus: player.ContractFreeAgent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.True(t, saved.IsFreeAgent())
}

func TestPlayerService_SetPhoto_WithoutImageStore(t *testing.T) {
	t.Parallel()

	f := newFixtureRepos()
	svc := NewPlayerService(f.players, nil, f.ids, nil)

	_, err := svc.SetPhoto(context.Background(), "player-out-01", []byte{0x01})
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
