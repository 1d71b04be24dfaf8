package usecase

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/matchdayhq/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/leaguedesk/internal/platform/cache"
)

type seqGenerator struct {
	counter atomic.Int64
}

func (g *seqGenerator) NewID() (string, error) {
	return fmt.Sprintf("id-%03d", g.counter.Add(1)), nil
}

type fixtureRepos struct {
	seasons   *memory.SeasonRepository
	teams     *memory.TeamRepository
	players   *memory.PlayerRepository
	matches   *memory.MatchRepository
	fairPlay  *memory.FairPlayRepository
	transfers *memory.TransferRepository
	cache     *cache.Store
	ids       *seqGenerator
}

func newFixtureRepos() *fixtureRepos {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	return &fixtureRepos{
		seasons:   memory.NewSeasonRepository(memory.SeedSeasons()),
		teams:     teamRepo,
		players:   memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo),
		matches:   memory.NewMatchRepository(memory.SeedMatches()),
		fairPlay:  memory.NewFairPlayRepository(memory.SeedFairPlayRecords()),
		transfers: memory.NewTransferRepository(nil),
		cache:     cache.NewStore(time.Minute),
		ids:       &seqGenerator{},
	}
}

func (f *fixtureRepos) standingService() *StandingService {
	return NewStandingService(f.seasons, f.teams, f.matches, f.fairPlay, f.cache, nil)
}

func (f *fixtureRepos) transferService() *TransferService {
	return NewTransferService(f.players, f.seasons, f.transfers, f.ids, nil)
}
