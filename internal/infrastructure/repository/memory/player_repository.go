package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string

	// teams resolves season membership so teams created at runtime are
	// visible to ListBySeason immediately.
	teams *TeamRepository
}

func NewPlayerRepository(players []player.Player, teams *TeamRepository) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
		teams:  teams,
	}
}

func (r *PlayerRepository) ListBySeason(_ context.Context, seasonID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if p.TeamID == "" {
			continue
		}
		if teamSeason, ok := r.teams.seasonOf(p.TeamID); ok && teamSeason == seasonID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		if p := r.items[id]; p.TeamID == teamID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *PlayerRepository) SetAssignment(_ context.Context, playerID, teamID string, status player.ContractStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return fmt.Errorf("player not found: %s", playerID)
	}

	p.TeamID = teamID
	p.ContractStatus = status
	if teamID == "" {
		p.Contract = nil
	}
	r.items[playerID] = p

	return nil
}
