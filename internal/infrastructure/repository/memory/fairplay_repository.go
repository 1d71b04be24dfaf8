package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
)

type FairPlayRepository struct {
	mu     sync.RWMutex
	items  map[string]fairplay.Record
	orders []string
}

func NewFairPlayRepository(records []fairplay.Record) *FairPlayRepository {
	items := make(map[string]fairplay.Record, len(records))
	orders := make([]string, 0, len(records))

	for _, rec := range records {
		items[rec.ID] = rec
		orders = append(orders, rec.ID)
	}

	return &FairPlayRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FairPlayRepository) ListBySeason(_ context.Context, seasonID string) ([]fairplay.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fairplay.Record, 0, len(r.orders))
	for _, id := range r.orders {
		if rec := r.items[id]; rec.SeasonID == seasonID {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (r *FairPlayRepository) ListByTeam(_ context.Context, teamID string) ([]fairplay.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fairplay.Record, 0, len(r.orders))
	for _, id := range r.orders {
		if rec := r.items[id]; rec.TeamID == teamID {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (r *FairPlayRepository) GetByID(_ context.Context, recordID string) (fairplay.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[recordID]
	if !ok {
		return fairplay.Record{}, false, nil
	}

	return rec, true, nil
}

func (r *FairPlayRepository) Upsert(_ context.Context, item fairplay.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}
