package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
)

// TransferRepository is an append-only log kept in insertion order.
type TransferRepository struct {
	mu    sync.RWMutex
	items []transfer.Transfer
}

func NewTransferRepository(transfers []transfer.Transfer) *TransferRepository {
	items := make([]transfer.Transfer, len(transfers))
	copy(items, transfers)

	return &TransferRepository{items: items}
}

func (r *TransferRepository) Append(_ context.Context, item transfer.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)

	return nil
}

func (r *TransferRepository) ListByPlayer(_ context.Context, playerID string) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transfer.Transfer, 0, len(r.items))
	for _, t := range r.items {
		if t.PlayerID == playerID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TransferRepository) ListBySeason(_ context.Context, seasonID string) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transfer.Transfer, 0, len(r.items))
	for _, t := range r.items {
		if t.SeasonID == seasonID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TransferRepository) CountByPlayer(_ context.Context, playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, t := range r.items {
		if t.PlayerID == playerID {
			count++
		}
	}

	return count, nil
}
