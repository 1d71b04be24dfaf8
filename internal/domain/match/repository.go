package match

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Upsert(ctx context.Context, item Match) error
}
