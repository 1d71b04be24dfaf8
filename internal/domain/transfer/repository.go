package transfer

import "context"

// Repository is append-only by contract: there is no update or delete.
type Repository interface {
	Append(ctx context.Context, item Transfer) error
	ListByPlayer(ctx context.Context, playerID string) ([]Transfer, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Transfer, error)
	CountByPlayer(ctx context.Context, playerID string) (int, error)
}
