package fairplay

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Record, error)
	ListByTeam(ctx context.Context, teamID string) ([]Record, error)
	GetByID(ctx context.Context, recordID string) (Record, bool, error)
	Upsert(ctx context.Context, item Record) error
}
