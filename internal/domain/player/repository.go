package player

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Upsert(ctx context.Context, item Player) error
	// SetAssignment rewrites the team reference and contract status together
	// so a transfer never leaves the two fields disagreeing.
	SetAssignment(ctx context.Context, playerID, teamID string, status ContractStatus) error
}
