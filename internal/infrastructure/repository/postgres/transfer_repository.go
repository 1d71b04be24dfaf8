package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
	qb "github.com/matchdayhq/leaguedesk/internal/platform/querybuilder"
)

// TransferRepository only ever inserts: the transfers table is the audit
// trail and rows are never rewritten.
type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Append(ctx context.Context, item transfer.Transfer) error {
	query, args, err := qb.InsertInto("transfers").
		Set("id", item.ID).
		Set("player_id", item.PlayerID).
		Set("from_team_id", stringToNullString(item.FromTeamID)).
		Set("to_team_id", stringToNullString(item.ToTeamID)).
		Set("season_id", item.SeasonID).
		Set("type", string(item.Type)).
		Set("transferred_at", item.TransferredAt).
		Set("fee", item.Fee).
		Set("notes", item.Notes).
		Set("return_date", timePtrToNullTime(item.ReturnDate)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build append transfer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append transfer: %w", err)
	}

	return nil
}

func (r *TransferRepository) ListByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	query, args, err := qb.Select("*").From("transfers").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("transferred_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transfers by player query: %w", err)
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transfers by player: %w", err)
	}

	return transfersFromRows(rows), nil
}

func (r *TransferRepository) ListBySeason(ctx context.Context, seasonID string) ([]transfer.Transfer, error) {
	query, args, err := qb.Select("*").From("transfers").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("transferred_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transfers by season query: %w", err)
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transfers by season: %w", err)
	}

	return transfersFromRows(rows), nil
}

func (r *TransferRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("transfers").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count transfers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count transfers: %w", err)
	}

	return count, nil
}

func transfersFromRows(rows []transferTableModel) []transfer.Transfer {
	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		item := transfer.Transfer{
			ID:            row.ID,
			PlayerID:      row.PlayerID,
			FromTeamID:    nullStringToString(row.FromTeamID),
			ToTeamID:      nullStringToString(row.ToTeamID),
			SeasonID:      row.SeasonID,
			Type:          transfer.Type(row.Type),
			TransferredAt: row.TransferredAt,
			Fee:           row.Fee,
			Notes:         row.Notes,
		}
		if row.ReturnDate.Valid {
			returnDate := row.ReturnDate.Time
			item.ReturnDate = &returnDate
		}
		out = append(out, item)
	}
	return out
}
