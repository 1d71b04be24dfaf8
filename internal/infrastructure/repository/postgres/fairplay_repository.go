package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	qb "github.com/matchdayhq/leaguedesk/internal/platform/querybuilder"
)

type FairPlayRepository struct {
	db *sqlx.DB
}

func NewFairPlayRepository(db *sqlx.DB) *FairPlayRepository {
	return &FairPlayRepository{db: db}
}

func (r *FairPlayRepository) ListBySeason(ctx context.Context, seasonID string) ([]fairplay.Record, error) {
	query, args, err := qb.Select("*").From("fair_play_records").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fair-play records query: %w", err)
	}

	var rows []fairPlayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fair-play records: %w", err)
	}

	return fairPlayFromRows(rows), nil
}

func (r *FairPlayRepository) ListByTeam(ctx context.Context, teamID string) ([]fairplay.Record, error) {
	query, args, err := qb.Select("*").From("fair_play_records").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fair-play records by team query: %w", err)
	}

	var rows []fairPlayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fair-play records by team: %w", err)
	}

	return fairPlayFromRows(rows), nil
}

func (r *FairPlayRepository) GetByID(ctx context.Context, recordID string) (fairplay.Record, bool, error) {
	query, args, err := qb.Select("*").From("fair_play_records").
		Where(qb.Eq("id", recordID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fairplay.Record{}, false, fmt.Errorf("build get fair-play record query: %w", err)
	}

	var row fairPlayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fairplay.Record{}, false, nil
		}
		return fairplay.Record{}, false, fmt.Errorf("get fair-play record: %w", err)
	}

	return fairPlayFromRow(row), true, nil
}

func (r *FairPlayRepository) Upsert(ctx context.Context, item fairplay.Record) error {
	query, args, err := qb.InsertInto("fair_play_records").
		Set("id", item.ID).
		Set("season_id", item.SeasonID).
		Set("team_id", item.TeamID).
		Set("player_id", stringToNullString(item.PlayerID)).
		Set("action", string(item.Action)).
		Set("points", item.Points).
		Set("status", string(item.Status)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
    season_id = EXCLUDED.season_id,
    team_id = EXCLUDED.team_id,
    player_id = EXCLUDED.player_id,
    action = EXCLUDED.action,
    points = EXCLUDED.points,
    status = EXCLUDED.status,
    updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert fair-play record query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fair-play record: %w", err)
	}

	return nil
}

func fairPlayFromRows(rows []fairPlayTableModel) []fairplay.Record {
	out := make([]fairplay.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, fairPlayFromRow(row))
	}
	return out
}

func fairPlayFromRow(row fairPlayTableModel) fairplay.Record {
	return fairplay.Record{
		ID:       row.ID,
		SeasonID: row.SeasonID,
		TeamID:   row.TeamID,
		PlayerID: nullStringToString(row.PlayerID),
		Action:   fairplay.Action(row.Action),
		Points:   row.Points,
		Status:   fairplay.Status(row.Status),
	}
}
