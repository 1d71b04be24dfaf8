package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	qb "github.com/matchdayhq/leaguedesk/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListBySeason(ctx context.Context, seasonID string) ([]player.Player, error) {
	// Contracted players belong to a season through their team.
	query := `SELECT p.* FROM players p
JOIN teams t ON t.id = p.team_id AND t.deleted_at IS NULL
WHERE t.season_id = $1
ORDER BY p.name, p.id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list players by season: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	insert := qb.InsertInto("players").
		Set("id", item.ID).
		Set("name", item.Name).
		Set("position", string(item.Position)).
		Set("team_id", stringToNullString(item.TeamID)).
		Set("contract_status", string(item.ContractStatus)).
		Set("photo_url", item.PhotoURL)

	if c := item.Contract; c != nil {
		insert = insert.
			Set("contract_team_id", stringToNullString(c.TeamID)).
			Set("contract_season_id", stringToNullString(c.SeasonID)).
			Set("contract_starts_at", sql.NullTime{Time: c.StartsAt, Valid: !c.StartsAt.IsZero()}).
			Set("contract_ends_at", timePtrToNullTime(c.EndsAt)).
			Set("contract_value", sql.NullInt64{Int64: c.Value, Valid: true})
	} else {
		insert = insert.
			Set("contract_team_id", sql.NullString{}).
			Set("contract_season_id", sql.NullString{}).
			Set("contract_starts_at", sql.NullTime{}).
			Set("contract_ends_at", sql.NullTime{}).
			Set("contract_value", sql.NullInt64{})
	}

	query, args, err := insert.Suffix(`ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    position = EXCLUDED.position,
    team_id = EXCLUDED.team_id,
    contract_status = EXCLUDED.contract_status,
    contract_team_id = EXCLUDED.contract_team_id,
    contract_season_id = EXCLUDED.contract_season_id,
    contract_starts_at = EXCLUDED.contract_starts_at,
    contract_ends_at = EXCLUDED.contract_ends_at,
    contract_value = EXCLUDED.contract_value,
    photo_url = EXCLUDED.photo_url,
    updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) SetAssignment(ctx context.Context, playerID, teamID string, status player.ContractStatus) error {
	update := qb.Update("players").
		Set("team_id", stringToNullString(teamID)).
		Set("contract_status", string(status)).
		SetExpr("updated_at", "NOW()")

	// A release tears the contract down with the assignment.
	if teamID == "" {
		update = update.
			Set("contract_team_id", sql.NullString{}).
			Set("contract_season_id", sql.NullString{}).
			Set("contract_starts_at", sql.NullTime{}).
			Set("contract_ends_at", sql.NullTime{}).
			Set("contract_value", sql.NullInt64{})
	}

	query, args, err := update.Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build set player assignment query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set player assignment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("player not found: %s", playerID)
	}

	return nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}

func playerFromRow(row playerTableModel) player.Player {
	p := player.Player{
		ID:             row.ID,
		Name:           row.Name,
		Position:       player.Position(row.Position),
		TeamID:         nullStringToString(row.TeamID),
		ContractStatus: player.ContractStatus(row.ContractStatus),
		PhotoURL:       row.PhotoURL,
	}

	if row.ContractTeamID.Valid || row.ContractSeasonID.Valid {
		p.Contract = &player.Contract{
			TeamID:   nullStringToString(row.ContractTeamID),
			SeasonID: nullStringToString(row.ContractSeasonID),
			Value:    row.ContractValue.Int64,
		}
		if row.ContractStartsAt.Valid {
			p.Contract.StartsAt = row.ContractStartsAt.Time
		}
		if row.ContractEndsAt.Valid {
			endsAt := row.ContractEndsAt.Time
			p.Contract.EndsAt = &endsAt
		}
	}

	return p
}

func timePtrToNullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
