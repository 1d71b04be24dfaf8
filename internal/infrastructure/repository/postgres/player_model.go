package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	Position         string         `db:"position"`
	TeamID           sql.NullString `db:"team_id"`
	ContractStatus   string         `db:"contract_status"`
	ContractTeamID   sql.NullString `db:"contract_team_id"`
	ContractSeasonID sql.NullString `db:"contract_season_id"`
	ContractStartsAt sql.NullTime   `db:"contract_starts_at"`
	ContractEndsAt   sql.NullTime   `db:"contract_ends_at"`
	ContractValue    sql.NullInt64  `db:"contract_value"`
	PhotoURL         string         `db:"photo_url"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
