package postgres

import (
	"database/sql"
	"time"
)

type fairPlayTableModel struct {
	ID        string         `db:"id"`
	SeasonID  string         `db:"season_id"`
	TeamID    string         `db:"team_id"`
	PlayerID  sql.NullString `db:"player_id"`
	Action    string         `db:"action"`
	Points    int            `db:"points"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
