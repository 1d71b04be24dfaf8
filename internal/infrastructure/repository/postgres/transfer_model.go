package postgres

import (
	"database/sql"
	"time"
)

type transferTableModel struct {
	ID            string         `db:"id"`
	PlayerID      string         `db:"player_id"`
	FromTeamID    sql.NullString `db:"from_team_id"`
	ToTeamID      sql.NullString `db:"to_team_id"`
	SeasonID      string         `db:"season_id"`
	Type          string         `db:"type"`
	TransferredAt time.Time      `db:"transferred_at"`
	Fee           int64          `db:"fee"`
	Notes         string         `db:"notes"`
	ReturnDate    sql.NullTime   `db:"return_date"`
	CreatedAt     time.Time      `db:"created_at"`
}
