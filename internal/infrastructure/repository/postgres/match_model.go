package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         string         `db:"id"`
	SeasonID   string         `db:"season_id"`
	HomeTeamID string         `db:"home_team_id"`
	AwayTeamID string         `db:"away_team_id"`
	Status     string         `db:"status"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	Venue      sql.NullString `db:"venue"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
