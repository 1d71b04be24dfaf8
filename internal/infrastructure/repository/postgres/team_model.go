package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID             string         `db:"id"`
	SeasonID       string         `db:"season_id"`
	Name           string         `db:"name"`
	Short          string         `db:"short"`
	LogoURL        string         `db:"logo_url"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}
