package postgres

import "time"

type seasonTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
