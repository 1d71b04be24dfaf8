package season

import (
	"fmt"
	"time"
)

// Season is one competition cycle. At most one season is active at a time;
// enforcing that is the storage layer's job, not this model's.
type Season struct {
	ID       string
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
	IsActive bool
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if !s.EndsAt.IsZero() && s.EndsAt.Before(s.StartsAt) {
		return fmt.Errorf("season end date is before start date")
	}

	return nil
}
