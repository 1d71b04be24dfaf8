package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

// Match is one fixture between two teams of the same season.
type Match struct {
	ID         string
	SeasonID   string
	HomeTeamID string
	AwayTeamID string
	Status     string
	HomeScore  *int
	AwayScore  *int
	KickoffAt  time.Time
	Venue      string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsCompletedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCompleted, "FINISHED", "FT":
		return true
	default:
		return false
	}
}

// HasFinalScore reports whether both scores are recorded and non-negative.
// A completed match without a final score is a partially written record and
// must never count anywhere.
func (m Match) HasFinalScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil && *m.HomeScore >= 0 && *m.AwayScore >= 0
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.SeasonID == "" {
		return fmt.Errorf("match season id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires both team ids")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}
	switch NormalizeStatus(m.Status) {
	case StatusScheduled, StatusLive, StatusCompleted:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if IsCompletedStatus(m.Status) && !m.HasFinalScore() {
		return fmt.Errorf("completed match requires both scores")
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		return fmt.Errorf("home score cannot be negative")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		return fmt.Errorf("away score cannot be negative")
	}

	return nil
}
