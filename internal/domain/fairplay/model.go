package fairplay

import "fmt"

// Action is the disciplinary category a record was booked under.
type Action string

const (
	ActionYellowCard    Action = "yellow_card"
	ActionRedCard       Action = "red_card"
	ActionMisconduct    Action = "misconduct"
	ActionCrowdTrouble  Action = "crowd_trouble"
	ActionAdminSanction Action = "admin_sanction"
)

var AllActions = map[Action]struct{}{
	ActionYellowCard:    {},
	ActionRedCard:       {},
	ActionMisconduct:    {},
	ActionCrowdTrouble:  {},
	ActionAdminSanction: {},
}

type Status string

const (
	StatusActive     Status = "active"
	StatusAppealed   Status = "appealed"
	StatusOverturned Status = "overturned"
	StatusReduced    Status = "reduced"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:     {},
	StatusAppealed:   {},
	StatusOverturned: {},
	StatusReduced:    {},
}

// Record is one disciplinary entry against a team. PlayerID is empty for
// team-level penalties. Points accumulate against the team: more is worse.
type Record struct {
	ID       string
	SeasonID string
	TeamID   string
	PlayerID string
	Action   Action
	Points   int
	Status   Status
}

// EffectivePoints is the value a record contributes to the team's fair-play
// total. Reduced records count at their stored points value; the schema has
// no separate reduced-value column.
func (r Record) EffectivePoints() int {
	switch r.Status {
	case StatusActive, StatusReduced:
		return r.Points
	default:
		return 0
	}
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("fair-play record id is required")
	}
	if r.SeasonID == "" {
		return fmt.Errorf("fair-play record season id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("fair-play record team id is required")
	}
	if _, ok := AllActions[r.Action]; !ok {
		return fmt.Errorf("invalid fair-play action: %s", r.Action)
	}
	if _, ok := AllStatuses[r.Status]; !ok {
		return fmt.Errorf("invalid fair-play status: %s", r.Status)
	}
	if r.Points <= 0 {
		return fmt.Errorf("fair-play points must be greater than zero")
	}

	return nil
}
