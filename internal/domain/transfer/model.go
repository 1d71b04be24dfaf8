package transfer

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeRegistration Type = "registration"
	TypeTransfer     Type = "transfer"
	TypeLoan         Type = "loan"
	TypeRelease      Type = "release"
)

var AllTypes = map[Type]struct{}{
	TypeRegistration: {},
	TypeTransfer:     {},
	TypeLoan:         {},
	TypeRelease:      {},
}

// Transfer is one entry in a player's movement history. Records are
// append-only: once written they are never updated or deleted, even if the
// player record itself is removed later.
type Transfer struct {
	ID            string
	PlayerID      string
	FromTeamID    string
	ToTeamID      string
	SeasonID      string
	Type          Type
	TransferredAt time.Time
	Fee           int64
	Notes         string
	ReturnDate    *time.Time
}

func (t Transfer) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transfer id is required")
	}
	if t.PlayerID == "" {
		return fmt.Errorf("transfer player id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("transfer season id is required")
	}
	if _, ok := AllTypes[t.Type]; !ok {
		return fmt.Errorf("invalid transfer type: %s", t.Type)
	}
	if t.FromTeamID == "" && t.ToTeamID == "" {
		return fmt.Errorf("transfer requires at least one team reference")
	}
	if t.Type == TypeLoan && t.ToTeamID == "" {
		return fmt.Errorf("loan requires a destination team")
	}
	if t.Fee < 0 {
		return fmt.Errorf("transfer fee cannot be negative")
	}

	return nil
}
