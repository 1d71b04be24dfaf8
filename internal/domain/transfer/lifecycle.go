package transfer

import (
	"errors"
	"fmt"
	"time"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
)

// ErrSeasonalLockActive rejects a move for a player whose seasonal contract
// still binds them: the contracted season has not ended yet. This is a
// business rejection, not a system failure; callers surface it as a
// validation message.
var ErrSeasonalLockActive = errors.New("seasonal contract locked until season end")

const (
	notesInitialRegistration = "initial registration"
	notesJoinedFromFreeAgent = "joined team from free agency"
	notesReleased            = "released to free agency"
	notesBetweenTeams        = "transfer between teams"
)

// MoveInput carries everything PlanMove needs. The caller resolves the
// active season and the player's prior history once per request and threads
// them through; nothing here reads storage.
type MoveInput struct {
	Player       player.Player
	NewTeamID    string
	ActiveSeason season.Season
	// HasPriorHistory is true when at least one transfer record already
	// exists for the player, which distinguishes a first-ever registration
	// from a later return from free agency.
	HasPriorHistory bool
	// AdminRelease lets an administrator force a release to free agency
	// past the seasonal lock.
	AdminRelease bool
	Fee          int64
	Now          time.Time
}

// Plan is the advisory outcome of a requested assignment change. When NoOp
// is false, Record is the transfer entry the caller must persist together
// with the player mutation; the record is returned without an ID.
type Plan struct {
	NoOp   bool
	Record Transfer
}

// PlanMove decides whether a player's team assignment may change and, when
// it may, synthesizes the audit record. Exactly one record per successful
// change; a rejection means the caller must not apply the mutation.
func PlanMove(in MoveInput) (Plan, error) {
	oldTeamID := in.Player.TeamID
	newTeamID := in.NewTeamID

	if oldTeamID == newTeamID {
		return Plan{NoOp: true}, nil
	}

	isRelease := newTeamID == ""
	if locked(in.Player, in.ActiveSeason) && !(isRelease && in.AdminRelease) {
		return Plan{}, fmt.Errorf("%w: player=%s season=%s", ErrSeasonalLockActive, in.Player.ID, in.ActiveSeason.ID)
	}

	record := Transfer{
		PlayerID:      in.Player.ID,
		FromTeamID:    oldTeamID,
		ToTeamID:      newTeamID,
		SeasonID:      in.ActiveSeason.ID,
		TransferredAt: in.Now,
		Fee:           in.Fee,
	}

	switch {
	case oldTeamID == "":
		record.Type = TypeRegistration
		if in.HasPriorHistory {
			record.Notes = notesJoinedFromFreeAgent
		} else {
			record.Notes = notesInitialRegistration
		}
	case newTeamID == "":
		record.Type = TypeRelease
		record.Notes = notesReleased
	default:
		record.Type = TypeTransfer
		record.Notes = notesBetweenTeams
	}

	return Plan{Record: record}, nil
}

// PlanLoan synthesizes a loan record. Loans are an explicit administrative
// action with a return date and succeed regardless of contract status; the
// reverse move at the end of the loan is a future scheduler's concern, not
// inferred here.
func PlanLoan(p player.Player, toTeamID string, active season.Season, returnDate, now time.Time) (Plan, error) {
	if toTeamID == "" {
		return Plan{}, fmt.Errorf("loan destination team is required")
	}
	if toTeamID == p.TeamID {
		return Plan{NoOp: true}, nil
	}

	rd := returnDate
	return Plan{
		Record: Transfer{
			PlayerID:      p.ID,
			FromTeamID:    p.TeamID,
			ToTeamID:      toTeamID,
			SeasonID:      active.ID,
			Type:          TypeLoan,
			TransferredAt: now,
			Notes:         fmt.Sprintf("on loan until %s", returnDate.Format("2006-01-02")),
			ReturnDate:    &rd,
		},
	}, nil
}

// locked reports whether the player's seasonal contract still binds them:
// the contract references the season that is currently active.
func locked(p player.Player, active season.Season) bool {
	if p.ContractStatus != player.ContractSeasonal {
		return false
	}
	if p.Contract == nil {
		return false
	}
	return active.IsActive && p.Contract.SeasonID == active.ID
}
