package transfer

import (
	"errors"
	"testing"
	"time"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
)

var (
	activeSeason = season.Season{ID: "s-2026", Name: "2026", IsActive: true}
	endedSeason  = season.Season{ID: "s-2025", Name: "2025", IsActive: false}
	planNow      = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
)

func seasonalPlayer(teamID, contractSeasonID string) player.Player {
	return player.Player{
		ID:             "p1",
		Name:           "Sam Keeper",
		Position:       player.PositionGoalkeeper,
		TeamID:         teamID,
		ContractStatus: player.ContractSeasonal,
		Contract: &player.Contract{
			TeamID:   teamID,
			SeasonID: contractSeasonID,
			StartsAt: planNow.AddDate(0, -2, 0),
		},
	}
}

func TestPlanMove(t *testing.T) {
	t.Parallel()

	freeAgent := player.Player{
		ID:             "p2",
		Name:           "Alex Free",
		Position:       player.PositionOutfield,
		ContractStatus: player.ContractFreeAgent,
	}
	normal := player.Player{
		ID:             "p3",
		Name:           "Nora Mid",
		Position:       player.PositionOutfield,
		TeamID:         "team-a",
		ContractStatus: player.ContractNormal,
	}

	tests := []struct {
		name      string
		input     MoveInput
		wantNoOp  bool
		wantErr   error
		wantType  Type
		wantFrom  string
		wantTo    string
		wantNotes string
	}{
		{
			name: "seasonal lock rejects mid-season move",
			input: MoveInput{
				Player:       seasonalPlayer("team-a", activeSeason.ID),
				NewTeamID:    "team-b",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantErr: ErrSeasonalLockActive,
		},
		{
			name: "seasonal lock lifts once contracted season ends",
			input: MoveInput{
				Player:       seasonalPlayer("team-a", endedSeason.ID),
				NewTeamID:    "team-b",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantType:  TypeTransfer,
			wantFrom:  "team-a",
			wantTo:    "team-b",
			wantNotes: "transfer between teams",
		},
		{
			name: "first registration of a free agent",
			input: MoveInput{
				Player:       freeAgent,
				NewTeamID:    "team-c",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantType:  TypeRegistration,
			wantFrom:  "",
			wantTo:    "team-c",
			wantNotes: "initial registration",
		},
		{
			name: "free agent rejoining after prior history",
			input: MoveInput{
				Player:          freeAgent,
				NewTeamID:       "team-c",
				ActiveSeason:    activeSeason,
				HasPriorHistory: true,
				Now:             planNow,
			},
			wantType:  TypeRegistration,
			wantTo:    "team-c",
			wantNotes: "joined team from free agency",
		},
		{
			name: "release to free agency",
			input: MoveInput{
				Player:       normal,
				NewTeamID:    "",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantType:  TypeRelease,
			wantFrom:  "team-a",
			wantTo:    "",
			wantNotes: "released to free agency",
		},
		{
			name: "admin release overrides the seasonal lock",
			input: MoveInput{
				Player:       seasonalPlayer("team-a", activeSeason.ID),
				NewTeamID:    "",
				ActiveSeason: activeSeason,
				AdminRelease: true,
				Now:          planNow,
			},
			wantType:  TypeRelease,
			wantFrom:  "team-a",
			wantNotes: "released to free agency",
		},
		{
			name: "admin override does not unlock a move to another team",
			input: MoveInput{
				Player:       seasonalPlayer("team-a", activeSeason.ID),
				NewTeamID:    "team-b",
				ActiveSeason: activeSeason,
				AdminRelease: true,
				Now:          planNow,
			},
			wantErr: ErrSeasonalLockActive,
		},
		{
			name: "same team is a no-op",
			input: MoveInput{
				Player:       normal,
				NewTeamID:    "team-a",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantNoOp: true,
		},
		{
			name: "free agent to no team is a no-op",
			input: MoveInput{
				Player:       freeAgent,
				NewTeamID:    "",
				ActiveSeason: activeSeason,
				Now:          planNow,
			},
			wantNoOp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanMove(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if plan.Record.Type != "" {
					t.Fatalf("rejected move must not synthesize a record: %+v", plan.Record)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantNoOp {
				if !plan.NoOp {
					t.Fatalf("expected no-op, got %+v", plan)
				}
				if plan.Record.Type != "" {
					t.Fatalf("no-op must not synthesize a record: %+v", plan.Record)
				}
				return
			}

			rec := plan.Record
			if plan.NoOp {
				t.Fatalf("unexpected no-op for %+v", tt.input)
			}
			if rec.Type != tt.wantType || rec.FromTeamID != tt.wantFrom || rec.ToTeamID != tt.wantTo {
				t.Fatalf("unexpected record %+v", rec)
			}
			if rec.Notes != tt.wantNotes {
				t.Fatalf("unexpected notes %q, want %q", rec.Notes, tt.wantNotes)
			}
			if rec.SeasonID != tt.input.ActiveSeason.ID {
				t.Fatalf("record must carry the active season, got %q", rec.SeasonID)
			}
			if !rec.TransferredAt.Equal(planNow) {
				t.Fatalf("record must carry the supplied clock, got %v", rec.TransferredAt)
			}
		})
	}
}

func TestPlanMove_RepeatedRejectionThenSuccess(t *testing.T) {
	t.Parallel()

	p := seasonalPlayer("team-a", activeSeason.ID)

	// While the contracted season runs the move is rejected.
	_, err := PlanMove(MoveInput{Player: p, NewTeamID: "team-b", ActiveSeason: activeSeason, Now: planNow})
	if !errors.Is(err, ErrSeasonalLockActive) {
		t.Fatalf("expected seasonal lock, got %v", err)
	}

	// The identical request succeeds once the season flag flips.
	ended := activeSeason
	ended.IsActive = false
	plan, err := PlanMove(MoveInput{Player: p, NewTeamID: "team-b", ActiveSeason: ended, Now: planNow})
	if err != nil {
		t.Fatalf("unexpected error after season end: %v", err)
	}
	if plan.Record.Type != TypeTransfer || plan.Record.FromTeamID != "team-a" || plan.Record.ToTeamID != "team-b" {
		t.Fatalf("unexpected record after season end: %+v", plan.Record)
	}
}

func TestPlanLoan(t *testing.T) {
	t.Parallel()

	p := seasonalPlayer("team-a", activeSeason.ID)
	returnDate := planNow.AddDate(0, 4, 0)

	plan, err := PlanLoan(p, "team-b", activeSeason, returnDate, planNow)
	if err != nil {
		t.Fatalf("loan must succeed regardless of contract status: %v", err)
	}
	rec := plan.Record
	if rec.Type != TypeLoan || rec.FromTeamID != "team-a" || rec.ToTeamID != "team-b" {
		t.Fatalf("unexpected loan record: %+v", rec)
	}
	if rec.ReturnDate == nil || !rec.ReturnDate.Equal(returnDate) {
		t.Fatalf("loan record must carry the return date: %+v", rec)
	}

	if _, err := PlanLoan(p, "", activeSeason, returnDate, planNow); err == nil {
		t.Fatal("expected error for missing loan destination")
	}

	samePlan, err := PlanLoan(p, "team-a", activeSeason, returnDate, planNow)
	if err != nil || !samePlan.NoOp {
		t.Fatalf("loan to the current team should be a no-op, got %+v err=%v", samePlan, err)
	}
}
