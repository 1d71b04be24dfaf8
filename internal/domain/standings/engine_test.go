package standings

import (
	"reflect"
	"testing"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
)

const seasonID = "season-2026"

func seasonTeams(ids ...string) []team.Team {
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, team.Team{ID: id, SeasonID: seasonID, Name: "Club " + id})
	}
	return out
}

func completed(id, home, away string, homeScore, awayScore int) match.Match {
	hs, as := homeScore, awayScore
	return match.Match{
		ID:         id,
		SeasonID:   seasonID,
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     match.StatusCompleted,
		HomeScore:  &hs,
		AwayScore:  &as,
	}
}

func rowByTeam(t *testing.T, table []TeamStanding, teamID string) TeamStanding {
	t.Helper()
	for _, row := range table {
		if row.Team.ID == teamID {
			return row
		}
	}
	t.Fatalf("team %s missing from table", teamID)
	return TeamStanding{}
}

func TestCompute_AggregatesAndRanks(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b", "c")
	matches := []match.Match{
		completed("m1", "a", "b", 2, 1),
		completed("m2", "a", "c", 1, 1),
		completed("m3", "b", "c", 0, 3),
	}

	table := Compute(teams, matches, nil)
	if len(table) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table))
	}

	if table[0].Team.ID != "c" || table[0].Points != 4 || table[0].Position != 1 {
		t.Fatalf("unexpected rank 1 row: %+v", table[0])
	}
	if table[1].Team.ID != "a" || table[1].Points != 4 || table[1].Position != 2 {
		t.Fatalf("unexpected rank 2 row: %+v", table[1])
	}
	if table[2].Team.ID != "b" || table[2].Points != 0 || table[2].Position != 3 {
		t.Fatalf("unexpected rank 3 row: %+v", table[2])
	}

	a := rowByTeam(t, table, "a")
	if a.Played != 2 || a.Wins != 1 || a.Draws != 1 || a.Losses != 0 || a.GoalsFor != 3 || a.GoalsAgainst != 2 || a.GoalDifference != 1 {
		t.Fatalf("unexpected aggregation for a: %+v", a)
	}
}

func TestCompute_ConservationProperties(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b", "c", "d")
	matches := []match.Match{
		completed("m1", "a", "b", 3, 0),
		completed("m2", "c", "d", 2, 2),
		completed("m3", "a", "c", 1, 2),
		completed("m4", "b", "d", 0, 0),
		completed("m5", "a", "d", 4, 1),
	}
	drawn := 2

	table := Compute(teams, matches, nil)

	var wins, losses, draws, gf, ga int
	for _, row := range table {
		wins += row.Wins
		losses += row.Losses
		draws += row.Draws
		gf += row.GoalsFor
		ga += row.GoalsAgainst
	}

	if gf != ga {
		t.Fatalf("goals for (%d) must equal goals against (%d)", gf, ga)
	}
	if decisive := len(matches) - drawn; wins != decisive || losses != decisive {
		t.Fatalf("wins=%d losses=%d, expected %d each", wins, losses, decisive)
	}
	if draws != 2*drawn {
		t.Fatalf("draws=%d, expected %d", draws, 2*drawn)
	}
}

func TestCompute_TieBreakGoalsFor(t *testing.T) {
	t.Parallel()

	// a and b: equal points and goal difference, a scored one goal more.
	teams := seasonTeams("b", "a", "x", "y")
	matches := []match.Match{
		completed("m1", "a", "x", 3, 1),
		completed("m2", "b", "y", 2, 0),
	}

	table := Compute(teams, matches, nil)
	if table[0].Team.ID != "a" || table[1].Team.ID != "b" {
		t.Fatalf("expected a above b on goals for, got %s then %s", table[0].Team.ID, table[1].Team.ID)
	}
}

func TestCompute_HeadToHeadBeatsNameOrder(t *testing.T) {
	t.Parallel()

	// a and z level on points/GD/GF/GA; z won the direct meeting, so z must
	// rank above a despite sorting after it alphabetically.
	teams := seasonTeams("a", "z", "x")
	matches := []match.Match{
		completed("m1", "z", "a", 2, 1),
		completed("m2", "a", "x", 2, 1),
		completed("m3", "x", "z", 1, 2),
		completed("m4", "x", "a", 1, 2),
		completed("m5", "z", "x", 1, 2),
	}

	table := Compute(teams, matches, nil)
	if table[0].Team.ID != "z" || table[1].Team.ID != "a" {
		t.Fatalf("expected z above a on head-to-head, got %s then %s", table[0].Team.ID, table[1].Team.ID)
	}
}

func TestCompute_DrawnHeadToHeadFallsThroughToFairPlay(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b")
	matches := []match.Match{
		completed("m1", "a", "b", 1, 1),
	}
	records := []fairplay.Record{
		{ID: "fp1", SeasonID: seasonID, TeamID: "b", Action: fairplay.ActionYellowCard, Points: 1, Status: fairplay.StatusActive},
		{ID: "fp2", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionRedCard, Points: 3, Status: fairplay.StatusActive},
	}

	table := Compute(teams, matches, records)
	if table[0].Team.ID != "b" {
		t.Fatalf("expected b first on fewer fair-play points, got %+v", table[0])
	}
	if table[0].FairPlayPoints != 1 || table[1].FairPlayPoints != 3 {
		t.Fatalf("unexpected fair-play totals: %+v", table)
	}
}

func TestCompute_FairPlayStatusPolicy(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a")
	records := []fairplay.Record{
		{ID: "fp1", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionYellowCard, Points: 1, Status: fairplay.StatusActive},
		{ID: "fp2", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionRedCard, Points: 3, Status: fairplay.StatusReduced},
		{ID: "fp3", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionMisconduct, Points: 5, Status: fairplay.StatusOverturned},
		{ID: "fp4", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionCrowdTrouble, Points: 7, Status: fairplay.StatusAppealed},
	}

	table := Compute(teams, nil, records)
	if got := table[0].FairPlayPoints; got != 4 {
		t.Fatalf("expected active+reduced=4 fair-play points, got %d", got)
	}
}

func TestSplitValid_ExcludesPartialAndForeignMatches(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b")
	two := 2
	cases := []struct {
		name string
		m    match.Match
	}{
		{
			name: "completed without scores",
			m:    match.Match{ID: "m1", SeasonID: seasonID, HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusCompleted},
		},
		{
			name: "completed with one score",
			m:    match.Match{ID: "m2", SeasonID: seasonID, HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusCompleted, HomeScore: &two},
		},
		{
			name: "scheduled",
			m:    match.Match{ID: "m3", SeasonID: seasonID, HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusScheduled, HomeScore: &two, AwayScore: &two},
		},
		{
			name: "live",
			m:    match.Match{ID: "m4", SeasonID: seasonID, HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusLive, HomeScore: &two, AwayScore: &two},
		},
		{
			name: "unknown away team",
			m:    completed("m5", "a", "ghost", 2, 0),
		},
		{
			name: "missing season",
			m: match.Match{ID: "m6", HomeTeamID: "a", AwayTeamID: "b",
				Status: match.StatusCompleted, HomeScore: &two, AwayScore: &two},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valid, excluded := SplitValid(teams, []match.Match{tc.m})
			if len(valid) != 0 || len(excluded) != 1 {
				t.Fatalf("expected match excluded, valid=%d excluded=%d", len(valid), len(excluded))
			}

			table := Compute(teams, []match.Match{tc.m}, nil)
			for _, row := range table {
				if row.Played != 0 || row.Points != 0 || row.GoalsFor != 0 {
					t.Fatalf("excluded match leaked into stats: %+v", row)
				}
			}
		})
	}
}

func TestCompute_UnplayedTeamsIncluded(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b", "idle")
	matches := []match.Match{completed("m1", "a", "b", 1, 0)}

	table := Compute(teams, matches, nil)
	idle := rowByTeam(t, table, "idle")
	// Zero goal difference places the idle team above the beaten one; an
	// unplayed team is ranked by the same chain, never excluded.
	if idle.Played != 0 || idle.Points != 0 || idle.Position != 2 {
		t.Fatalf("unexpected row for unplayed team: %+v", idle)
	}
	if table[2].Team.ID != "b" {
		t.Fatalf("expected beaten team last, got %+v", table[2])
	}
}

func TestCompute_DeterministicAndOrderIndependent(t *testing.T) {
	t.Parallel()

	teams := seasonTeams("a", "b", "c", "d")
	matches := []match.Match{
		completed("m1", "a", "b", 2, 2),
		completed("m2", "c", "d", 1, 0),
		completed("m3", "b", "c", 3, 1),
		completed("m4", "d", "a", 0, 0),
	}
	records := []fairplay.Record{
		{ID: "fp1", SeasonID: seasonID, TeamID: "a", Action: fairplay.ActionYellowCard, Points: 2, Status: fairplay.StatusActive},
	}

	first := Compute(teams, matches, records)
	second := Compute(teams, matches, records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated computation differs:\n%+v\n%+v", first, second)
	}

	reversedTeams := []team.Team{teams[3], teams[2], teams[1], teams[0]}
	reversedMatches := []match.Match{matches[3], matches[2], matches[1], matches[0]}
	shuffled := Compute(reversedTeams, reversedMatches, records)
	if !reflect.DeepEqual(first, shuffled) {
		t.Fatalf("result depends on input order:\n%+v\n%+v", first, shuffled)
	}
}
