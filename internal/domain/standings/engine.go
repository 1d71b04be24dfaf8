package standings

import (
	"sort"
	"strings"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// TeamStanding is one row of the league table.
type TeamStanding struct {
	Team           team.Team
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	FairPlayPoints int
	Points         int
	Position       int
}

// SplitValid partitions matches into the ones that count toward standings
// and the ones that do not. A match counts only when it is completed, both
// scores are recorded, and both team references resolve within the supplied
// team set. Excluded matches are returned so callers can log them; exclusion
// itself is silent by contract.
func SplitValid(teams []team.Team, matches []match.Match) (valid, excluded []match.Match) {
	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.ID] = struct{}{}
	}

	for _, m := range matches {
		if !countable(m, known) {
			excluded = append(excluded, m)
			continue
		}
		valid = append(valid, m)
	}

	return valid, excluded
}

func countable(m match.Match, known map[string]struct{}) bool {
	if !match.IsCompletedStatus(m.Status) {
		return false
	}
	if !m.HasFinalScore() {
		return false
	}
	if m.SeasonID == "" {
		return false
	}
	if _, ok := known[m.HomeTeamID]; !ok {
		return false
	}
	if _, ok := known[m.AwayTeamID]; !ok {
		return false
	}
	return true
}

// Compute derives the ranked league table for one season. It is pure: no
// I/O, no hidden state, and the result does not depend on input order.
// Every supplied team appears in the output, including teams with no valid
// matches. Positions are 1-based and strictly ordered; the tie-break chain
// is points, goal difference, goals for, goals against, head-to-head,
// fair-play points, then team name.
func Compute(teams []team.Team, matches []match.Match, records []fairplay.Record) []TeamStanding {
	valid, _ := SplitValid(teams, matches)

	rows := make(map[string]*TeamStanding, len(teams))
	for _, t := range teams {
		t := t
		rows[t.ID] = &TeamStanding{Team: t}
	}

	for _, m := range valid {
		applyResult(rows[m.HomeTeamID], *m.HomeScore, *m.AwayScore)
		applyResult(rows[m.AwayTeamID], *m.AwayScore, *m.HomeScore)
	}

	for _, r := range records {
		if row, ok := rows[r.TeamID]; ok {
			row.FairPlayPoints += r.EffectivePoints()
		}
	}

	table := make([]TeamStanding, 0, len(teams))
	for _, t := range teams {
		table = append(table, *rows[t.ID])
	}

	h2h := headToHeadWins(valid)
	sort.SliceStable(table, func(i, j int) bool {
		return ranksAbove(table[i], table[j], h2h)
	})

	for i := range table {
		table[i].Position = i + 1
	}

	return table
}

func applyResult(row *TeamStanding, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst

	switch {
	case scored > conceded:
		row.Wins++
		row.Points += pointsPerWin
	case scored == conceded:
		row.Draws++
		row.Points += pointsPerDraw
	default:
		row.Losses++
	}
}

// headToHeadWins counts, per ordered team pair, how many valid direct
// meetings the first team won. Drawn meetings count for neither side.
func headToHeadWins(valid []match.Match) map[[2]string]int {
	wins := make(map[[2]string]int)
	for _, m := range valid {
		switch {
		case *m.HomeScore > *m.AwayScore:
			wins[[2]string{m.HomeTeamID, m.AwayTeamID}]++
		case *m.AwayScore > *m.HomeScore:
			wins[[2]string{m.AwayTeamID, m.HomeTeamID}]++
		}
	}
	return wins
}

func ranksAbove(a, b TeamStanding, h2h map[[2]string]int) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.GoalsAgainst != b.GoalsAgainst {
		return a.GoalsAgainst < b.GoalsAgainst
	}

	// Head-to-head between the exact two tied teams. A drawn or missing
	// direct meeting falls through to the next criterion.
	aWins := h2h[[2]string{a.Team.ID, b.Team.ID}]
	bWins := h2h[[2]string{b.Team.ID, a.Team.ID}]
	if aWins != bWins {
		return aWins > bWins
	}

	if a.FairPlayPoints != b.FairPlayPoints {
		return a.FairPlayPoints < b.FairPlayPoints
	}

	aName := strings.ToLower(a.Team.Name)
	bName := strings.ToLower(b.Team.Name)
	if aName != bName {
		return aName < bName
	}

	// Identical names should not happen; the ID keeps the order total.
	return a.Team.ID < b.Team.ID
}
