package memory

import (
	"time"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
)

const (
	SeasonIDCurrent  = "season-2026"
	SeasonIDPrevious = "season-2025"
)

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:       SeasonIDPrevious,
			Name:     "2025 Season",
			StartsAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			IsActive: false,
		},
		{
			ID:       SeasonIDCurrent,
			Name:     "2026 Season",
			StartsAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
			IsActive: true,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-harbour", SeasonID: SeasonIDCurrent, Name: "Harbour City FC", Short: "HAR", PrimaryColor: "#0044aa"},
		{ID: "team-northside", SeasonID: SeasonIDCurrent, Name: "Northside Rovers", Short: "NOR", PrimaryColor: "#cc2222"},
		{ID: "team-eastfield", SeasonID: SeasonIDCurrent, Name: "Eastfield United", Short: "EAS", PrimaryColor: "#118833"},
		{ID: "team-westgate", SeasonID: SeasonIDCurrent, Name: "Westgate Athletic", Short: "WES", PrimaryColor: "#886600"},
	}
}

func SeedPlayers() []player.Player {
	contractEnd := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)

	return []player.Player{
		{ID: "player-keeper-01", Name: "Devon Marsh", Position: player.PositionGoalkeeper, TeamID: "team-harbour", ContractStatus: player.ContractNormal},
		{ID: "player-out-01", Name: "Ilya Petrenko", Position: player.PositionOutfield, TeamID: "team-harbour", ContractStatus: player.ContractNormal},
		{
			ID:             "player-out-02",
			Name:           "Sacha Moreau",
			Position:       player.PositionOutfield,
			TeamID:         "team-northside",
			ContractStatus: player.ContractSeasonal,
			Contract: &player.Contract{
				TeamID:   "team-northside",
				SeasonID: SeasonIDCurrent,
				StartsAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				EndsAt:   &contractEnd,
				Value:    120_000,
			},
		},
		{ID: "player-out-03", Name: "Tomas Lindqvist", Position: player.PositionOutfield, TeamID: "team-eastfield", ContractStatus: player.ContractNormal},
		{ID: "player-free-01", Name: "Ade Okafor", Position: player.PositionOutfield, ContractStatus: player.ContractFreeAgent},
	}
}

func SeedMatches() []match.Match {
	score := func(v int) *int { return &v }

	return []match.Match{
		{
			ID:         "match-r1-01",
			SeasonID:   SeasonIDCurrent,
			HomeTeamID: "team-harbour",
			AwayTeamID: "team-northside",
			Status:     match.StatusCompleted,
			HomeScore:  score(2),
			AwayScore:  score(1),
			KickoffAt:  time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC),
			Venue:      "Harbour Park",
		},
		{
			ID:         "match-r1-02",
			SeasonID:   SeasonIDCurrent,
			HomeTeamID: "team-eastfield",
			AwayTeamID: "team-westgate",
			Status:     match.StatusCompleted,
			HomeScore:  score(0),
			AwayScore:  score(0),
			KickoffAt:  time.Date(2026, 3, 7, 17, 0, 0, 0, time.UTC),
			Venue:      "Eastfield Grounds",
		},
		{
			ID:         "match-r2-01",
			SeasonID:   SeasonIDCurrent,
			HomeTeamID: "team-westgate",
			AwayTeamID: "team-harbour",
			Status:     match.StatusScheduled,
			KickoffAt:  time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			Venue:      "Westgate Arena",
		},
	}
}

func SeedFairPlayRecords() []fairplay.Record {
	return []fairplay.Record{
		{
			ID:       "fairplay-01",
			SeasonID: SeasonIDCurrent,
			TeamID:   "team-northside",
			PlayerID: "player-out-02",
			Action:   fairplay.ActionYellowCard,
			Points:   1,
			Status:   fairplay.StatusActive,
		},
		{
			ID:       "fairplay-02",
			SeasonID: SeasonIDCurrent,
			TeamID:   "team-westgate",
			Action:   fairplay.ActionCrowdTrouble,
			Points:   3,
			Status:   fairplay.StatusOverturned,
		},
	}
}
