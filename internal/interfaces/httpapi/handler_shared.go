package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	"github.com/matchdayhq/leaguedesk/internal/domain/standings"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
	"github.com/matchdayhq/leaguedesk/internal/usecase"
)

const maxImageBytes = 8 << 20

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func readImageBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read image body: %v", usecase.ErrInvalidInput, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: image body is empty", usecase.ErrInvalidInput)
	}

	return data, nil
}

func parseOptionalTime(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339: %v", usecase.ErrInvalidInput, field, err)
	}

	return parsed, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) string {
	if value == nil {
		return ""
	}
	return formatTime(*value)
}

// --- request payloads ---

type upsertSeasonRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=200"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	IsActive bool   `json:"is_active"`
}

type upsertTeamRequest struct {
	ID             string `json:"id"`
	SeasonID       string `json:"season_id" validate:"required"`
	Name           string `json:"name" validate:"required,max=200"`
	Short          string `json:"short" validate:"omitempty,max=10"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

type upsertPlayerRequest struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name" validate:"required,max=200"`
	Position       string                 `json:"position" validate:"required"`
	TeamID         string                 `json:"team_id"`
	ContractStatus string                 `json:"contract_status"`
	Contract       *playerContractPayload `json:"contract"`
}

type playerContractPayload struct {
	TeamID   string `json:"team_id" validate:"required"`
	SeasonID string `json:"season_id" validate:"required"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	Value    int64  `json:"value" validate:"gte=0"`
}

type upsertMatchRequest struct {
	ID         string `json:"id"`
	SeasonID   string `json:"season_id" validate:"required"`
	HomeTeamID string `json:"home_team_id" validate:"required"`
	AwayTeamID string `json:"away_team_id" validate:"required"`
	Status     string `json:"status"`
	HomeScore  *int   `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore  *int   `json:"away_score" validate:"omitempty,gte=0"`
	KickoffAt  string `json:"kickoff_at"`
	Venue      string `json:"venue"`
}

type recordResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,gte=0"`
	AwayScore *int `json:"away_score" validate:"required,gte=0"`
}

type upsertFairPlayRequest struct {
	ID       string `json:"id"`
	SeasonID string `json:"season_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
	PlayerID string `json:"player_id"`
	Action   string `json:"action" validate:"required"`
	Points   int    `json:"points" validate:"required,gt=0"`
	Status   string `json:"status"`
}

type updateFairPlayStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type moveTransferRequest struct {
	PlayerID     string `json:"player_id" validate:"required"`
	NewTeamID    string `json:"new_team_id"`
	Fee          int64  `json:"fee" validate:"gte=0"`
	AdminRelease bool   `json:"admin_release"`
}

type loanTransferRequest struct {
	PlayerID   string `json:"player_id" validate:"required"`
	ToTeamID   string `json:"to_team_id" validate:"required"`
	ReturnDate string `json:"return_date" validate:"required"`
}

// --- response payloads ---

type seasonDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"startsAt,omitempty"`
	EndsAt   string `json:"endsAt,omitempty"`
	IsActive bool   `json:"isActive"`
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:       s.ID,
		Name:     s.Name,
		StartsAt: formatTime(s.StartsAt),
		EndsAt:   formatTime(s.EndsAt),
		IsActive: s.IsActive,
	}
}

type teamDTO struct {
	ID             string `json:"id"`
	SeasonID       string `json:"seasonId"`
	Name           string `json:"name"`
	Short          string `json:"short,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:             t.ID,
		SeasonID:       t.SeasonID,
		Name:           t.Name,
		Short:          t.Short,
		LogoURL:        t.LogoURL,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
	}
}

type contractDTO struct {
	TeamID   string `json:"teamId"`
	SeasonID string `json:"seasonId"`
	StartsAt string `json:"startsAt,omitempty"`
	EndsAt   string `json:"endsAt,omitempty"`
	Value    int64  `json:"value"`
}

type playerDTO struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Position       string       `json:"position"`
	TeamID         string       `json:"teamId,omitempty"`
	ContractStatus string       `json:"contractStatus"`
	Contract       *contractDTO `json:"contract,omitempty"`
	PhotoURL       string       `json:"photoUrl,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	dto := playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		Position:       string(p.Position),
		TeamID:         p.TeamID,
		ContractStatus: string(p.ContractStatus),
		PhotoURL:       p.PhotoURL,
	}
	if p.Contract != nil {
		dto.Contract = &contractDTO{
			TeamID:   p.Contract.TeamID,
			SeasonID: p.Contract.SeasonID,
			StartsAt: formatTime(p.Contract.StartsAt),
			EndsAt:   formatTimePtr(p.Contract.EndsAt),
			Value:    p.Contract.Value,
		}
	}

	return dto
}

type matchDTO struct {
	ID         string `json:"id"`
	SeasonID   string `json:"seasonId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	Status     string `json:"status"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
	KickoffAt  string `json:"kickoffAt,omitempty"`
	Venue      string `json:"venue,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		Status:     m.Status,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		KickoffAt:  formatTime(m.KickoffAt),
		Venue:      m.Venue,
	}
}

type standingDTO struct {
	Position       int     `json:"position"`
	Team           teamDTO `json:"team"`
	Played         int     `json:"played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	FairPlayPoints int     `json:"fairPlayPoints"`
	Points         int     `json:"points"`
}

func standingToDTO(row standings.TeamStanding) standingDTO {
	return standingDTO{
		Position:       row.Position,
		Team:           teamToDTO(row.Team),
		Played:         row.Played,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		FairPlayPoints: row.FairPlayPoints,
		Points:         row.Points,
	}
}

type transferDTO struct {
	ID            string `json:"id"`
	PlayerID      string `json:"playerId"`
	FromTeamID    string `json:"fromTeamId,omitempty"`
	ToTeamID      string `json:"toTeamId,omitempty"`
	SeasonID      string `json:"seasonId"`
	Type          string `json:"type"`
	TransferredAt string `json:"transferredAt"`
	Fee           int64  `json:"fee"`
	Notes         string `json:"notes,omitempty"`
	ReturnDate    string `json:"returnDate,omitempty"`
}

func transferToDTO(t transfer.Transfer) transferDTO {
	return transferDTO{
		ID:            t.ID,
		PlayerID:      t.PlayerID,
		FromTeamID:    t.FromTeamID,
		ToTeamID:      t.ToTeamID,
		SeasonID:      t.SeasonID,
		Type:          string(t.Type),
		TransferredAt: formatTime(t.TransferredAt),
		Fee:           t.Fee,
		Notes:         t.Notes,
		ReturnDate:    formatTimePtr(t.ReturnDate),
	}
}

type moveResultDTO struct {
	NoOp     bool         `json:"noOp"`
	Transfer *transferDTO `json:"transfer,omitempty"`
}

func moveResultToDTO(result usecase.MoveResult) moveResultDTO {
	dto := moveResultDTO{NoOp: result.NoOp}
	if !result.NoOp {
		record := transferToDTO(result.Transfer)
		dto.Transfer = &record
	}

	return dto
}

type fairPlayDTO struct {
	ID              string `json:"id"`
	SeasonID        string `json:"seasonId"`
	TeamID          string `json:"teamId"`
	PlayerID        string `json:"playerId,omitempty"`
	Action          string `json:"action"`
	Points          int    `json:"points"`
	EffectivePoints int    `json:"effectivePoints"`
	Status          string `json:"status"`
}

func fairPlayToDTO(r fairplay.Record) fairPlayDTO {
	return fairPlayDTO{
		ID:              r.ID,
		SeasonID:        r.SeasonID,
		TeamID:          r.TeamID,
		PlayerID:        r.PlayerID,
		Action:          string(r.Action),
		Points:          r.Points,
		EffectivePoints: r.EffectivePoints(),
		Status:          string(r.Status),
	}
}
