package httpapi

import (
	"net/http"

	"github.com/matchdayhq/leaguedesk/internal/domain/player"
)

func (h *Handler) ListPlayersBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	players, err := h.playerService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpsertPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPlayer")
	defer span.End()

	var req upsertPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := player.Player{
		ID:             req.ID,
		Name:           req.Name,
		Position:       player.Position(req.Position),
		TeamID:         req.TeamID,
		ContractStatus: player.ContractStatus(req.ContractStatus),
	}
	if req.Contract != nil {
		startsAt, err := parseOptionalTime(req.Contract.StartsAt, "contract.starts_at")
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		endsAt, err := parseOptionalTime(req.Contract.EndsAt, "contract.ends_at")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		contract := player.Contract{
			TeamID:   req.Contract.TeamID,
			SeasonID: req.Contract.SeasonID,
			StartsAt: startsAt,
			Value:    req.Contract.Value,
		}
		if !endsAt.IsZero() {
			contract.EndsAt = &endsAt
		}
		item.Contract = &contract
	}

	saved, err := h.playerService.Save(ctx, item)
	if err != nil {
		h.logger.ErrorContext(ctx, "save player failed", "player_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(saved))
}

func (h *Handler) SetPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerPhoto")
	defer span.End()

	playerID := r.PathValue("playerID")
	data, err := readImageBody(w, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.SetPhoto(ctx, playerID, data)
	if err != nil {
		h.logger.ErrorContext(ctx, "set player photo failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}
