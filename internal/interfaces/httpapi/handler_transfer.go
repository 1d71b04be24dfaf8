package httpapi

import (
	"net/http"

	"github.com/matchdayhq/leaguedesk/internal/usecase"
)

func (h *Handler) ListTransfersBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfersBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	history, err := h.transferService.HistoryBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season transfers failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(history))
	for _, t := range history {
		items = append(items, transferToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTransfersByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfersByPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	history, err := h.transferService.HistoryByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player transfers failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(history))
	for _, t := range history {
		items = append(items, transferToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) MovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MovePlayer")
	defer span.End()

	var req moveTransferRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.Move(ctx, usecase.MoveRequest{
		PlayerID:     req.PlayerID,
		NewTeamID:    req.NewTeamID,
		Fee:          req.Fee,
		AdminRelease: req.AdminRelease,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "move player failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, moveResultToDTO(result))
}

func (h *Handler) LoanPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoanPlayer")
	defer span.End()

	var req loanTransferRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	returnDate, err := parseOptionalTime(req.ReturnDate, "return_date")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.Loan(ctx, usecase.LoanRequest{
		PlayerID:   req.PlayerID,
		ToTeamID:   req.ToTeamID,
		ReturnDate: returnDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "loan player failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, moveResultToDTO(result))
}
