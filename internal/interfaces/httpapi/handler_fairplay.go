package httpapi

import (
	"net/http"

	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
)

func (h *Handler) ListFairPlayBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFairPlayBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	records, err := h.fairPlayService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fair-play records failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fairPlayDTO, 0, len(records))
	for _, record := range records {
		items = append(items, fairPlayToDTO(record))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpsertFairPlayRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertFairPlayRecord")
	defer span.End()

	var req upsertFairPlayRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.fairPlayService.Save(ctx, fairplay.Record{
		ID:       req.ID,
		SeasonID: req.SeasonID,
		TeamID:   req.TeamID,
		PlayerID: req.PlayerID,
		Action:   fairplay.Action(req.Action),
		Points:   req.Points,
		Status:   fairplay.Status(req.Status),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "save fair-play record failed", "record_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fairPlayToDTO(saved))
}

func (h *Handler) UpdateFairPlayStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFairPlayStatus")
	defer span.End()

	recordID := r.PathValue("recordID")

	var req updateFairPlayStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.fairPlayService.UpdateStatus(ctx, recordID, fairplay.Status(req.Status))
	if err != nil {
		h.logger.WarnContext(ctx, "update fair-play status failed", "record_id", recordID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fairPlayToDTO(updated))
}
