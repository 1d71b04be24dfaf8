package httpapi

import "net/http"

// RebuildStandingsSnapshot recomputes every season's table. It is wired
// behind the internal job token and meant for the scheduler, not operators.
func (h *Handler) RebuildStandingsSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildStandingsSnapshot")
	defer span.End()

	result, err := h.snapshotService.RebuildAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings snapshot rebuild failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
