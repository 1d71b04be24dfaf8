package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/matchdayhq/leaguedesk/internal/usecase"
)

type Handler struct {
	seasonService   *usecase.SeasonService
	teamService     *usecase.TeamService
	playerService   *usecase.PlayerService
	matchService    *usecase.MatchService
	standingService *usecase.StandingService
	transferService *usecase.TransferService
	fairPlayService *usecase.FairPlayService
	snapshotService *usecase.SnapshotService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	transferService *usecase.TransferService,
	fairPlayService *usecase.FairPlayService,
	snapshotService *usecase.SnapshotService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		seasonService:   seasonService,
		teamService:     teamService,
		playerService:   playerService,
		matchService:    matchService,
		standingService: standingService,
		transferService: transferService,
		fairPlayService: fairPlayService,
		snapshotService: snapshotService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
