package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/teams", handler.ListTeamsBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/players", handler.ListPlayersBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/matches", handler.ListMatchesBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/transfers", handler.ListTransfersBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/fair-play", handler.ListFairPlayBySeason)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/transfers", handler.ListTransfersByPlayer)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("PUT /v1/admin/seasons", admin(handler.UpsertSeason))
	mux.Handle("PUT /v1/admin/teams", admin(handler.UpsertTeam))
	mux.Handle("DELETE /v1/admin/teams/{teamID}", admin(handler.DeleteTeam))
	mux.Handle("POST /v1/admin/teams/{teamID}/logo", admin(handler.SetTeamLogo))
	mux.Handle("PUT /v1/admin/players", admin(handler.UpsertPlayer))
	mux.Handle("POST /v1/admin/players/{playerID}/photo", admin(handler.SetPlayerPhoto))
	mux.Handle("PUT /v1/admin/matches", admin(handler.UpsertMatch))
	mux.Handle("POST /v1/admin/matches/{matchID}/result", admin(handler.RecordMatchResult))
	mux.Handle("PUT /v1/admin/fair-play", admin(handler.UpsertFairPlayRecord))
	mux.Handle("POST /v1/admin/fair-play/{recordID}/status", admin(handler.UpdateFairPlayStatus))
	mux.Handle("POST /v1/admin/transfers/move", admin(handler.MovePlayer))
	mux.Handle("POST /v1/admin/transfers/loan", admin(handler.LoanPlayer))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/standings-snapshot", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RebuildStandingsSnapshot)))
}
