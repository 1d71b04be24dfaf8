package httpapi

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchdayhq/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/leaguedesk/internal/platform/cache"
	"github.com/matchdayhq/leaguedesk/internal/platform/id"
	"github.com/matchdayhq/leaguedesk/internal/usecase"
)

const (
	testAdminToken = "test-admin-token"
	testJobToken   = "test-job-token"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	ids := id.NewRandomGenerator()

	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	fairPlayRepo := memory.NewFairPlayRepository(memory.SeedFairPlayRecords())
	transferRepo := memory.NewTransferRepository(nil)

	standingSvc := usecase.NewStandingService(seasonRepo, teamRepo, matchRepo, fairPlayRepo, cache.NewStore(time.Minute), logger)
	transferSvc := usecase.NewTransferService(playerRepo, seasonRepo, transferRepo, ids, logger)

	handler := NewHandler(
		usecase.NewSeasonService(seasonRepo, ids),
		usecase.NewTeamService(teamRepo, playerRepo, transferSvc, nil, ids, logger),
		usecase.NewPlayerService(playerRepo, nil, ids, logger),
		usecase.NewMatchService(matchRepo, teamRepo, standingSvc, ids, logger),
		standingSvc,
		transferSvc,
		usecase.NewFairPlayService(fairPlayRepo, standingSvc, ids),
		usecase.NewSnapshotService(seasonRepo, standingSvc, 2, logger),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"}, testAdminToken, testJobToken)
}

func decodeEnvelope(t *testing.T, raw []byte) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_StandingsOrderSeededSeason(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/seasons/"+memory.SeasonIDCurrent+"/standings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec.Body.Bytes())
	rows, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 standings rows, got %d", len(rows))
	}

	first, _ := rows[0].(map[string]any)
	teamObj, _ := first["team"].(map[string]any)
	if got, _ := teamObj["id"].(string); got != "team-harbour" {
		t.Fatalf("expected team-harbour on top, got %v", teamObj["id"])
	}
	if got, _ := first["points"].(float64); got != 3 {
		t.Fatalf("expected 3 points for the leader, got %v", first["points"])
	}
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"season_id":"` + memory.SeasonIDCurrent + `","name":"FC Newtown"}`

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/teams", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/v1/admin/teams", strings.NewReader(payload))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec.Body.Bytes())
	data, _ := body["data"].(map[string]any)
	if got, _ := data["name"].(string); got != "FC Newtown" {
		t.Fatalf("expected saved team in response, got %v", body["data"])
	}
}

func TestRouter_SeasonalLockSurfacesSpecificReason(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"player_id":"player-out-02","new_team_id":"team-harbour"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/transfers/move", strings.NewReader(payload))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec.Body.Bytes())
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one error item, got %v", errorObj)
	}
	item, _ := items[0].(map[string]any)
	if got, _ := item["reason"].(string); got != "seasonalLockActive" {
		t.Fatalf("expected reason seasonalLockActive, got %v", item["reason"])
	}
}

func TestRouter_UnknownBodyFieldRejected(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"player_id":"player-free-01","new_team_id":"team-harbour","surprise":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/transfers/move", strings.NewReader(payload))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", rec.Code)
	}
}

func TestRouter_InternalJobNeedsJobToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/standings-snapshot", nil)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without job token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/standings-snapshot", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with job token, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec.Body.Bytes())
	data, _ := body["data"].(map[string]any)
	if got, _ := data["seasonCount"].(float64); got != 2 {
		t.Fatalf("expected 2 seasons in snapshot result, got %v", data["seasonCount"])
	}
}
