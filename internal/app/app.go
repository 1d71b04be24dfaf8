package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/matchdayhq/leaguedesk/internal/config"
	"github.com/matchdayhq/leaguedesk/internal/domain/fairplay"
	"github.com/matchdayhq/leaguedesk/internal/domain/match"
	"github.com/matchdayhq/leaguedesk/internal/domain/player"
	"github.com/matchdayhq/leaguedesk/internal/domain/season"
	"github.com/matchdayhq/leaguedesk/internal/domain/team"
	"github.com/matchdayhq/leaguedesk/internal/domain/transfer"
	"github.com/matchdayhq/leaguedesk/internal/infrastructure/media/pixhost"
	"github.com/matchdayhq/leaguedesk/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/leaguedesk/internal/infrastructure/repository/postgres"
	"github.com/matchdayhq/leaguedesk/internal/interfaces/httpapi"
	"github.com/matchdayhq/leaguedesk/internal/platform/cache"
	"github.com/matchdayhq/leaguedesk/internal/platform/id"
	"github.com/matchdayhq/leaguedesk/internal/platform/logging"
	"github.com/matchdayhq/leaguedesk/internal/platform/resilience"
	"github.com/matchdayhq/leaguedesk/internal/usecase"
)

type repositories struct {
	seasons   season.Repository
	teams     team.Repository
	players   player.Repository
	matches   match.Repository
	fairPlay  fairplay.Repository
	transfers transfer.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. With an
// empty DB_URL the service runs on seeded in-memory repositories, which is
// the dev default.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, closeRepos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var images usecase.ImageStore
	if cfg.PixhostEnabled {
		images = pixhost.NewClient(pixhost.ClientConfig{
			BaseURL:    cfg.PixhostBaseURL,
			APIKey:     cfg.PixhostAPIKey,
			Timeout:    cfg.PixhostTimeout,
			MaxRetries: cfg.PixhostMaxRetries,
			Logger:     logging.NewJSON(cfg.ZapLevel()),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.PixhostCircuitEnabled,
				FailureThreshold: cfg.PixhostCircuitFailureCount,
				OpenTimeout:      cfg.PixhostCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.PixhostCircuitHalfOpenMax,
			},
		})
	}

	ids := id.NewRandomGenerator()

	standingSvc := usecase.NewStandingService(repos.seasons, repos.teams, repos.matches, repos.fairPlay, cacheStore, logger)
	transferSvc := usecase.NewTransferService(repos.players, repos.seasons, repos.transfers, ids, logger)

	handler := httpapi.NewHandler(
		usecase.NewSeasonService(repos.seasons, ids),
		usecase.NewTeamService(repos.teams, repos.players, transferSvc, images, ids, logger),
		usecase.NewPlayerService(repos.players, images, ids, logger),
		usecase.NewMatchService(repos.matches, repos.teams, standingSvc, ids, logger),
		standingSvc,
		transferSvc,
		usecase.NewFairPlayService(repos.fairPlay, standingSvc, ids),
		usecase.NewSnapshotService(repos.seasons, standingSvc, cfg.SnapshotWorkers, logger),
		logger,
	)

	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeRepos, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("database url not set, using in-memory repositories")
		teamRepo := memory.NewTeamRepository(memory.SeedTeams())
		return repositories{
			seasons:   memory.NewSeasonRepository(memory.SeedSeasons()),
			teams:     teamRepo,
			players:   memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo),
			matches:   memory.NewMatchRepository(memory.SeedMatches()),
			fairPlay:  memory.NewFairPlayRepository(memory.SeedFairPlayRecords()),
			transfers: memory.NewTransferRepository(nil),
		}, func() error { return nil }, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		seasons:   postgres.NewSeasonRepository(db),
		teams:     postgres.NewTeamRepository(db),
		players:   postgres.NewPlayerRepository(db),
		matches:   postgres.NewMatchRepository(db),
		fairPlay:  postgres.NewFairPlayRepository(db),
		transfers: postgres.NewTransferRepository(db),
	}, db.Close, nil
}
