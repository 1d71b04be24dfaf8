package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/matchdayhq/leaguedesk/internal/platform/logging"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config stores runtime configuration for the service. Everything comes
// from the environment; there is no config file.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	DBURL string

	AdminToken       string
	InternalJobToken string

	CORSAllowedOrigins []string

	CacheEnabled bool
	CacheTTL     time.Duration

	SnapshotWorkers int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	PixhostEnabled             bool
	PixhostBaseURL             string
	PixhostAPIKey              string
	PixhostTimeout             time.Duration
	PixhostMaxRetries          int
	PixhostCircuitEnabled      bool
	PixhostCircuitFailureCount int
	PixhostCircuitOpenTimeout  time.Duration
	PixhostCircuitHalfOpenMax  int

	LogLevel slog.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := getEnvAsBool("CACHE_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	snapshotWorkers, err := getEnvAsInt("SNAPSHOT_WORKERS", 4)
	if err != nil {
		return Config{}, err
	}
	if snapshotWorkers < 1 {
		return Config{}, fmt.Errorf("SNAPSHOT_WORKERS must be >= 1")
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := getEnvAsBool("UPTRACE_LOGS_ENABLED", true)
	if err != nil {
		return Config{}, err
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second)
	if err != nil {
		return Config{}, err
	}

	pixhostEnabled, err := getEnvAsBool("PIXHOST_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	pixhostTimeout, err := getEnvAsDuration("PIXHOST_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, err
	}
	pixhostMaxRetries, err := getEnvAsInt("PIXHOST_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, err
	}
	pixhostCircuitEnabled, err := getEnvAsBool("PIXHOST_CIRCUIT_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	pixhostCircuitFailures, err := getEnvAsInt("PIXHOST_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, err
	}
	pixhostCircuitOpenTimeout, err := getEnvAsDuration("PIXHOST_CIRCUIT_OPEN_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	pixhostCircuitHalfOpenMax, err := getEnvAsInt("PIXHOST_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, err
	}
	if pixhostEnabled && strings.TrimSpace(getEnv("PIXHOST_API_KEY", "")) == "" {
		return Config{}, fmt.Errorf("PIXHOST_API_KEY is required when PIXHOST_ENABLED=true")
	}

	logLevel, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	adminToken := strings.TrimSpace(getEnv("ADMIN_TOKEN", ""))
	if appEnv == EnvProd && adminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required in prod")
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "leaguedesk"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,

		DBURL: strings.TrimSpace(getEnv("DB_URL", "")),

		AdminToken:       adminToken,
		InternalJobToken: strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		CORSAllowedOrigins: parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		SnapshotWorkers: snapshotWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", ":6060"),

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServer,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", "leaguedesk"),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:    pyroscopeUploadRate,

		PixhostEnabled:             pixhostEnabled,
		PixhostBaseURL:             getEnv("PIXHOST_BASE_URL", ""),
		PixhostAPIKey:              strings.TrimSpace(getEnv("PIXHOST_API_KEY", "")),
		PixhostTimeout:             pixhostTimeout,
		PixhostMaxRetries:          pixhostMaxRetries,
		PixhostCircuitEnabled:      pixhostCircuitEnabled,
		PixhostCircuitFailureCount: pixhostCircuitFailures,
		PixhostCircuitOpenTimeout:  pixhostCircuitOpenTimeout,
		PixhostCircuitHalfOpenMax:  pixhostCircuitHalfOpenMax,

		LogLevel: logLevel,
	}, nil
}

// ZapLevel maps the slog level onto the zap-backed infrastructure logger.
func (c Config) ZapLevel() logging.Level {
	switch {
	case c.LogLevel <= slog.LevelDebug:
		return logging.LevelDebug
	case c.LogLevel <= slog.LevelInfo:
		return logging.LevelInfo
	case c.LogLevel <= slog.LevelWarn:
		return logging.LevelWarn
	default:
		return logging.LevelError
	}
}

func parseAppEnv(value string) (string, error) {
	env := strings.ToLower(strings.TrimSpace(value))
	switch env {
	case EnvDev, EnvStaging, EnvProd:
		return env, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV: %s", value)
	}
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %s", value)
	}
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, strconv.FormatBool(fallback))
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, strconv.Itoa(fallback))
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, fallback.String())
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return value, nil
}
