// Package app assembles the application graph for the server and CLI
// entry points. The provide* functions are the wire providers; the
// injectors live in wire_gen.go.
package app

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/daymade/medscribe/internal/api/server"
	"github.com/daymade/medscribe/internal/api/v1/routes"
	"github.com/daymade/medscribe/internal/api/v1/services"
	"github.com/daymade/medscribe/internal/app/api/provider"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/logging"
	"github.com/daymade/medscribe/internal/app/pipeline"
	"github.com/daymade/medscribe/internal/app/session"
	"github.com/daymade/medscribe/internal/config"
)

// DefaultPromptsPath is where the prompt configuration lives unless
// MEDSCRIBE_PROMPTS overrides it.
const DefaultPromptsPath = "configs/prompts.yaml"

// CLI bundles the pieces the command-line entry points need. The CLI runner
// records stats but skips Prometheus, there is no scrape endpoint to serve.
type CLI struct {
	Stager   *intake.Stager
	Registry *provider.Registry
	Runner   *pipeline.Runner
	Logger   *zap.Logger
}

func NewCLI(stager *intake.Stager, registry *provider.Registry,
	runner *pipeline.Runner, logger *zap.Logger) *CLI {
	return &CLI{
		Stager:   stager,
		Registry: registry,
		Runner:   runner,
		Logger:   logger,
	}
}

func provideServerEnvConfig() config.ServerConfig {
	return config.ServerFromEnv()
}

func provideZapLogger(cfg config.ServerConfig) (*zap.Logger, error) {
	return logging.NewForEnvironment(cfg.Environment)
}

func provideHTTPLogger(cfg config.ServerConfig) *slog.Logger {
	if cfg.Environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func providePrompts() (config.PromptsConfig, error) {
	path := os.Getenv("MEDSCRIBE_PROMPTS")
	if path == "" {
		path = DefaultPromptsPath
	}
	return config.LoadPrompts(path)
}

func provideRegistry(cfg config.ServerConfig, prompts config.PromptsConfig,
	logger *zap.Logger) (*provider.Registry, error) {

	keys := config.GetAPIKeys()
	for _, warning := range keys.Warnings() {
		logger.Warn("credential check", zap.String("warning", warning))
	}
	return provider.BuildRegistry(cfg.Provider, keys, prompts)
}

func provideStats() *provider.StatsCollector {
	return provider.NewStatsCollector()
}

func provideMetrics() *pipeline.Metrics {
	return pipeline.NewDefaultMetrics()
}

func provideRunner(metrics *pipeline.Metrics, stats *provider.StatsCollector,
	logger *zap.Logger) *pipeline.Runner {
	return pipeline.NewRunner(metrics, stats, logger)
}

func provideCLIRunner(stats *provider.StatsCollector, logger *zap.Logger) *pipeline.Runner {
	return pipeline.NewRunner(nil, stats, logger)
}

func provideStager(cfg config.ServerConfig, logger *zap.Logger) *intake.Stager {
	stagerCfg := intake.DefaultConfig()
	stagerCfg.MaxUploadBytes = cfg.MaxUploadBytes
	return intake.NewStager(stagerCfg, logger)
}

func provideSessions() *session.Manager {
	return session.NewManager(session.DefaultMaxIdle)
}

// provideArchive picks the object-storage backend. Without an endpoint the
// mock keeps the preview feature alive for local development; a configured
// but unreachable store is a startup error.
func provideArchive(logger *zap.Logger) (services.ArchiveService, error) {
	cfg := config.ArchiveFromEnv()
	if !cfg.Enabled() {
		logger.Info("audio archive not configured, using in-memory mock")
		return services.NewMockArchiveService(), nil
	}
	return services.NewMinioArchiveService(context.Background(), cfg)
}

func provideContainer(
	stager *intake.Stager,
	registry *provider.Registry,
	runner *pipeline.Runner,
	sessions *session.Manager,
	archive services.ArchiveService,
	stats *provider.StatsCollector,
	logger *zap.Logger,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		ConsultationService: services.NewConsultationService(stager, registry, runner, sessions, archive, logger),
		ArtifactService:     services.NewArtifactService(sessions, archive),
		ProviderService:     services.NewProviderService(registry),
		StatsService:        services.NewStatsService(stats),
	}
}

func provideServerConfig(cfg config.ServerConfig) server.Config {
	return server.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Environment:  cfg.Environment,
	}
}
