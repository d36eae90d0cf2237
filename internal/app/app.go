package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pickemhq/survivor-pool/internal/config"
	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/account/introspect"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/postgres"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/schedule/oddsfeed"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/schedule/static"
	"github.com/pickemhq/survivor-pool/internal/interfaces/httpapi"
	"github.com/pickemhq/survivor-pool/internal/platform/cache"
	idgen "github.com/pickemhq/survivor-pool/internal/platform/id"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
	"github.com/pickemhq/survivor-pool/internal/platform/resilience"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup releases the storage backend
// and must be called after the server shuts down.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	zlog := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(zlog)

	seriesRepo, playoffRepo, closeStorage, err := buildStorage(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() error {
		_ = zlog.Sync()
		if closeStorage != nil {
			return closeStorage()
		}
		return nil
	}

	schedules := buildScheduleProvider(cfg, zlog)

	var weekCache *cache.Store
	if cfg.CacheEnabled {
		weekCache = cache.NewStore(cfg.CacheTTL)
	}

	idGen := idgen.NewRandomGenerator()

	seriesSvc := usecase.NewSeriesService(seriesRepo, idGen)
	pickSvc := usecase.NewPickService(seriesRepo, schedules, weekCache)
	resultSvc := usecase.NewResultService(seriesRepo, schedules, zlog)
	playoffSvc := usecase.NewPlayoffService(seriesRepo, playoffRepo)
	invitationSvc := usecase.NewInvitationService(seriesRepo, idGen)
	autoPickSvc := usecase.NewAutoPickService(seriesRepo, schedules, zlog)

	accountClient := introspect.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(
		seriesSvc,
		pickSvc,
		resultSvc,
		playoffSvc,
		invitationSvc,
		autoPickSvc,
		cfg.AutoPickMaxWorkers,
		logger,
	)
	router := httpapi.NewRouter(
		handler,
		accountClient,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildStorage(cfg config.Config, logger *slog.Logger) (series.Repository, playoff.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "database", dbNameFromURL(cfg.DBURL))
		return postgres.NewSeriesRepository(db), postgres.NewPlayoffRepository(db), db.Close, nil

	case config.StorageMemory:
		seriesRepo := memory.NewSeriesRepository()
		seeds := memory.SeedSeries()
		for _, s := range seeds {
			if err := seriesRepo.Create(context.Background(), s); err != nil {
				return nil, nil, nil, fmt.Errorf("seed series %s: %w", s.ID, err)
			}
		}
		logger.Info("storage ready", "driver", config.StorageMemory, "seeded_series", len(seeds))
		return seriesRepo, memory.NewPlayoffRepository(), nil, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func buildScheduleProvider(cfg config.Config, zlog *logging.Logger) schedule.Provider {
	if !cfg.OddsFeedEnabled {
		return static.NewProvider()
	}

	return oddsfeed.NewClient(oddsfeed.ClientConfig{
		BaseURL:    cfg.OddsFeedBaseURL,
		APIKey:     cfg.OddsFeedAPIKey,
		Timeout:    cfg.OddsFeedTimeout,
		MaxRetries: cfg.OddsFeedMaxRetries,
		Logger:     zlog,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OddsFeedCircuitEnabled,
			FailureThreshold: cfg.OddsFeedCircuitFailureCount,
			OpenTimeout:      cfg.OddsFeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OddsFeedCircuitHalfOpenMaxReq,
		},
	})
}
