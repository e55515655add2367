package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/landing-builder-backend/internal/adapter/mailer"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/publicsite"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/resettoken"
	siterepo "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/site"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/provider/stub"
	rediscache "github.com/heartmarshall/landing-builder-backend/internal/adapter/redis"
	"github.com/heartmarshall/landing-builder-backend/internal/auth"
	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	authsvc "github.com/heartmarshall/landing-builder-backend/internal/service/auth"
	sitesvc "github.com/heartmarshall/landing-builder-backend/internal/service/site"
	usersvc "github.com/heartmarshall/landing-builder-backend/internal/service/user"
	"github.com/heartmarshall/landing-builder-backend/internal/transport/middleware"
	"github.com/heartmarshall/landing-builder-backend/internal/transport/rest"
	"github.com/heartmarshall/landing-builder-backend/migrations"
)

const readHeaderTimeout = 5 * time.Second

type pageGenerator interface {
	Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Run loads configuration, wires every component and serves HTTP until ctx
// is canceled. Shutdown waits up to server.shutdown_timeout for in-flight
// requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.Any("build", buildInfo{}),
		slog.String("log_level", cfg.Log.Level),
		slog.String("generator", cfg.Generator.Provider),
		slog.Bool("cache", cfg.Cache.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	var cache *rediscache.PublicSiteCache
	if cfg.Cache.Enabled {
		cache = rediscache.New(cfg.Cache, logger)
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close cache", slog.String("error", err.Error()))
			}
		}()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			logger.Warn("public cache unreachable at startup", slog.String("addr", cfg.Cache.Addr), slog.String("error", err.Error()))
		}
		cancel()
	}

	gen, err := newGenerator(cfg.Generator, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	router := wire(cfg, logger, pool, cache, gen, limiter)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// wire builds repositories, services and the HTTP router on top of the
// given infrastructure. cache and limiter may be nil.
func wire(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	cache *rediscache.PublicSiteCache,
	gen pageGenerator,
	limiter *middleware.RateLimiter,
) http.Handler {
	users := userrepo.New(pool)

	var (
		siteOpts    []sitesvc.Option
		cacheHealth pinger
	)
	if cache != nil {
		siteOpts = append(siteOpts, sitesvc.WithCache(cache))
		cacheHealth = cache
	}

	authService := authsvc.NewService(
		logger,
		users,
		token.New(pool),
		resettoken.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		mailer.NewLogMailer(logger),
		cfg.Auth,
	)
	userService := usersvc.NewService(logger, users)
	siteService := sitesvc.NewService(logger, siterepo.New(pool), publicsite.New(pool), gen, siteOpts...)

	return newRouter(cfg, logger, authService, limiter, handlers{
		auth:   rest.NewAuthHandler(authService, logger),
		me:     rest.NewMeHandler(userService, logger),
		sites:  rest.NewSiteHandler(siteService, logger),
		public: rest.NewPublicHandler(siteService, logger),
		health: rest.NewHealthHandler(pool, cacheHealth, Version),
	})
}

func newGenerator(cfg config.GeneratorConfig, logger *slog.Logger) (pageGenerator, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.New(cfg, logger), nil
	case config.ProviderStub:
		logger.Warn("using the stub page generator")
		return stub.New(), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
