package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/cache"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/config"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/handler"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/middleware"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/notification"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/repository"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/router"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/scheduler"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	notifier   *notification.BrokerNotifier
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingEngine",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	policy, err := policyFromConfig(a.cfg)
	if err != nil {
		return fmt.Errorf("pricing policy: %w", err)
	}

	bookingRepo := repository.NewBookingRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	ratingRepo := repository.NewRatingRepo(a.db)
	catalog := cache.NewCatalogCache(
		repository.NewCatalogRepo(a.db),
		a.cfg.Cache.Size,
		a.cfg.Cache.TTL,
		a.log,
	)

	n, err := notification.NewBrokerNotifier(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.notifier = n

	availabilityService := service.NewAvailabilityService(bookingRepo, catalog)
	bookingService := service.NewBookingService(bookingRepo, catalog, availabilityService, n, policy, a.log)
	reviewService := service.NewReviewService(bookingRepo, reviewRepo, ratingRepo, n, a.cfg.Scheduler.Batch, a.log)

	a.scheduler = scheduler.New(
		reviewService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, reviewService, availabilityService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func policyFromConfig(cfg *config.Config) (service.Policy, error) {
	callOut, err := decimal.NewFromString(cfg.Pricing.CallOutFee)
	if err != nil {
		return service.Policy{}, fmt.Errorf("call_out_fee: %w", err)
	}
	emergency, err := decimal.NewFromString(cfg.Pricing.EmergencyPremiumRate)
	if err != nil {
		return service.Policy{}, fmt.Errorf("emergency_premium_rate: %w", err)
	}
	lateFee, err := decimal.NewFromString(cfg.Cancel.LateFeeRate)
	if err != nil {
		return service.Policy{}, fmt.Errorf("late_fee_rate: %w", err)
	}

	switch {
	case callOut.IsNegative():
		return service.Policy{}, errors.New("call_out_fee must not be negative")
	case emergency.IsNegative():
		return service.Policy{}, errors.New("emergency_premium_rate must not be negative")
	case lateFee.IsNegative() || lateFee.GreaterThan(decimal.NewFromInt(1)):
		return service.Policy{}, errors.New("late_fee_rate must be between 0 and 1")
	}

	return service.Policy{
		CallOutFee:           callOut,
		EmergencyPremiumRate: emergency,
		LateCancelWindow:     cfg.Cancel.LateWindow,
		LateCancelFeeRate:    lateFee,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(ctx)
		return nil
	})

	g.Go(func() error {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.notifier.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "closing broker connection",
			logger.String("error", err.Error()),
		)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
