package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/lubana/membership/internal/membership/http"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/internal/membership/store/drivers/firestore"
	"github.com/lubana/membership/internal/membership/store/drivers/sqlite"
	"github.com/lubana/membership/pkg/cryptox"
	"github.com/lubana/membership/pkg/jwtx"
	"github.com/lubana/membership/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the membership service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier
	hasher   *cryptox.Hasher
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Services
	userService   *service.UserService
	issuer        *service.RegistrationIssuer
	validator     *service.QRValidator
	activator     *service.Activator
	memberService *service.MemberService
	reconciler    *service.Reconciler

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "membership-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()
	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	var err error
	if app.signer, app.verifier, err = InitSigningKey(cfg, app.logger); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if app.hasher, err = InitHasher(cfg); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMetrics()
	app.initServices()

	if err := app.bootstrapAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler returns the root HTTP handler, for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.reconciler.Start()

	app.logger.Info("membership service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.reconciler.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down membership service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.reconciler.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("membership service stopped")
	return nil
}

// initStore opens the configured store driver and applies migrations
func (app *Application) initStore(ctx context.Context) error {
	switch app.cfg.StoreDriver {
	case StoreDriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

	case StoreDriverFirestore:
		if app.cfg.FirestoreProjectID == "" {
			return errors.New("FIRESTORE_PROJECT_ID is required for the firestore store")
		}
		db, err := firestore.NewStore(ctx, firestore.Config{
			ProjectID:       app.cfg.FirestoreProjectID,
			CredentialsFile: app.cfg.FirebaseCredentials,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize firestore: %w", err)
		}
		app.db = db

	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", app.cfg.StoreDriver)
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("store ready", "driver", app.cfg.StoreDriver)
	return nil
}

func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store:     app.db,
		Hasher:    app.hasher,
		Signer:    app.signer,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTTL,
	}
	app.issuer = &service.RegistrationIssuer{Store: app.db, Metrics: app.metrics}
	app.validator = &service.QRValidator{Store: app.db, Metrics: app.metrics}
	app.activator = &service.Activator{
		Store:   app.db,
		Roles:   app.userService,
		Metrics: app.metrics,
	}
	app.memberService = &service.MemberService{Store: app.db}

	app.reconciler = service.NewReconciler(
		app.db,
		app.userService,
		app.metrics,
		app.logger,
		app.cfg.ReconcileInterval,
	)
}

func (app *Application) bootstrapAdmin(ctx context.Context) error {
	created, err := app.userService.EnsureAdmin(ctx, app.cfg.AdminUsername, app.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		app.logger.Info("bootstrap admin created", "username", app.cfg.AdminUsername)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.Limits = app.cfg.RateLimits
	router.MetricsHandler = promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})
	router.MetricsUser = app.cfg.MetricsUser
	router.MetricsPass = app.cfg.MetricsPass

	router.UserService = app.userService
	router.Issuer = app.issuer
	router.Validator = app.validator
	router.Activator = app.activator
	router.MemberService = app.memberService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
