package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/config"
	"github.com/khesal1978-cpu/siku/internal/handlers"
	"github.com/khesal1978-cpu/siku/internal/pg"
	"github.com/khesal1978-cpu/siku/internal/repo"
	"github.com/khesal1978-cpu/siku/internal/repo/inmemory"
	"github.com/khesal1978-cpu/siku/internal/service"
	"github.com/khesal1978-cpu/siku/internal/sweeper"
	"github.com/khesal1978-cpu/siku/internal/ws"
	"github.com/khesal1978-cpu/siku/pkg/auth"
	"github.com/khesal1978-cpu/siku/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	hub     *ws.Hub
	sweeper *sweeper.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		zap.L().Error("build store failed: ", zap.Error(err))
		return fmt.Errorf("can't build store: %w", err)
	}

	a.cfg = cfg
	a.hub = ws.NewHub()
	a.srv = service.New(store, a.hub)

	var verifier auth.TokenVerifier
	if cfg.AuthSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.AuthSecret)
	}
	a.api = handlers.New(a.srv, a.hub, verifier)
	a.sweeper = sweeper.New(store, store, a.srv.MiningService, a.hub, cfg.EnergySweep, cfg.MiningSweep)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildStore picks the storage backend: a pgx pool with migrations applied
// when a DSN is configured, the in-memory store otherwise.
func buildStore(ctx context.Context, cfg *config.Config) (service.Storage, error) {
	if cfg.Database == "" {
		zap.L().Info("no database configured, using in-memory store")
		return inmemory.New(), nil
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
