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

	"github.com/veldmarket/auction-engine/internal/config"
	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/internal/handlers"
	"github.com/veldmarket/auction-engine/internal/pg"
	"github.com/veldmarket/auction-engine/internal/repo"
	"github.com/veldmarket/auction-engine/internal/scheduler"
	"github.com/veldmarket/auction-engine/internal/service"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/clock"
	"github.com/veldmarket/auction-engine/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	bus   *events.Bus
	sweep *scheduler.Service
	sink  *events.KafkaSink

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	clk := clock.New()
	a.cfg = cfg
	a.bus = events.NewBus()
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, a.bus, clk)
	a.api = handlers.New(a.srv, cfg, a.bus, auth.NewJWTService(cfg.JWTSecret))
	a.sweep = scheduler.New(a.repo.AuctionRepo, a.srv.Lifecycle, clk, cfg.SweepInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.sweep.Start(ctx)

	if err = a.startKafkaMirror(ctx); err != nil {
		return fmt.Errorf("can't start kafka mirror: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
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

// startKafkaMirror forwards bus events onto Kafka when brokers are
// configured. An empty broker list disables the mirror.
func (a *Application) startKafkaMirror(ctx context.Context) error {
	if a.cfg.KafkaBrokers == "" {
		return nil
	}

	sink, err := events.NewKafkaSink(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
	if err != nil {
		return err
	}
	a.sink = sink

	sub, cancelSub := a.bus.Subscribe(256)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer cancelSub()
		defer sink.Close()
		sink.Run(ctx, sub)
	}()

	return nil
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
