package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/samandr77/microservices/journal/internal/api"
	"github.com/samandr77/microservices/journal/internal/clients/auth"
	"github.com/samandr77/microservices/journal/internal/repository"
	"github.com/samandr77/microservices/journal/internal/service"
	"github.com/samandr77/microservices/journal/pkg/config"
	"github.com/samandr77/microservices/journal/pkg/lock"
	"github.com/samandr77/microservices/journal/pkg/logger"
	"github.com/samandr77/microservices/journal/pkg/metrics"
	"github.com/samandr77/microservices/journal/pkg/postgres"
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format, os.Stdout)
	panicOnErr("init logger", err)

	location, err := cfg.Journal.Location()
	panicOnErr("load journal time zone", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	slog.InfoContext(ctx, "database is up to date", "applied", len(applied))

	var locker service.Locker = lock.Nop{}

	if cfg.Redis.Addr != "" {
		rdb, err := lock.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		panicOnErr("connect to redis", err)
		defer rdb.Close()

		locker = lock.New(rdb, cfg.Redis.LockTTL)
	} else {
		slog.WarnContext(ctx, "redis address is empty, get-or-create runs without distributed lock")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	repo := repository.New(pool)

	s := service.New(repo, repo, repo, repo, locker, metrics.New(reg), service.Config{
		Location:      location,
		PhoneRegion:   cfg.Journal.PhoneRegion,
		MaxCandidates: cfg.Journal.MaxCandidates,
		PageSize:      cfg.Journal.PageSize,
		MaxPageSize:   cfg.Journal.MaxPageSize,
	})

	authClient := auth.NewClient(cfg.Auth)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authClient)

	router := api.NewRouter(handler, mw, metrics.Handler(reg))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
