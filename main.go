package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/joaomarcosmb/cd-rental/app/echoServer"
	"github.com/joaomarcosmb/cd-rental/config"
	"github.com/joaomarcosmb/cd-rental/repository"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

func main() {

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("store init failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e := echoServer.New(st, log, reg)

	go func() {
		log.Info("starting server", "port", cfg.Port, "driver", cfg.StoreDriver, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
}

func openStore(ctx context.Context, cfg config.App, log *slog.Logger) (repository.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return memory.New(), func() {}, nil
	}

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("schema ensured")
	}
	return repository.NewPgStore(db.Pool), db.Close, nil
}
