package main

import (
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/antigravity/golftracker/internal/config"
	"github.com/antigravity/golftracker/internal/handlers"
	"github.com/antigravity/golftracker/internal/storage"
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newRepository(cfg config.StorageConfig) (storage.Repository, error) {
	switch cfg.Backend {
	case "sqlite":
		return storage.NewSQLiteRepository(cfg.SQLitePath)
	case "memory":
		return storage.NewMemoryRepository(), nil
	default:
		return storage.NewFileRepository(cfg.DataDir)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	repo, err := newRepository(cfg.Storage)
	if err != nil {
		logger.Error("init storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	if closer, ok := repo.(io.Closer); ok {
		defer closer.Close()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/api", handlers.New(repo, logger).Routes())

	logger.Info("server started", "addr", cfg.ListenAddr, "backend", cfg.Storage.Backend)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
