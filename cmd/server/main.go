package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"slideforge/internal/captions"
	"slideforge/internal/config"
	"slideforge/internal/deck"
	"slideforge/internal/logger"
	"slideforge/internal/metrics"
	"slideforge/internal/pipeline"
	"slideforge/internal/server"
	"slideforge/internal/storage"
	"slideforge/internal/store"
	"slideforge/internal/summarizer"
	"slideforge/internal/youtube"
)

const configPath = "config.yaml"

func main() {
	ctx := context.Background()

	// Secrets come from the environment; .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Slideforge: video to slide-deck service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Target language: %s", cfg.YouTube.TargetLanguage)
	log.Info(ctx, "Max video duration: %ds", cfg.YouTube.MaxDurationSeconds)
	log.Info(ctx, "Slides per deck: %d", cfg.Slides.Count)

	if err := os.MkdirAll(cfg.Paths.Scratch, 0755); err != nil {
		log.Error(ctx, "Failed to create scratch directory: %v", err)
		os.Exit(1)
	}

	records, closeDB, err := buildRepository(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to set up record store: %v", err)
		os.Exit(1)
	}
	defer closeDB()

	videos := youtube.New(
		cfg.YouTube.APIHost,
		cfg.YouTube.APIKey,
		cfg.YouTube.TargetLanguage,
		time.Duration(cfg.YouTube.TimeoutSeconds)*time.Second,
		log,
	)
	caps := captions.New(time.Duration(cfg.YouTube.TimeoutSeconds)*time.Second, log)
	summ := summarizer.New(
		cfg.Gemini.APIKeys,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		log,
	)
	renderer := deck.New(cfg.Paths.Scratch, log)
	objects := storage.New(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Bucket, log)
	met := metrics.New()

	pipe := pipeline.New(
		videos, caps, summ, renderer, objects, records,
		met, log,
		cfg.YouTube.MaxDurationSeconds, cfg.Slides.Count,
	)

	h := server.NewHandler(pipe, records, objects, log)

	r := chi.NewRouter()
	r.Get("/healthz", h.Healthz)
	r.Method(http.MethodGet, "/metrics", met.Handler())
	r.Route("/presentations", func(r chi.Router) {
		r.Post("/", h.GeneratePresentation)
		r.Get("/", h.ListPresentations)
		r.Get("/{id}", h.GetPresentation)
		r.Delete("/{id}", h.DeletePresentation)
	})

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Hot reload of runtime tunables.
	go func() {
		err := config.Watch(ctx, configPath, func(updated *config.Config) {
			log.SetLevel(updated.Logging.Level)
			if tunable, ok := pipe.(interface{ SetSlideCount(int) }); ok {
				tunable.SetSlideCount(updated.Slides.Count)
			}
			log.Info(ctx, "Config reloaded: level=%s slides=%d", updated.Logging.Level, updated.Slides.Count)
		})
		if err != nil && err != context.Canceled {
			log.Warn(ctx, "Config watcher stopped: %v", err)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on :%s", cfg.Server.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Slideforge stopped")
}

// buildRepository returns a postgres-backed repository when DATABASE_URL is
// set, and an in-memory one otherwise (records are lost on restart).
func buildRepository(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Repository, func(), error) {
	if cfg.Database.DSN == "" {
		log.Warn(ctx, "DATABASE_URL not set, using in-memory record store")
		return store.NewInMemoryRepository(), func() {}, nil
	}

	db, err := store.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}

	repo := store.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repo, func() { _ = db.Close() }, nil
}
