package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"dashgen/adapters/postgres"
	"dashgen/app"
	"dashgen/internal/config"
	"dashgen/internal/ingest"
	"dashgen/internal/insight"
	"dashgen/internal/logging"
	"dashgen/internal/memory"
	"dashgen/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewFromEnv("API")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to prepare pattern schema: %v", err)
	}

	repo := postgres.NewPatternRepository(db)
	mem := memory.NewService(repo, cfg.Memory, logger)
	engine := insight.NewEngine(logger)
	ingestor := ingest.NewIngestor(logger)

	service, err := app.NewGenerationService(ingestor, engine, mem, cfg.Cache.Size, logger)
	if err != nil {
		log.Fatalf("Failed to create generation service: %v", err)
	}

	server := ui.NewServer(service, logger)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("shut down cleanly")
}
