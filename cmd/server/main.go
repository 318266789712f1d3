package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/config"
	"github.com/lojf/ecaplanner/internal/db"
	"github.com/lojf/ecaplanner/internal/events"
	"github.com/lojf/ecaplanner/internal/handlers"
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/services"
	"github.com/lojf/ecaplanner/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	conn, err := db.Open(cfg.DBPath, nil)
	if err != nil {
		return err
	}
	log.Info("database ready (sqlite)", "path", cfg.DBPath)

	reg, err := catalog.LoadRegistry(ctx, existingCatalogs(cfg.CatalogFiles, log))
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}
	for _, c := range reg.Loaded() {
		log.Info("catalog loaded", "campus", c, "activities", reg.For(c).Len())
	}

	events.OnSelectionChanged = func(ch events.SelectionChange) {
		log.Debug("selection changed",
			"child_id", ch.ChildID, "campus", ch.Campus,
			"activity_id", ch.ActivityID, "added", ch.Added, "reset", ch.Reset)
	}

	env := &handlers.Env{
		Svc:           services.New(conn, reg, cfg.Pricing, log),
		Log:           log,
		PublicBaseURL: cfg.PublicBaseURL,
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.Router(env),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("ECA planner listening", "addr", cfg.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// existingCatalogs drops campuses whose file is missing so the server still
// starts; their catalog is empty.
func existingCatalogs(files map[catalog.Campus]string, log *logger.Logger) map[catalog.Campus]string {
	out := make(map[catalog.Campus]string, len(files))
	for campus, path := range files {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			log.Warn("catalog unavailable, campus will be empty", "campus", campus, "path", path, "error", err)
			continue
		}
		out[campus] = path
	}
	return out
}
