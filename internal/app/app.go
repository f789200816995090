package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"buildquote/backend/internal/app/config"
	apphttp "buildquote/backend/internal/app/http"
	"buildquote/backend/internal/app/http/handlers"
	"buildquote/backend/internal/domain/quote/pdf/gofpdf"
	"buildquote/backend/internal/infra/db"
	"buildquote/backend/internal/infra/upload"
)

const shutdownTimeout = 10 * time.Second

// OpenStore opens the configured quote store and creates its tables.
func OpenStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	store, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("db: %w", err)
	}
	return store, nil
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	detector, vision := NewDetector(ctx, cfg, nil, log)
	defer vision.Close()

	h := handlers.New(store, detector, upload.New(cfg.UploadDir), gofpdf.New(), log, cfg.MaxUploadBytes)
	router := apphttp.NewRouter(cfg, h, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
