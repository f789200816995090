package main

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buildquote/backend/internal/app"
	"buildquote/backend/internal/app/config"
	"buildquote/backend/internal/app/logging"
	"buildquote/backend/internal/domain/quote"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quotesvc",
		Short:        "Building photo estimates and quote logging",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the quote tables and exit",
			Args:  cobra.NoArgs,
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "detect <image>",
			Short: "Estimate windows and height for a local photo",
			Args:  cobra.ExactArgs(1),
			RunE:  runDetect,
		},
	)
	return root
}

func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("tables ready", zap.String("database", redact(cfg.DatabaseURL)))
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if _, err := os.Stat(args[0]); err != nil {
		return err
	}

	ctx := cmd.Context()
	detector, vision := app.NewDetector(ctx, cfg, nil, log)
	defer vision.Close()

	out := detector.Detect(ctx, args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "windows=%d height=%.1f source=%s\n",
		out.Count, quote.EstimateHeight(out.Count), out.Source)
	return nil
}

// redact hides the password of a database URL before it is logged.
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
