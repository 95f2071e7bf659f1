package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wlabs/patient-console/internal/api"
	"github.com/wlabs/patient-console/internal/config"
	"github.com/wlabs/patient-console/internal/console"
	"github.com/wlabs/patient-console/internal/platform/middleware"
	"github.com/wlabs/patient-console/internal/stubserver"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "patient-console",
		Short: "Administrative console for patient records",
	}

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(stubServerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes to stderr so log events never interleave with the
// interactive output on stdout.
func newLogger(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive patient console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole()
		},
	}
}

func runConsole() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg.IsDev())

	client := api.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, logger)
	ui := console.New(client, logger)

	repl := newREPL(ui, client, os.Stdin, os.Stdout, logger)
	return repl.Run(context.Background())
}

func stubServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stub-server",
		Short: "Run an in-memory stand-in for the remote patient service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStubServer()
		},
	}
}

func runStubServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg.IsDev())

	store := stubserver.NewStore()
	if cfg.StubSeed {
		stubserver.Seed(store)
		logger.Info().Msg("seeded demo patients")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second))
	e.Use(middleware.BodyLimit("1M"))

	handler := stubserver.NewHandler(store, logger)
	handler.RegisterRoutes(e.Group("/api"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("stub patient service listening")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info().Msg("shutting down")
	return e.Shutdown(shutdownCtx)
}
