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

	"github.com/deppfellow/go-qna/internal/config"
	"github.com/deppfellow/go-qna/internal/handler"
	"github.com/deppfellow/go-qna/internal/logger"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/router"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		port            string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Load configuration from QNA_* environment variables, connect to PostgreSQL and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			loggerService := logger.NewLoggerService(cfg.Observability)
			defer loggerService.Shutdown()

			log := logger.NewLoggerWithService(cfg.Observability, loggerService)

			srv, err := server.New(cfg, &log, loggerService)
			if err != nil {
				log.Error().Err(err).Msg("failed to initialize server")
				return err
			}

			repos := repository.NewRepositories(srv)
			services, err := service.NewService(srv, repos)
			if err != nil {
				_ = srv.Shutdown(context.Background())
				return fmt.Errorf("could not create services: %w", err)
			}

			handlers := handler.NewHandlers(srv, services)
			srv.SetupHTTPServer(router.NewRouter(srv, handlers))

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case sig := <-sigCh:
				log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
			case err := <-errCh:
				log.Error().Err(err).Msg("server stopped unexpectedly")
				_ = srv.Shutdown(context.Background())
				return fmt.Errorf("qna server error: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return err
			}

			log.Info().Msg("server exited properly")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port, overrides QNA_SERVER.PORT")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")

	return cmd
}
