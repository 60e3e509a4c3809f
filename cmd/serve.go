package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/api"
	api_i "github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-mazegen/api/maze"
	metricsapi "github.com/beka-birhanu/vinom-mazegen/api/metrics"
	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves freshly generated mazes over HTTP and exposes generation metrics to authenticated scrapers.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, a.cfg)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	appLogger := newLogger("APP", config.ColorGreen, cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}
	appLogger.Info("Metrics initialized")

	var tokenizer i.Tokenizer
	if cfg.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET is empty, protected routes are disabled")
	} else if tokenizer, err = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer); err != nil {
		return err
	} else {
		appLogger.Info("JWT Tokenizer initialized")
	}

	mazeController, err := mazeapi.NewMazeController(cfg.MaxDimension, recorder, newLogger("MAZE-API", config.ColorCyan, cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Config{
		Addr:                    cfg.Addr(),
		BaseURL:                 "/api",
		GinMode:                 cfg.GinMode,
		Controllers:             []api_i.Controller{mazeController, metricsapi.NewMetricsController(reg)},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	appLogger.Info("Router initialized")

	srv := &http.Server{
		Addr:    router.Addr(),
		Handler: router.Handler(),
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		appLogger.Info(fmt.Sprintf("Listening on %s", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("starting server: %w", err)

	case <-ctx.Done():
		appLogger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error(fmt.Sprintf("Graceful shutdown did not complete in %v: %v", shutdownTimeout, err))
			return srv.Close()
		}
		appLogger.Info("Server stopped gracefully")
		return nil
	}
}
