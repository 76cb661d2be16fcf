package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dconn.dev/showcase/internal/config"
	"dconn.dev/showcase/internal/handlers"
	"dconn.dev/showcase/internal/services"
)

const shutdownTimeout = 5 * time.Second

// serveCmd runs the web front end
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the showcase web page",
	Long: `Serves the projects showcase page, its htmx fragments and a JSON
passthrough at /api/projects. Projects are fetched from SHOWCASE_API_BASE_URL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting showcase server",
			zap.String("addr", cfg.ServerAddr),
			zap.String("api", cfg.APIBaseURL))
		return serveHTTP(cmd.Context(), cfg.ServerAddr, handlers.SetupRoutes(cfg, logger), logger)
	},
}

// catalogCmd runs the catalog stub API
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Serve the projects API from a local fixture",
	Long: `Serves GET /ps/projects?category={id} from the fixture at
SHOWCASE_DATA_PATH/projects.json. Point SHOWCASE_API_BASE_URL at it to run the
showcase without the remote API. Set SHOWCASE_CATALOG_FAIL=true to make every
list request fail.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := config.LoadCatalog(cfg.CatalogPath())
		if err != nil {
			return err
		}
		projectService := services.NewProjectService(catalog)

		logger.Info("starting catalog server",
			zap.String("addr", cfg.CatalogAddr),
			zap.Int("projects", projectService.Len()),
			zap.Bool("fail", cfg.CatalogFail))
		return serveHTTP(cmd.Context(), cfg.CatalogAddr, handlers.SetupCatalogRoutes(cfg, projectService, logger), logger)
	},
}

// serveHTTP serves handler on addr until ctx is done, then shuts down
func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return serveListener(ctx, ln, handler, logger)
}

func serveListener(ctx context.Context, ln net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", zap.String("addr", ln.Addr().String()))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
