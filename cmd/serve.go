package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/killallgit/podcastr/api"
	apiVersion "github.com/killallgit/podcastr/api/version"
	"github.com/killallgit/podcastr/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Podcastr server",
	Long: `Start the Podcastr server with the configured settings.

The server renders the episode pages, keeps them fresh in the background
and exposes the player API and its WebSocket feed.

Example:
  podcastr serve
  podcastr serve --port 9090
  podcastr serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load config (lazy loading - only when serve command is run)
	if err := loadConfig(); err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost != "" {
		appConfig.Server.Host = serverHost
	}
	if serverPort != 0 {
		appConfig.Server.Port = serverPort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := newApplication(ctx, appConfig)
	if err != nil {
		return err
	}
	defer app.Close()

	apiVersion.Version = Version
	apiVersion.Commit = GitCommit
	apiVersion.BuildDate = BuildTime

	server := api.NewServer(appConfig)
	server.SetDependencies(app.deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	app.janitor.Start(ctx)

	if appConfig.Pages.PrerenderOnBoot {
		go prerender(ctx, app, appConfig)
	}

	log.Printf("[INFO] Starting Podcastr server on %s", server.Addr())

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal, command cancellation or server error
	var runErr error
	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case <-ctx.Done():
		log.Println("[INFO] Context cancelled, shutting down server...")
	case runErr = <-serverErr:
		log.Printf("[ERROR] %v", runErr)
	}

	shutdownTimeout := appConfig.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Println("[INFO] Server gracefully stopped")
	return runErr
}

// prerender warms the page cache with the home page and the latest episodes
func prerender(ctx context.Context, app *application, cfg *config.Config) {
	timeout := cfg.EpisodesAPI.Timeout * 4
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	start := time.Now()
	if _, err := app.pages.Prerender(ctx); err != nil {
		log.Printf("[WARN] Prerender failed after %v, pages will render on first request: %v", time.Since(start), err)
		return
	}
	log.Printf("[INFO] Page cache warmed in %v", time.Since(start))
}
