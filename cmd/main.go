package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Morningstar stock reports with dot-notation field extraction.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Stock reports, field extraction and the performance ID directory
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/ingestion"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// splitFields turns "a.b, c[0]" into ["a.b", "c[0]"], dropping blanks.
func splitFields(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// runExtract resolves fields against the stock data of performanceID and writes the
// result to w as indented JSON.
//
// Returns an error when the input is incomplete, the request fails, or no stock data
// exists for performanceID.
func runExtract(ctx context.Context, svc service.StockService, performanceID string, fields []string, w io.Writer) error {
	performanceID = strings.TrimSpace(performanceID)
	if performanceID == "" {
		return errors.New("--id is required")
	}
	if len(fields) == 0 {
		return errors.New("--fields must name at least one path")
	}

	out, err := svc.ExtractStockData(ctx, performanceID, fields)
	if err != nil {
		return fmt.Errorf("extract %s: %w", performanceID, err)
	}
	if out == nil {
		return fmt.Errorf("no stock data for %s", performanceID)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API (default).
//   - extract: Fetches one stock and prints the requested fields as JSON. No database needed.
//   - import:  Resolves every listing of a watchlist file into the stock directory.
//
// Flags:
//   - --mode:   Execution mode ("api", "extract" or "import"). Default: "api".
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --id:     Performance ID for extract mode.
//   - --fields: Comma separated dotted paths for extract mode.
//   - --file:   Watchlist file ("Exchange;Ticker" header) for import mode.
//   - --parallel: How many listings to resolve concurrently in import mode (0=auto, max 8).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, extract or import")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	id := flag.String("id", "", "Performance ID for extract mode")
	fields := flag.String("fields", "", "Comma separated field paths for extract mode")
	file := flag.String("file", "./data/watchlist.csv", "Watchlist file for import mode")
	parallel := flag.Int("parallel", 0, "How many listings to resolve concurrently (0=auto up to CPU, max 8)")
	flag.Parse()

	switch *mode {
	case "extract":
		// stdout carries the JSON result
		logger.Set(logger.L().Output(os.Stderr))

		timeout := config.AppConfig.Server.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		extractCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		svc := app.NewStockService(config.AppConfig, nil)
		if err := runExtract(extractCtx, svc, *id, splitFields(*fields), os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("extraction failed")
		}

	case "import":
		logger.L().Info().Str("file", *file).Msg("running watchlist import")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		svc := app.NewStockService(config.AppConfig, db)
		sum, err := ingestion.ImportWatchlist(ctx, *file, svc, *parallel)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Int("resolved", sum.Resolved).Int("unknown", sum.Unknown).Msg("import completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
