package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/config"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/genai"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/middleware"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/service"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/session"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/pkg/logging"
)

var (
	portFlag     int
	logLevelFlag string
	envFileFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "calorie-tracker",
		Short:        "Single-user calorie and weight tracking server",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 0, "HTTP port (overrides CALORIE_PORT)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (overrides CALORIE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env", "dotenv file loaded before reading CALORIE_* variables, if present")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the Connect server",
		RunE:  runServe,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Variables already in the environment win over the file.
	envFileErr := godotenv.Load(envFileFlag)

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = portFlag
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel)
	if envFileErr != nil && !errors.Is(envFileErr, os.ErrNotExist) {
		slog.Warn("Failed to load env file", "path", envFileFlag, "error", envFileErr)
	}
	slog.Info("Configuration loaded", "config", cfg)

	ai := genai.New(cfg.Gemini())
	if !ai.Configured() {
		slog.Warn("CALORIE_GEMINI_API_KEY not set: meal scanning disabled, onboarding uses the default plan")
	}
	sess := session.New(session.Options{Planner: ai, Recognizer: ai})

	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(middleware.MetricsInterceptor(), middleware.LoggingInterceptor())
	trackerPath, trackerHandler := service.NewTrackerServiceHandler(service.NewTrackerService(sess), interceptors)
	mux.Handle(trackerPath, trackerHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.HTTPLogging(middleware.CORS(mux))

	// h2c serves HTTP/2 without TLS for Connect clients
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
