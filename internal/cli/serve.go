package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"mvp_launchpad/api"
	handlers "mvp_launchpad/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		// Select Gin mode based on APP_ENV
		if cfg.AppEnv == "production" {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
			log.Println("Running in Gin Debug Mode")
		}

		apiHandler := handlers.NewAPIHandler(a.Orchestrator, a.History, a.Usage)
		router := api.NewRouter(apiHandler, cfg.Origins())

		server := &http.Server{
			Addr:    cfg.ServerAddress,
			Handler: router,
			// Generation makes two sequential model calls, so writes get more room than reads.
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 3 * time.Minute,
			IdleTimeout:  60 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			log.Printf("Starting API server on %s\n", cfg.ServerAddress)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			log.Println("API server has stopped listening.")
		}()

		// --- Graceful Shutdown ---
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-quit:
			log.Printf("Received signal: %s. Shutting down server...", sig)
		case err := <-serverErr:
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server forced shutdown error: %v", err)
		} else {
			log.Println("API server gracefully stopped.")
		}

		log.Println("Application exiting.")
		return nil
	},
}
