package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/resumegenie/backend/agent"
	_ "github.com/resumegenie/backend/docs"
	"github.com/resumegenie/backend/gemini"
	"github.com/resumegenie/backend/handlers"
	"github.com/resumegenie/backend/rendering"
	"github.com/resumegenie/backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Bool("vertex", cfg.UseVertex()).Str("model", cfg.GeminiModel).Msg("Initializing AI client")
	generator, err := gemini.NewGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize AI client: %w", err)
	}

	resumeAgent := agent.NewResumeAgent(cfg, generator, utils.NewDocumentExtractor())
	defer resumeAgent.Close()

	renderer := rendering.NewChromeRenderer(cfg.ChromePath, time.Duration(cfg.PDFRenderTimeoutSeconds)*time.Second)
	pdfGenerator := rendering.NewPDFGenerator(renderer)

	router := handlers.NewRouter(cfg, handlers.Dependencies{
		Resume: resumeAgent,
		PDF:    pdfGenerator,
		Tools:  resumeAgent.GetToolRegistry(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
