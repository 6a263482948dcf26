package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-list-service.com/task-list-service/internal/configs"
	httpapi "task-list-service.com/task-list-service/internal/http"
	"task-list-service.com/task-list-service/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task list HTTP API on APP_HOST:APP_PORT",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		taskRepo, closeRepo, err := config.NewTaskRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		if _, err := taskRepo.LoadAll(ctx); err != nil {
			return fmt.Errorf("task store is not readable (run `tasks init` first): %w", err)
		}

		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s (storage: %s)", cfg.AppURL, cfg.StorageDriver)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
