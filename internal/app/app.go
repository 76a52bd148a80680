package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	_ "clientapi/docs"
	"clientapi/internal/config"
	"clientapi/internal/handlers"
	"clientapi/internal/middleware"
	"clientapi/internal/routes"
	"clientapi/internal/services"
)

// NewRouter builds the gin engine with every route wired.
func NewRouter(cfg *config.Config) *gin.Engine {
	// === Services ===
	userService := services.NewUserService()
	clientService := services.NewClientService(cfg.Fetch.Steps, cfg.Fetch.StepDelay)
	log.Printf("[INFO] Client lookups take %s each (%d steps)", clientService.LookupDuration(), cfg.Fetch.Steps)

	// === Handlers ===
	rootHandler := handlers.NewRootHandler()
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	return routes.SetupRoutes(router, rootHandler, userHandler, clientHandler, cfg.Docs.Enabled)
}

// Run serves until ctx is cancelled, then drains in-flight requests
// for at most cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.Server.Mode)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: NewRouter(cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[INFO] Shutting down, waiting up to %s for in-flight requests", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
