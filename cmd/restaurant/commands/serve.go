package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/restaurant-manager/docs"
	"github.com/franciscosanchezn/restaurant-manager/internal/controllers"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only JSON API",
	Long: `Serve the menu, inventory and sales reports as JSON.

The API never writes to the store. It binds APP_HOST:APP_PORT, which defaults
to 127.0.0.1:8080.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if configuration.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter()
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	docs.SwaggerInfo.Host = addr
	server := &http.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting server on %s", addr)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", addr)
	return runServer(ctx, server)
}

// setupRouter initializes the Gin router over the open store
func setupRouter() *gin.Engine {
	svc := newServices()
	restaurant := controllers.NewRestaurantController(svc.Menu, svc.Orders, svc.Inventory, controllers.Limits{
		LowStockThreshold: configuration.LowStockThreshold,
		RecentOrdersLimit: configuration.RecentOrdersLimit,
	})
	return controllers.NewRouter(restaurant, controllers.NewReportController(svc.Reports))
}

// runServer blocks until ctx ends or the listener fails
func runServer(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
