package controllers

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/restaurant-manager/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-manager/internal/middleware"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ServiceName is reported by the health check
const ServiceName = "restaurant-manager"

// NewRouter wires every read-only route onto a fresh gin engine
func NewRouter(restaurant RestaurantController, reports ReportController) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	setupRoutes(router, restaurant, reports)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Route not found"))
	})
	return router
}

func setupRoutes(router *gin.Engine, restaurant RestaurantController, reports ReportController) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/menu", restaurant.GetMenu)
		v1.GET("/menu/:name/ingredients", restaurant.GetDishIngredients)
		v1.GET("/orders/recent", restaurant.GetRecentOrders)
		v1.GET("/inventory", restaurant.GetInventory)
		v1.GET("/inventory/low", restaurant.GetLowInventory)
		v1.GET("/suppliers", restaurant.GetSuppliers)

		v1.GET("/reports", reports.ListReports)
		v1.GET("/reports/:name", reports.GetReport)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}
