package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController exposes the menu, orders and inventory listings
type RestaurantController interface {
	// GetMenu retrieves every dish with its price
	GetMenu(c *gin.Context)
	// GetDishIngredients retrieves the ingredient links of one dish
	GetDishIngredients(c *gin.Context)
	// GetRecentOrders retrieves the most recent orders
	GetRecentOrders(c *gin.Context)
	// GetInventory retrieves every ingredient
	GetInventory(c *gin.Context)
	// GetLowInventory retrieves the ingredients under the low stock threshold
	GetLowInventory(c *gin.Context)
	// GetSuppliers retrieves the suppliers with the ingredients they deliver
	GetSuppliers(c *gin.Context)
}

// Limits bounds the listings served over HTTP
type Limits struct {
	LowStockThreshold int
	RecentOrdersLimit int
}

type restaurantController struct {
	menu      services.MenuService
	orders    services.OrderService
	inventory services.InventoryService
	limits    Limits
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(menu services.MenuService, orders services.OrderService, inventory services.InventoryService, limits Limits) RestaurantController {
	return &restaurantController{menu: menu, orders: orders, inventory: inventory, limits: limits}
}

// GetMenu godoc
// @Summary Get the menu
// @Description Get every dish with its price and profit margin
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {array} models.Dish
// @Failure 500 {object} models.APIError
// @Router /api/v1/menu [get]
func (rc *restaurantController) GetMenu(c *gin.Context) {
	dishes, err := rc.menu.ListDishes(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to retrieve menu", err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GetDishIngredients godoc
// @Summary Get the ingredients of a dish
// @Description Get the ingredient links of one dish, duplicated links included
// @Tags menu
// @Accept json
// @Produce json
// @Param name path string true "Dish name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/menu/{name}/ingredients [get]
func (rc *restaurantController) GetDishIngredients(c *gin.Context) {
	name := c.Param("name")

	exists, err := rc.menu.DishExists(c.Request.Context(), name)
	if err != nil {
		internalError(c, "Failed to look up dish", err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrDishNotFound, "Dish not found",
			map[string]interface{}{"dish_name": name}))
		return
	}

	ingredients, err := rc.menu.DishIngredients(c.Request.Context(), name)
	if err != nil {
		internalError(c, "Failed to retrieve dish ingredients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish_name": name, "ingredients": ingredients})
}

// GetRecentOrders godoc
// @Summary Get recent orders
// @Description Get the newest orders, newest date first then highest order id
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/v1/orders/recent [get]
func (rc *restaurantController) GetRecentOrders(c *gin.Context) {
	orders, err := rc.orders.RecentOrders(c.Request.Context(), rc.limits.RecentOrdersLimit)
	if err != nil {
		internalError(c, "Failed to retrieve recent orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetInventory godoc
// @Summary Get the inventory
// @Description Get every ingredient with its supplier and amount on hand
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /api/v1/inventory [get]
func (rc *restaurantController) GetInventory(c *gin.Context) {
	ingredients, err := rc.inventory.ListIngredients(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to retrieve inventory", err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GetLowInventory godoc
// @Summary Get low ingredients
// @Description Get the ingredients with less than the low stock threshold on hand
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /api/v1/inventory/low [get]
func (rc *restaurantController) GetLowInventory(c *gin.Context) {
	ingredients, err := rc.inventory.LowIngredients(c.Request.Context(), rc.limits.LowStockThreshold)
	if err != nil {
		internalError(c, "Failed to retrieve low ingredients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"threshold": rc.limits.LowStockThreshold, "ingredients": ingredients})
}

// GetSuppliers godoc
// @Summary Get suppliers
// @Description Get every supplier with the ingredients it delivers
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} models.Supplier
// @Failure 500 {object} models.APIError
// @Router /api/v1/suppliers [get]
func (rc *restaurantController) GetSuppliers(c *gin.Context) {
	suppliers, err := rc.inventory.Suppliers(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to retrieve suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// internalError logs the cause and hides it from the client
func internalError(c *gin.Context, message string, err error) {
	log.WithError(err).WithField("path", c.FullPath()).Error(message)
	c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, message))
}
