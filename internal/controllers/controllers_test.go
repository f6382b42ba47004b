package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/restaurant-manager/internal/database"
	"github.com/franciscosanchezn/restaurant-manager/internal/middleware"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	restaurant := NewRestaurantController(
		services.NewMenuService(db),
		services.NewOrderService(db),
		services.NewInventoryService(db),
		Limits{LowStockThreshold: 10, RecentOrdersLimit: 2},
	)
	reports := NewReportController(services.NewReportService(db))
	return NewRouter(restaurant, reports), db
}

func seedRestaurant(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&models.Dish{Name: "Pizza", Price: 12, ProfitMargin: 0.3}).Error)
	require.NoError(t, db.Create(&models.Dish{Name: "Salad", Price: 8, ProfitMargin: 0.5}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Cheese", Supplier: "Dairy Co", AmountOnHand: 4}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Lettuce", Supplier: "Farm", AmountOnHand: 20}).Error)
	require.NoError(t, db.Create(&models.DishIngredient{DishName: "Pizza", IngredientName: "Cheese"}).Error)
	require.NoError(t, db.Create(&models.DishIngredient{DishName: "Salad", IngredientName: "Lettuce"}).Error)

	orders := []models.Order{
		{ID: 1, CustomerName: "Ann", DishName: "Pizza", TotalPrice: 12, Date: "2024-05-06"},
		{ID: 2, CustomerName: "Bob", DishName: "Salad", TotalPrice: 8, Date: "2024-05-07"},
		{ID: 3, CustomerName: "Ann", DishName: "Pizza", TotalPrice: 12, Date: "2024-05-08"},
	}
	for _, order := range orders {
		require.NoError(t, db.Create(&order).Error)
	}
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target any) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(t, router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, ServiceName, body["service"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestGetMenu(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	w := get(t, router, "/api/v1/menu")

	assert.Equal(t, http.StatusOK, w.Code)
	var dishes []models.Dish
	decode(t, w, &dishes)
	assert.Len(t, dishes, 2)
}

func TestGetDishIngredients(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	t.Run("known dish", func(t *testing.T) {
		w := get(t, router, "/api/v1/menu/Pizza/ingredients")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			DishName    string   `json:"dish_name"`
			Ingredients []string `json:"ingredients"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Pizza", body.DishName)
		assert.Equal(t, []string{"Cheese"}, body.Ingredients)
	})

	t.Run("unknown dish", func(t *testing.T) {
		w := get(t, router, "/api/v1/menu/Sushi/ingredients")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var apiErr models.APIError
		decode(t, w, &apiErr)
		assert.Equal(t, models.ErrDishNotFound, apiErr.Code)
		assert.Equal(t, "Sushi", apiErr.Details["dish_name"])
	})
}

func TestGetRecentOrders(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	w := get(t, router, "/api/v1/orders/recent")

	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decode(t, w, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, 3, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
}

func TestGetInventory(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	t.Run("all", func(t *testing.T) {
		w := get(t, router, "/api/v1/inventory")

		assert.Equal(t, http.StatusOK, w.Code)
		var ingredients []models.Ingredient
		decode(t, w, &ingredients)
		assert.Len(t, ingredients, 2)
	})

	t.Run("low", func(t *testing.T) {
		w := get(t, router, "/api/v1/inventory/low")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Threshold   int                 `json:"threshold"`
			Ingredients []models.Ingredient `json:"ingredients"`
		}
		decode(t, w, &body)
		assert.Equal(t, 10, body.Threshold)
		require.Len(t, body.Ingredients, 1)
		assert.Equal(t, "Cheese", body.Ingredients[0].Name)
	})
}

func TestGetSuppliers(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	w := get(t, router, "/api/v1/suppliers")

	assert.Equal(t, http.StatusOK, w.Code)
	var suppliers []models.Supplier
	decode(t, w, &suppliers)
	assert.Len(t, suppliers, 2)
}

func TestReports(t *testing.T) {
	router, db := setupTestRouter(t)
	seedRestaurant(t, db)

	t.Run("list", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports")

		assert.Equal(t, http.StatusOK, w.Code)
		var reports []map[string]string
		decode(t, w, &reports)
		assert.Len(t, reports, len(services.Reports))
		assert.Equal(t, "best-sellers", reports[0]["name"])
	})

	t.Run("best sellers", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/best-sellers")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Name string                `json:"name"`
			Data []models.RankedAmount `json:"data"`
		}
		decode(t, w, &body)
		assert.Equal(t, "best-sellers", body.Name)
		require.Len(t, body.Data, 2)
		assert.Equal(t, models.RankedAmount{Name: "Pizza", Total: 24}, body.Data[0])
	})

	t.Run("weekly sales", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/weekly-sales")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []models.RankedAmount `json:"data"`
		}
		decode(t, w, &body)
		require.Len(t, body.Data, 7)
		for i, day := range body.Data {
			assert.Equal(t, models.Weekdays[i], day.Name)
		}
		assert.Equal(t, 0.0, body.Data[0].Total)
		assert.Equal(t, 12.0, body.Data[1].Total)
		assert.Equal(t, 8.0, body.Data[2].Total)
		assert.Equal(t, 12.0, body.Data[3].Total)
		assert.Contains(t, w.Body.String(), `"data":[{"name":"Sunday"`)
	})

	t.Run("unknown report", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var apiErr models.APIError
		decode(t, w, &apiErr)
		assert.Equal(t, models.ErrReportNotFound, apiErr.Code)
	})
}

func TestSwaggerDoc(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(t, router, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	decode(t, w, &doc)
	assert.Equal(t, "2.0", doc["swagger"])
	info, ok := doc["info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Restaurant Manager API", info["title"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, path := range []string{"/health", "/api/v1/menu", "/api/v1/menu/{name}/ingredients", "/api/v1/orders/recent",
		"/api/v1/inventory", "/api/v1/inventory/low", "/api/v1/suppliers", "/api/v1/reports", "/api/v1/reports/{name}"} {
		assert.Contains(t, paths, path)
	}
}

func TestNoRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(t, router, "/api/v1/pizzas")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var apiErr models.APIError
	decode(t, w, &apiErr)
	assert.Equal(t, models.ErrNotFound, apiErr.Code)
}

func TestInternalErrorHidesCause(t *testing.T) {
	router, db := setupTestRouter(t)
	require.NoError(t, db.Migrator().DropTable(&models.Dish{}))

	w := get(t, router, "/api/v1/menu")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var apiErr models.APIError
	decode(t, w, &apiErr)
	assert.Equal(t, models.ErrInternalServer, apiErr.Code)
	assert.Equal(t, "Failed to retrieve menu", apiErr.Message)
}
