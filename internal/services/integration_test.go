//go:build integration
// +build integration

package services

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/restaurant-manager/internal/database"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupPostgres starts a PostgreSQL container and opens the store on it
func setupPostgres(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("restaurant"),
		postgres.WithUsername("restaurant"),
		postgres.WithPassword("restaurant"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.Open(database.DatabaseConfig{
		Driver:   "postgres",
		Host:     host,
		Port:     port.Port(),
		User:     "restaurant",
		Password: "restaurant",
		Name:     "restaurant",
		SSLMode:  "disable",
		Attempts: 3,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestOrderWorkflowOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	menu := NewMenuService(db)
	orders := NewOrderService(db, WithClock(fixedClock("2024-05-06")))
	reports := NewReportService(db)

	require.NoError(t, menu.AddDish(ctx, models.Dish{Name: "Burger", Price: 8.5, ProfitMargin: 2}, []string{"Bun", "Patty"}))

	_, err := orders.PlaceOrder(ctx, "Alice", "Pizza")
	assert.ErrorIs(t, err, ErrDishNotFound)

	order, err := orders.PlaceOrder(ctx, "Alice", "Burger")
	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 9, amountOnHand(t, db, "Bun"))

	best, err := reports.BestSellingDishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RankedAmount{{Name: "Burger", Total: 8.5}}, best)

	sales, err := reports.WeeklySales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.5, sales[1])

	_, err = NewQueryService(db).Run(ctx, "SELECT * FROM missing_table")
	assert.ErrorIs(t, err, ErrStoreRejected)
}
