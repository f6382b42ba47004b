package services

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/restaurant-manager/internal/database"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		parsed, err := time.Parse(models.DateLayout, day)
		if err != nil {
			panic(err)
		}
		return parsed.Add(13 * time.Hour)
	}
}

func seedDish(t *testing.T, db *gorm.DB, name string, price float64, ingredients ...string) {
	require.NoError(t, db.Create(&models.Dish{Name: name, Price: price}).Error)
	for _, ingredient := range ingredients {
		var count int64
		require.NoError(t, db.Model(&models.Ingredient{}).Where("ingredient_name = ?", ingredient).Count(&count).Error)
		if count == 0 {
			require.NoError(t, db.Create(&models.Ingredient{Name: ingredient, Supplier: "Acme", AmountOnHand: 10}).Error)
		}
		require.NoError(t, db.Create(&models.DishIngredient{DishName: name, IngredientName: ingredient}).Error)
	}
}

func seedOrder(t *testing.T, db *gorm.DB, id int, customer, dish string, total float64, date string) {
	require.NoError(t, db.Create(&models.Order{ID: id, CustomerName: customer, DishName: dish, TotalPrice: total, Date: date}).Error)
}

func amountOnHand(t *testing.T, db *gorm.DB, name string) int {
	var ingredient models.Ingredient
	require.NoError(t, db.Where("ingredient_name = ?", name).First(&ingredient).Error)
	return ingredient.AmountOnHand
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
