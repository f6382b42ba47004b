package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestockAddsFixedAmount(t *testing.T) {
	db := setupTestDB(t)
	seedDish(t, db, "Burger", 8.5, "Bun", "Patty")
	inventory := NewInventoryService(db)

	amount, err := inventory.Restock(context.Background(), "Bun")
	require.NoError(t, err)

	assert.Equal(t, 10+RestockAmount, amount)
	assert.Equal(t, 10+RestockAmount, amountOnHand(t, db, "Bun"))
	assert.Equal(t, 10, amountOnHand(t, db, "Patty"))
}

func TestRestockUnknownIngredient(t *testing.T) {
	db := setupTestDB(t)
	inventory := NewInventoryService(db)

	_, err := inventory.Restock(context.Background(), "Saffron")

	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.Zero(t, countRows(t, db, &models.Ingredient{}))
}

func TestLowIngredients(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]models.Ingredient{
		{Name: "Bun", Supplier: "Bakery", AmountOnHand: 9},
		{Name: "Patty", Supplier: "Butcher", AmountOnHand: 10},
		{Name: "Cheese", Supplier: "Dairy", AmountOnHand: -2},
	}).Error)
	inventory := NewInventoryService(db)

	low, err := inventory.LowIngredients(context.Background(), 10)
	require.NoError(t, err)

	names := make([]string, 0, len(low))
	for _, ingredient := range low {
		names = append(names, ingredient.Name)
	}
	assert.ElementsMatch(t, []string{"Bun", "Cheese"}, names)
}

func TestSuppliersGroupsIngredients(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]models.Ingredient{
		{Name: "Bun", Supplier: "Bakery", AmountOnHand: 10},
		{Name: "Patty", Supplier: "Butcher", AmountOnHand: 10},
		{Name: "Brioche", Supplier: "Bakery", AmountOnHand: 10},
	}).Error)
	inventory := NewInventoryService(db)

	suppliers, err := inventory.Suppliers(context.Background())
	require.NoError(t, err)

	grouped := make(map[string][]string)
	for _, supplier := range suppliers {
		grouped[supplier.Name] = supplier.Ingredients
	}
	assert.Len(t, suppliers, 2)
	assert.ElementsMatch(t, []string{"Bun", "Brioche"}, grouped["Bakery"])
	assert.Equal(t, []string{"Patty"}, grouped["Butcher"])
}

func TestListIngredientsEmpty(t *testing.T) {
	db := setupTestDB(t)
	inventory := NewInventoryService(db)

	ingredients, err := inventory.ListIngredients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ingredients)
}
