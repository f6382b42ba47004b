package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestockAmount is the fixed quantity added by one stock order
const RestockAmount = 10

// InventoryService reads and replenishes ingredient stock
type InventoryService interface {
	// ListIngredients retrieves every stocked ingredient
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	// Suppliers groups ingredient names by supplier
	Suppliers(ctx context.Context) ([]models.Supplier, error)
	// LowIngredients lists ingredients with less than threshold units on hand
	LowIngredients(ctx context.Context, threshold int) ([]models.Ingredient, error)
	// Restock adds RestockAmount units of an ingredient and returns the new amount
	Restock(ctx context.Context, name string) (int, error)
}

type inventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(db *gorm.DB) InventoryService {
	return &inventoryService{db: db}
}

func (s *inventoryService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Suppliers keeps suppliers in the order they are first seen
func (s *inventoryService) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	ingredients, err := s.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var suppliers []models.Supplier
	for _, ingredient := range ingredients {
		i, ok := index[ingredient.Supplier]
		if !ok {
			i = len(suppliers)
			index[ingredient.Supplier] = i
			suppliers = append(suppliers, models.Supplier{Name: ingredient.Supplier})
		}
		suppliers[i].Ingredients = append(suppliers[i].Ingredients, ingredient.Name)
	}
	return suppliers, nil
}

func (s *inventoryService) LowIngredients(ctx context.Context, threshold int) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("amount_on_hand < ?", threshold).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *inventoryService) Restock(ctx context.Context, name string) (int, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Ingredient{}).
			Where("ingredient_name = ?", name).
			UpdateColumn("amount_on_hand", gorm.Expr("amount_on_hand + ?", RestockAmount))
		if result.Error != nil {
			return fmt.Errorf("restock %q: %w", name, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrIngredientNotFound
		}
		if err := tx.Where("ingredient_name = ?", name).First(&ingredient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return fmt.Errorf("read back %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("ingredient", name).Warn("Restock failed")
		return 0, err
	}

	log.WithFields(log.Fields{"ingredient": name, "amount_on_hand": ingredient.AmountOnHand}).Debug("Ingredient restocked")
	return ingredient.AmountOnHand, nil
}
