package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MenuService maintains the dishes and the ingredients they use
type MenuService interface {
	// ListDishes retrieves every dish on the menu
	ListDishes(ctx context.Context) ([]models.Dish, error)
	// DishExists reports whether a dish with that exact name is on the menu
	DishExists(ctx context.Context, name string) (bool, error)
	// AddDish puts a new dish on the menu together with its ingredients
	AddDish(ctx context.Context, dish models.Dish, ingredients []string) error
	// UpdatePrice sets the price of a dish; unknown names are ignored
	UpdatePrice(ctx context.Context, name string, price float64) error
	// RemoveDish deletes a dish and its ingredient links
	RemoveDish(ctx context.Context, name string) error
	// DishIngredients lists the ingredient links of a dish, duplicates included
	DishIngredients(ctx context.Context, name string) ([]string, error)
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.WithContext(ctx).Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *menuService) DishExists(ctx context.Context, name string) (bool, error) {
	return dishExists(s.db.WithContext(ctx), name)
}

func dishExists(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Model(&models.Dish{}).Where("dish_name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddDish creates missing ingredients with placeholder values and links every
// entry of ingredients to the dish, repeated names included.
func (s *menuService) AddDish(ctx context.Context, dish models.Dish, ingredients []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := dishExists(tx, dish.Name)
		if err != nil {
			return fmt.Errorf("check dish %q: %w", dish.Name, err)
		}
		if exists {
			return ErrDishExists
		}

		if err := tx.Create(&dish).Error; err != nil {
			return fmt.Errorf("insert dish %q: %w", dish.Name, err)
		}

		for _, name := range ingredients {
			var count int64
			if err := tx.Model(&models.Ingredient{}).Where("ingredient_name = ?", name).Count(&count).Error; err != nil {
				return fmt.Errorf("check ingredient %q: %w", name, err)
			}
			if count == 0 {
				ingredient := models.Ingredient{
					Name:         name,
					Supplier:     models.DefaultSupplier,
					AmountOnHand: models.DefaultAmountOnHand,
				}
				if err := tx.Create(&ingredient).Error; err != nil {
					return fmt.Errorf("insert ingredient %q: %w", name, err)
				}
				log.WithField("ingredient", name).Debug("Created placeholder ingredient")
			}

			link := models.DishIngredient{DishName: dish.Name, IngredientName: name}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("link %q to %q: %w", name, dish.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("dish_name", dish.Name).Warn("Dish not added")
		return err
	}

	log.WithFields(log.Fields{"dish_name": dish.Name, "ingredients": len(ingredients)}).Debug("Dish added")
	return nil
}

func (s *menuService) UpdatePrice(ctx context.Context, name string, price float64) error {
	result := s.db.WithContext(ctx).Model(&models.Dish{}).Where("dish_name = ?", name).UpdateColumn("price", price)
	if result.Error != nil {
		return result.Error
	}
	log.WithFields(log.Fields{"dish_name": name, "price": price, "rows": result.RowsAffected}).Debug("Price updated")
	return nil
}

// RemoveDish leaves ingredients and past orders untouched
func (s *menuService) RemoveDish(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_name = ?", name).Delete(&models.Dish{}).Error; err != nil {
			return fmt.Errorf("delete dish %q: %w", name, err)
		}
		if err := tx.Where("dish_name = ?", name).Delete(&models.DishIngredient{}).Error; err != nil {
			return fmt.Errorf("delete ingredient links of %q: %w", name, err)
		}
		log.WithField("dish_name", name).Debug("Dish removed")
		return nil
	})
}

func (s *menuService) DishIngredients(ctx context.Context, name string) ([]string, error) {
	var ingredients []string
	if err := s.db.WithContext(ctx).Model(&models.DishIngredient{}).Where("dish_name = ?", name).Pluck("ingredient_name", &ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
