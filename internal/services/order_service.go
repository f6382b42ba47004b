package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderService records orders and consumes the ingredients they use
type OrderService interface {
	// PlaceOrder sells one unit of dishName to customerName
	PlaceOrder(ctx context.Context, customerName, dishName string) (models.Order, error)
	// RecentOrders lists the newest orders, newest date first
	RecentOrders(ctx context.Context, limit int) ([]models.Order, error)
}

// OrderOption customizes an OrderService
type OrderOption func(*orderService)

// WithClock replaces the clock used to date new orders
func WithClock(now func() time.Time) OrderOption {
	return func(s *orderService) {
		s.now = now
	}
}

type orderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, opts ...OrderOption) OrderService {
	s := &orderService{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder looks up the dish price, stores the order under the next free id
// and takes one unit of every associated ingredient, once per association row.
// Nothing is written when the dish does not exist.
func (s *orderService) PlaceOrder(ctx context.Context, customerName, dishName string) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dish models.Dish
		if err := tx.Where("dish_name = ?", dishName).First(&dish).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDishNotFound
			}
			return fmt.Errorf("lookup dish %q: %w", dishName, err)
		}

		var highest int64
		if err := tx.Model(&models.Order{}).Select("COALESCE(MAX(order_id), 0)").Scan(&highest).Error; err != nil {
			return fmt.Errorf("allocate order id: %w", err)
		}

		order = models.Order{
			ID:           int(highest) + 1,
			CustomerName: customerName,
			DishName:     dish.Name,
			TotalPrice:   dish.Price,
			Date:         s.now().Format(models.DateLayout),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order %d: %w", order.ID, err)
		}

		var ingredients []string
		if err := tx.Model(&models.DishIngredient{}).Where("dish_name = ?", dish.Name).Pluck("ingredient_name", &ingredients).Error; err != nil {
			return fmt.Errorf("list ingredients of %q: %w", dish.Name, err)
		}
		for _, ingredient := range ingredients {
			result := tx.Model(&models.Ingredient{}).
				Where("ingredient_name = ?", ingredient).
				UpdateColumn("amount_on_hand", gorm.Expr("amount_on_hand - ?", 1))
			if result.Error != nil {
				return fmt.Errorf("decrement %q: %w", ingredient, result.Error)
			}
			if result.RowsAffected == 0 {
				log.WithFields(log.Fields{"dish_name": dish.Name, "ingredient": ingredient}).
					Warn("Dish references an ingredient that is not stocked")
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDishNotFound) {
			log.WithField("dish_name", dishName).Warn("Order rejected, dish not found")
		} else {
			log.WithError(err).WithField("dish_name", dishName).Error("Failed to place order")
		}
		return models.Order{}, err
	}

	log.WithFields(log.Fields{
		"order_id":    order.ID,
		"customer":    order.CustomerName,
		"dish_name":   order.DishName,
		"total_price": order.TotalPrice,
	}).Debug("Order placed")
	return order, nil
}

func (s *orderService) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("date DESC").Order("order_id DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
