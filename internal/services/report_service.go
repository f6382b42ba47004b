package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportLimit caps the ranked reports
const ReportLimit = 5

// ReportService runs the aggregate sales queries.
// Ties are broken by name so every report is stable.
type ReportService interface {
	// BestSellingDishes ranks dishes by total revenue
	BestSellingDishes(ctx context.Context) ([]models.RankedAmount, error)
	// TopSpenders ranks customers by total spend
	TopSpenders(ctx context.Context) ([]models.RankedAmount, error)
	// TopOrderCounts ranks customers by number of orders
	TopOrderCounts(ctx context.Context) ([]models.RankedCount, error)
	// TopProfitMargins ranks dishes by their stored profit margin
	TopProfitMargins(ctx context.Context) ([]models.RankedAmount, error)
	// PopularIngredients ranks ingredients by the number of dish links they have
	PopularIngredients(ctx context.Context) ([]models.RankedCount, error)
	// WeeklySales totals revenue per day of week over all orders
	WeeklySales(ctx context.Context) (models.WeeklySales, error)
	// DishPopularity counts orders per dish
	DishPopularity(ctx context.Context) ([]models.RankedCount, error)
}

type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) BestSellingDishes(ctx context.Context) ([]models.RankedAmount, error) {
	var rows []models.RankedAmount
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("dish_name AS name, SUM(total_price) AS total").
		Group("dish_name").
		Order("total DESC").Order("name").
		Limit(ReportLimit).
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) TopSpenders(ctx context.Context) ([]models.RankedAmount, error) {
	var rows []models.RankedAmount
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("customer_name AS name, SUM(total_price) AS total").
		Group("customer_name").
		Order("total DESC").Order("name").
		Limit(ReportLimit).
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) TopOrderCounts(ctx context.Context) ([]models.RankedCount, error) {
	var rows []models.RankedCount
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("customer_name AS name, COUNT(*) AS count").
		Group("customer_name").
		Order("count DESC").Order("name").
		Limit(ReportLimit).
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) TopProfitMargins(ctx context.Context) ([]models.RankedAmount, error) {
	var rows []models.RankedAmount
	err := s.db.WithContext(ctx).Model(&models.Dish{}).
		Select("dish_name AS name, profit_margin AS total").
		Order("total DESC").Order("name").
		Limit(ReportLimit).
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) PopularIngredients(ctx context.Context) ([]models.RankedCount, error) {
	var rows []models.RankedCount
	err := s.db.WithContext(ctx).Model(&models.DishIngredient{}).
		Select("ingredient_name AS name, COUNT(dish_name) AS count").
		Group("ingredient_name").
		Order("count DESC").Order("name").
		Limit(ReportLimit).
		Scan(&rows).Error
	return rows, err
}

// WeeklySales sums per stored date and buckets in Go, so the query stays
// free of dialect specific date functions.
func (s *reportService) WeeklySales(ctx context.Context) (models.WeeklySales, error) {
	var sales models.WeeklySales

	var days []struct {
		Date  string
		Total float64
	}
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("date, SUM(total_price) AS total").
		Group("date").
		Scan(&days).Error
	if err != nil {
		return sales, fmt.Errorf("sum sales per date: %w", err)
	}

	for _, day := range days {
		parsed, err := models.Order{Date: day.Date}.Day()
		if err != nil {
			log.WithError(err).WithField("date", day.Date).Warn("Skipping order with unreadable date")
			continue
		}
		sales[parsed.Weekday()] += day.Total
	}
	return sales, nil
}

func (s *reportService) DishPopularity(ctx context.Context) ([]models.RankedCount, error) {
	var rows []models.RankedCount
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("dish_name AS name, COUNT(*) AS count").
		Group("dish_name").
		Order("name").
		Scan(&rows).Error
	return rows, err
}
