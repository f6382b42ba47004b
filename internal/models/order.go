package models

import "time"

// DateLayout is the calendar-day format stored in orders.date
const DateLayout = "2006-01-02"

// Order is the historical record of one customer buying one dish
type Order struct {
	ID           int     `gorm:"column:order_id;type:integer;primaryKey;autoIncrement:false" json:"order_id"`
	CustomerName string  `gorm:"column:customer_name;type:text" json:"customer_name"`
	DishName     string  `gorm:"column:dish_name;type:text" json:"dish_name"`
	TotalPrice   float64 `gorm:"column:total_price;type:real" json:"total_price"`
	Date         string  `gorm:"column:date;type:text" json:"date"`
}

func (Order) TableName() string {
	return "orders"
}

// Day parses the stored date
func (o Order) Day() (time.Time, error) {
	return time.Parse(DateLayout, o.Date)
}
