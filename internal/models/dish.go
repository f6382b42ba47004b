package models

// Dish represents a sellable menu item
type Dish struct {
	Name         string  `gorm:"column:dish_name;type:text;primaryKey" json:"dish_name"`
	Price        float64 `gorm:"column:price;type:real" json:"price"`
	ProfitMargin float64 `gorm:"column:profit_margin;type:real" json:"profit_margin"`
}

func (Dish) TableName() string {
	return "dishes"
}

// DishIngredient links a dish to one ingredient it consumes.
// The table has no key, so the same pair may appear more than once.
type DishIngredient struct {
	DishName       string `gorm:"column:dish_name;type:text" json:"dish_name"`
	IngredientName string `gorm:"column:ingredient_name;type:text" json:"ingredient_name"`
}

func (DishIngredient) TableName() string {
	return "dish_ingredients"
}
