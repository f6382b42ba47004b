package models

// Default values used when an ingredient is created implicitly while adding a dish
const (
	DefaultSupplier     = "Not Yet Added"
	DefaultAmountOnHand = 10
)

// Ingredient is a stocked material, keyed by its name
type Ingredient struct {
	Name          string   `gorm:"column:ingredient_name;type:text;primaryKey" json:"ingredient_name"`
	PricePerPound *float64 `gorm:"column:price_per_pound;type:real" json:"price_per_pound"`
	Supplier      string   `gorm:"column:supplier;type:text" json:"supplier"`
	AmountOnHand  int      `gorm:"column:amount_on_hand;type:integer" json:"amount_on_hand"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
