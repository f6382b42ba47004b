package commands

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/franciscosanchezn/restaurant-manager/internal/output"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type demoDish struct {
	dish        models.Dish
	ingredients []string
}

var demoMenu = []demoDish{
	{dish: models.Dish{Name: "Margherita", Price: 10.99, ProfitMargin: 0.35}, ingredients: []string{"Tomato Sauce", "Mozzarella", "Basil"}},
	{dish: models.Dish{Name: "Pepperoni", Price: 12.99, ProfitMargin: 0.4}, ingredients: []string{"Tomato Sauce", "Mozzarella", "Pepperoni"}},
	{dish: models.Dish{Name: "Vegetarian", Price: 11.99, ProfitMargin: 0.3}, ingredients: []string{"Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives"}},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Put a demo menu in an empty store",
	Long: `Put a small demo menu in the store. Nothing happens when the menu already
has dishes. Ingredients are created with placeholder supplier and stock.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	menu := newServices().Menu

	dishes, err := menu.ListDishes(cmd.Context())
	if err != nil {
		return err
	}
	if len(dishes) > 0 {
		log.Info("Database already seeded with initial data")
		output.Info(out, "Menu already has %d dishes, nothing to seed.", len(dishes))
		return nil
	}

	log.Info("Seeding database with initial data")
	for _, demo := range demoMenu {
		err := menu.AddDish(cmd.Context(), demo.dish, demo.ingredients)
		if errors.Is(err, services.ErrDishExists) {
			continue
		}
		if err != nil {
			return err
		}
		output.Success(out, "%s added successfully.", demo.dish.Name)
	}
	return nil
}
