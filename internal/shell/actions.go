package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/restaurant-manager/internal/chart"
	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/franciscosanchezn/restaurant-manager/internal/output"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
)

// doneSentinel ends ingredient entry when adding a dish
const doneSentinel = "done"

var errInvalidNumber = errors.New("invalid number")

// Schema is shown before a custom query is requested
var Schema = []string{
	"TABLE 'ingredients'('ingredient_name', 'price_per_pound', 'supplier', 'amount_on_hand')",
	"TABLE 'dishes'('dish_name', 'price', 'profit_margin')",
	"TABLE 'dish_ingredients'('dish_name', 'ingredient_name')",
	"TABLE 'orders'('order_id', 'customer_name', 'dish_name', 'total_price', 'date')",
}

func (s *Shell) promptFloat(label string) (float64, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	return value, nil
}

func (s *Shell) printMenu(ctx context.Context) error {
	dishes, err := s.svc.Menu.ListDishes(ctx)
	if err != nil {
		return err
	}
	if len(dishes) == 0 {
		output.Info(s.out, "No menu items found.")
		return nil
	}
	output.Section(s.out, "Menu Items and Prices:")
	for _, dish := range dishes {
		output.Line(s.out, "%s - %s", dish.Name, output.Money(dish.Price))
	}
	return nil
}

func (s *Shell) placeOrder(ctx context.Context) error {
	customer, err := s.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	dish, err := s.prompt("Enter dish name: ")
	if err != nil {
		return err
	}

	order, err := s.svc.Orders.PlaceOrder(ctx, customer, dish)
	if err != nil {
		return err
	}
	output.Success(s.out, "Order placed successfully. Total price: %s", output.Money(order.TotalPrice))
	return nil
}

func (s *Shell) recentOrders(ctx context.Context) error {
	orders, err := s.svc.Orders.RecentOrders(ctx, s.opts.RecentOrdersLimit)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		output.Info(s.out, "No recent orders found.")
		return nil
	}
	output.Section(s.out, "Recent Orders:")
	for _, order := range orders {
		output.Line(s.out, "Customer: %s, Dish: %s, Date: %s", order.CustomerName, order.DishName, order.Date)
	}
	return nil
}

func (s *Shell) updatePrice(ctx context.Context) error {
	name, err := s.prompt("Enter the item name to update the price: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat("Enter the new price: ")
	if err != nil {
		return err
	}
	if err := s.svc.Menu.UpdatePrice(ctx, name, price); err != nil {
		return err
	}
	output.Success(s.out, "Price for %s updated successfully.", name)
	return nil
}

func (s *Shell) addItem(ctx context.Context) error {
	name, err := s.prompt("Enter the new dish name: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat("Enter the price of the dish: ")
	if err != nil {
		return err
	}
	margin, err := s.promptFloat("Enter the profit margin for the dish: ")
	if err != nil {
		return err
	}

	exists, err := s.svc.Menu.DishExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		output.Warning(s.out, "'%s' already exists.", name)
		return nil
	}

	var ingredients []string
	for {
		ingredient, err := s.prompt(fmt.Sprintf("Enter ingredient name (or '%s' to finish): ", doneSentinel))
		if err != nil {
			return err
		}
		if strings.EqualFold(ingredient, doneSentinel) {
			break
		}
		ingredients = append(ingredients, ingredient)
	}

	err = s.svc.Menu.AddDish(ctx, models.Dish{Name: name, Price: price, ProfitMargin: margin}, ingredients)
	if errors.Is(err, services.ErrDishExists) {
		output.Warning(s.out, "'%s' already exists.", name)
		return nil
	}
	if err != nil {
		return err
	}
	output.Success(s.out, "%s added successfully.", name)
	return nil
}

func (s *Shell) removeItem(ctx context.Context) error {
	name, err := s.prompt("Enter the dish name to remove: ")
	if err != nil {
		return err
	}
	if err := s.svc.Menu.RemoveDish(ctx, name); err != nil {
		return err
	}
	output.Success(s.out, "Dish %s removed successfully.", name)
	return nil
}

func (s *Shell) listInventory(ctx context.Context) error {
	ingredients, err := s.svc.Inventory.ListIngredients(ctx)
	if err != nil {
		return err
	}
	if len(ingredients) == 0 {
		output.Info(s.out, "No ingredients found.")
		return nil
	}
	output.Section(s.out, "Inventory:")
	for _, ingredient := range ingredients {
		output.Line(s.out, "Ingredient: %s, Amount on Hand: %d", ingredient.Name, ingredient.AmountOnHand)
	}
	return nil
}

func (s *Shell) listSuppliers(ctx context.Context) error {
	suppliers, err := s.svc.Inventory.Suppliers(ctx)
	if err != nil {
		return err
	}
	if len(suppliers) == 0 {
		output.Info(s.out, "No suppliers found.")
		return nil
	}
	output.Section(s.out, "Suppliers:")
	for _, supplier := range suppliers {
		output.Primary(s.out, "%s", supplier.Name)
		for _, ingredient := range supplier.Ingredients {
			output.Line(s.out, "-- %s", ingredient)
		}
	}
	return nil
}

func (s *Shell) lowIngredients(ctx context.Context) error {
	ingredients, err := s.svc.Inventory.LowIngredients(ctx, s.opts.LowStockThreshold)
	if err != nil {
		return err
	}
	if len(ingredients) == 0 {
		output.Info(s.out, "No low ingredients found.")
		return nil
	}
	output.Section(s.out, "Low Ingredients:")
	for _, ingredient := range ingredients {
		output.Warning(s.out, "Ingredient: %s, Amount on Hand: %d", ingredient.Name, ingredient.AmountOnHand)
	}
	return nil
}

func (s *Shell) orderIngredients(ctx context.Context) error {
	name, err := s.prompt("Enter the ingredient name to order: ")
	if err != nil {
		return err
	}
	amount, err := s.svc.Inventory.Restock(ctx, name)
	if err != nil {
		return err
	}
	output.Success(s.out, "Order placed successfully. New quantity for %s: %d", name, amount)
	return nil
}

func (s *Shell) salesInfo(ctx context.Context) error {
	sales := services.Reports[:services.SalesReportCount]
	output.Section(s.out, "Sales Information Options:")
	for i, report := range sales {
		output.Line(s.out, "%d: %s", i+1, report.Title)
	}

	choice, err := s.prompt("Enter your choice: ")
	if err != nil {
		return err
	}
	index, convErr := strconv.Atoi(choice)
	if convErr != nil || index < 1 || index > len(sales) {
		output.Error(s.out, "Invalid choice. Please try again.")
		return nil
	}

	result, err := sales[index-1].Run(ctx, s.svc.Reports)
	if err != nil {
		return err
	}
	output.Section(s.out, result.Title+":")
	for _, line := range result.Lines {
		output.Line(s.out, "%s", line)
	}
	return nil
}

func (s *Shell) plotSales(ctx context.Context) error {
	sales, err := s.svc.Reports.WeeklySales(ctx)
	if err != nil {
		return err
	}
	output.Line(s.out, "%s", chart.Bar("Total Sales per Day of the Week", sales.Labels(), sales.Values(), chart.DefaultWidth, chart.Blue))
	return nil
}

func (s *Shell) plotMenu(ctx context.Context) error {
	rows, err := s.svc.Reports.DishPopularity(ctx)
	if err != nil {
		return err
	}
	labels, values := services.CountSeries(rows)
	output.Line(s.out, "%s", chart.Bar("Popularity of Items in the Menu", labels, values, chart.DefaultWidth, chart.Green))
	return nil
}

// customQuery reports store rejections itself and keeps the shell running
func (s *Shell) customQuery(ctx context.Context) error {
	output.Line(s.out, "\nYou can use the following schema to build your own custom queries:")
	for _, table := range Schema {
		output.Muted(s.out, "%s", table)
	}

	query, err := s.prompt("\nEnter your custom query: ")
	if err != nil {
		return err
	}

	result, err := s.svc.Queries.Run(ctx, query)
	if errors.Is(err, services.ErrStoreRejected) {
		output.Error(s.out, "Query error: %v", err)
		output.Line(s.out, "Please try again")
		return nil
	}
	if err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		output.Info(s.out, "No results found for the query.")
		return nil
	}
	output.Section(s.out, "Query Result:")
	output.Table(s.out, result.Columns, result.Rows)
	return nil
}
