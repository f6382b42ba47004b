package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
)

// Report is one named entry of the report catalog
type Report struct {
	Name  string
	Title string
	fetch func(ctx context.Context, svc ReportService) (any, []string, error)
}

// ReportOutput carries both the typed rows and their printable lines
type ReportOutput struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Data  any      `json:"data"`
	Lines []string `json:"-"`
}

// Run executes the report against svc
func (r Report) Run(ctx context.Context, svc ReportService) (ReportOutput, error) {
	data, lines, err := r.fetch(ctx, svc)
	if err != nil {
		return ReportOutput{}, fmt.Errorf("report %s: %w", r.Name, err)
	}
	return ReportOutput{Name: r.Name, Title: r.Title, Data: data, Lines: lines}, nil
}

// Reports lists every report; the first five form the sales information menu
var Reports = []Report{
	{Name: "best-sellers", Title: "5 Best Selling Items", fetch: amounts(ReportService.BestSellingDishes, "%s - Total Sales: %s")},
	{Name: "top-spenders", Title: "Best Customers by $", fetch: amounts(ReportService.TopSpenders, "%s - Total Spent: %s")},
	{Name: "top-order-counts", Title: "Best Customers by Total Orders", fetch: counts(ReportService.TopOrderCounts, "%s - Total Orders: %d")},
	{Name: "top-margins", Title: "Highest Profit Items", fetch: margins},
	{Name: "popular-ingredients", Title: "Most Popular Ingredients", fetch: counts(ReportService.PopularIngredients, "%s - Used in %d dishes")},
	{Name: "weekly-sales", Title: "Total Sales per Day of the Week", fetch: weekly},
	{Name: "dish-popularity", Title: "Popularity of Items in the Menu", fetch: counts(ReportService.DishPopularity, "%s - Orders: %d")},
}

// SalesReportCount is how many catalog entries the sales information menu offers
const SalesReportCount = 5

// LookupReport finds a report by name
func LookupReport(name string) (Report, bool) {
	for _, report := range Reports {
		if report.Name == name {
			return report, true
		}
	}
	return Report{}, false
}

// ReportNames returns the catalog names in order
func ReportNames() []string {
	names := make([]string, len(Reports))
	for i, report := range Reports {
		names[i] = report.Name
	}
	return names
}

// CountSeries splits counting rows into chart labels and values
func CountSeries(rows []models.RankedCount) ([]string, []float64) {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row.Name
		values[i] = float64(row.Count)
	}
	return labels, values
}

func amounts(query func(ReportService, context.Context) ([]models.RankedAmount, error), format string) func(context.Context, ReportService) (any, []string, error) {
	return func(ctx context.Context, svc ReportService) (any, []string, error) {
		rows, err := query(svc, ctx)
		if err != nil {
			return nil, nil, err
		}
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = fmt.Sprintf(format, row.Name, fmt.Sprintf("$%.2f", row.Total))
		}
		return rows, lines, nil
	}
}

func counts(query func(ReportService, context.Context) ([]models.RankedCount, error), format string) func(context.Context, ReportService) (any, []string, error) {
	return func(ctx context.Context, svc ReportService) (any, []string, error) {
		rows, err := query(svc, ctx)
		if err != nil {
			return nil, nil, err
		}
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = fmt.Sprintf(format, row.Name, row.Count)
		}
		return rows, lines, nil
	}
}

// margins prints the stored margin as is; its unit is up to the operator
func margins(ctx context.Context, svc ReportService) (any, []string, error) {
	rows, err := svc.TopProfitMargins(ctx)
	if err != nil {
		return nil, nil, err
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = fmt.Sprintf("%s - Profit Margin: %s", row.Name, strconv.FormatFloat(row.Total, 'f', -1, 64))
	}
	return rows, lines, nil
}

// weekly keeps the buckets in weekday order, Sunday first
func weekly(ctx context.Context, svc ReportService) (any, []string, error) {
	sales, err := svc.WeeklySales(ctx)
	if err != nil {
		return nil, nil, err
	}
	data := make([]models.RankedAmount, len(sales))
	lines := make([]string, len(sales))
	for i, total := range sales {
		data[i] = models.RankedAmount{Name: models.Weekdays[i], Total: total}
		lines[i] = fmt.Sprintf("%s - Total Sales: $%.2f", models.Weekdays[i], total)
	}
	return data, lines, nil
}
