package commands

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-manager/internal/chart"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/spf13/cobra"
)

var (
	// Chart flags
	chartWidth int
)

var chartCmd = &cobra.Command{
	Use:   "chart sales|menu",
	Short: "Draw a bar chart of sales or dish popularity",
	Long: `Draw a horizontal bar chart in the terminal.

  sales   total sales per day of the week, Sunday first
  menu    number of orders per dish`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sales", "menu"},
	RunE:      runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().IntVarP(&chartWidth, "width", "w", chart.DefaultWidth, "Length of the longest bar")
}

func runChart(cmd *cobra.Command, args []string) error {
	reports := newServices().Reports

	var rendered string
	switch args[0] {
	case "sales":
		sales, err := reports.WeeklySales(cmd.Context())
		if err != nil {
			return err
		}
		rendered = chart.Bar("Total Sales per Day of the Week", sales.Labels(), sales.Values(), chartWidth, chart.Blue)
	case "menu":
		rows, err := reports.DishPopularity(cmd.Context())
		if err != nil {
			return err
		}
		labels, values := services.CountSeries(rows)
		rendered = chart.Bar("Popularity of Items in the Menu", labels, values, chartWidth, chart.Green)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
