package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/restaurant-manager/internal/output"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/spf13/cobra"
)

var (
	// Report flags
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Print a sales report",
	Long: `Print one sales report, or list the available reports when no name is given.

Reports:
  ` + strings.Join(services.ReportNames(), "\n  ") + `

Examples:
  restaurant report                       # List reports
  restaurant report top-spenders          # Text output
  restaurant report weekly-sales --json   # JSON output`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: services.ReportNames(),
	RunE:      runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output in JSON format")
}

func runReport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		output.Section(out, "Available reports")
		for _, report := range services.Reports {
			output.Line(out, "%-20s %s", report.Name, report.Title)
		}
		return nil
	}

	report, ok := services.LookupReport(args[0])
	if !ok {
		return fmt.Errorf("unknown report %q, expected one of: %s", args[0], strings.Join(services.ReportNames(), ", "))
	}

	result, err := report.Run(cmd.Context(), newServices().Reports)
	if err != nil {
		return err
	}

	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	output.Section(out, result.Title)
	if len(result.Lines) == 0 {
		output.Info(out, "No sales recorded yet.")
		return nil
	}
	for _, line := range result.Lines {
		output.Line(out, "%s", line)
	}
	return nil
}
