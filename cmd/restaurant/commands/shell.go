package commands

import (
	"github.com/franciscosanchezn/restaurant-manager/internal/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive menus",
	Long: `Open the interactive menus (the default when no subcommand is given).

Every screen reads one line and dispatches on the option number; 0 goes back
to the previous screen and leaves the program from the main menu.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), newServices(), shell.Options{
		LowStockThreshold: configuration.LowStockThreshold,
		RecentOrdersLimit: configuration.RecentOrdersLimit,
	})
	return sh.Run(cmd.Context())
}
