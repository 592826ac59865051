// Package cmd defines the tablero command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtrevizo/tablero/internal/cli"
	"github.com/mtrevizo/tablero/internal/cli/project"
	"github.com/mtrevizo/tablero/internal/launcher"
	"github.com/mtrevizo/tablero/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a terminal project board",
	Long:  `Tablero is a terminal board for tracking projects across active and finished columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand opens the board
		return launcher.Launch()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(project.ProjectCmd())
}

// Execute runs the command tree and exits with a code describing the
// failure class.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Validation and status errors were already reported through the
		// command's formatter, so only the generic case prints here.
		switch {
		case errors.Is(err, cli.ErrValidation):
			os.Exit(cli.ExitValidation)
		case errors.Is(err, models.ErrUnknownStatus):
			os.Exit(cli.ExitUsage)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.ExitError)
		}
	}
	os.Exit(cli.ExitSuccess)
}
