package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtrevizo/tablero/internal/cli"
	"github.com/mtrevizo/tablero/internal/models"
)

// MoveCmd returns the project move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a project to a status",
		Long:  "Move a project to the given status (active, finished). Moving an unknown ID is a no-op.",
		Args:  cobra.ExactArgs(2),
		RunE:  runMove,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status, err := models.ParseStatus(args[1])
	if err != nil {
		if fmtErr := formatter.Error("INVALID_STATUS", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Unknown IDs are not an error. The move is simply a no-op.
	cliInstance.Store.MoveProject(id, status)

	if quietMode {
		fmt.Printf("%s\n", id)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"id":      id,
			"status":  status,
		})
	}

	fmt.Printf("✓ Project %s moved to %s\n", id, status)
	return nil
}
