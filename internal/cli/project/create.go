package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtrevizo/tablero/internal/cli"
	"github.com/mtrevizo/tablero/internal/validation"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long:  "Create a new project with a title, description and assigned people count.",
		RunE:  runCreate,
	}

	cmd.Flags().StringP("title", "t", "", "Project title")
	cmd.Flags().StringP("description", "d", "", "Project description")
	cmd.Flags().IntP("people", "p", 0, "Number of people assigned")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	people, _ := cmd.Flags().GetInt("people")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	// Same bounds the TUI form enforces; failures carry no per-field detail.
	for _, spec := range cliInstance.Cfg.Form.ProjectSpecs(title, description, people) {
		if !validation.Validate(spec) {
			if fmtErr := formatter.ErrorWithSuggestion("VALIDATION_ERROR",
				"Invalid input, please try again!",
				"check --title, --description and --people against the configured form limits"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.ErrValidation
		}
	}

	created := cliInstance.Store.AddProject(title, description, people)

	if quietMode {
		fmt.Printf("%s\n", created.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": created,
		})
	}

	fmt.Printf("✓ Project '%s' created successfully (%s)\n", created.Title, created.ID)
	return nil
}
