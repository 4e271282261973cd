package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/belote/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a rules file",
	Long: `Validate checks that a rules file can drive a match: header fields,
the dealing plan against the 32-card pack, both scoring tables and timing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesPath := args[0]

		if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
			return fmt.Errorf("rules file not found: %s", rulesPath)
		}

		v := validator.NewValidator(rulesPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Rules '%s' are valid.\n", rulesPath)
		} else {
			fmt.Printf("❌ Rules '%s' have %d validation errors:\n", rulesPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
