package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/codegen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <component.tsx>",
	Short: "Validate Salt component source against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading source file: %w", err)
		}

		validator := codegen.NewValidator(catalog.Default())
		result := validator.Validate(string(data))

		for _, e := range result.Errors {
			fmt.Printf("error: %s\n", e)
		}
		for _, s := range result.Suggestions {
			fmt.Printf("suggestion: %s\n", s)
		}

		if !result.Valid {
			return fmt.Errorf("%d validation error(s)", len(result.Errors))
		}
		fmt.Println("valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
