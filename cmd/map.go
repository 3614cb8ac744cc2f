package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
	"github.com/salt-lab/figgen/core/mapper"
	"github.com/salt-lab/figgen/core/prompt"
)

var mapCmd = &cobra.Command{
	Use:   "map <design.json>",
	Short: "Print the mapped component tree without calling the LLM",
	Long: `Map runs only the classification and tree-mapping steps and prints
the resulting component hierarchy and import list. Useful for checking what
the generator would ask for before spending a completion call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading design file: %w", err)
		}

		root, err := design.DecodeDocument(data)
		if err != nil {
			return err
		}

		m := mapper.NewMapper(catalog.Default(), slog.Default())
		components := m.Map(root)

		fmt.Print(prompt.RenderTree(components))
		fmt.Println()
		fmt.Print(prompt.RenderImports(components))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
