package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print tables in generation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		sorted, _ := cmd.Flags().GetBool("sorted")

		tables := schema.Tables()
		if sorted {
			var warnings []string
			tables, warnings = schema.Sort(tables)
			for _, name := range warnings {
				color.Yellow("⚠️  Table %s is part of a dependency cycle", name)
			}
		}

		for i, t := range tables {
			fks := 0
			for _, c := range t.Columns {
				if c.HasForeignKey() {
					fks++
				}
			}
			fmt.Printf("%2d. %-22s %2d columns", i+1, t.Name, len(t.Columns))
			if fks > 0 {
				fmt.Printf("  %d FK", fks)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().Bool("sorted", false, "Derive order from the FK graph instead of the declared order")
}
