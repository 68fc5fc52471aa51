package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/config"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/csvio"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/datagen"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/schema"
)

var (
	generateRows   int
	generateOutDir string
	generateSorted bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic CSV datasets for every table",
	Long: `
Generate one CSV file per table, in dependency order, so foreign-key columns
are filled from primary keys already produced for their parent tables. The
declared table order is used by default; --sorted derives the order from the
foreign-key graph instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if generateRows > 0 {
			cfg.Rows = generateRows
		}
		if generateOutDir != "" {
			cfg.OutputDir = generateOutDir
		}
		if err := cfg.EnsureOutputDir(); err != nil {
			return err
		}

		tables := schema.Tables()
		if generateSorted {
			var warnings []string
			tables, warnings = schema.Sort(tables)
			for _, name := range warnings {
				color.Yellow("⚠️  Table %s is part of a dependency cycle, keeping declaration order", name)
			}
		}

		gen := datagen.New(cfg.Rows)
		gen.WarnFunc = func(format string, args ...interface{}) {
			color.Yellow("⚠️  "+format, args...)
		}

		fmt.Printf("🌱 Generating %d rows per table into %s\n", cfg.Rows, cfg.OutputDir)
		for _, t := range tables {
			rows := gen.Table(t)
			path, err := csvio.WriteTable(cfg.OutputDir, t, rows)
			if err != nil {
				return fmt.Errorf("failed to write table %s: %w", t.Name, err)
			}
			fmt.Printf("  -> Wrote %d rows to %s\n", len(rows), path)
		}

		color.Green("✅ Generated %d tables (%d rows each) in %s", len(tables), cfg.Rows, cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateRows, "rows", 0, "Rows to generate per table (default from config, 50)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "", "Output directory for CSV files")
	generateCmd.Flags().BoolVar(&generateSorted, "sorted", false, "Derive table order from the FK graph instead of the declared order")
}
