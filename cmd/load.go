package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/config"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/loader"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/schema"
)

var (
	loadDir  string
	loadTrim bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the generated CSVs into the database",
	Long: `
Load each table's CSV into the live database in dependency order. Absent CSV
files are skipped. Empty cells become NULL. Each table loads in its own
transaction; the first failure rolls back that table and aborts the run,
leaving earlier tables committed.

With --trim, string values longer than a column's declared maximum length
are truncated before insertion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if loadDir != "" {
			cfg.OutputDir = loadDir
		}

		dbURL, err := cfg.DatabaseURL()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		l := loader.New(db, cfg.Database.Provider, loadTrim)
		total, err := l.Run(context.Background(), cfg.OutputDir, schema.Tables())
		if err != nil {
			return err
		}

		color.Green("🎉 All CSVs imported in dependency order (%d rows total)", total)
		return nil
	},
}

func openDB(provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDir, "dir", "", "Directory containing the CSV files (default from config)")
	loadCmd.Flags().BoolVar(&loadTrim, "trim", false, "Truncate string values exceeding a column's declared length")
}
