package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/csvio"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

// Loader bulk-inserts table CSVs into a live database in dependency order.
// Each table loads inside its own transaction; a failure rolls back the
// in-flight table and aborts the run, leaving earlier tables committed.
type Loader struct {
	db       *sql.DB
	provider string
	trim     bool
}

func New(db *sql.DB, provider string, trim bool) *Loader {
	return &Loader{db: db, provider: provider, trim: trim}
}

// Run loads `<table>.csv` from dir for every table, in the given order.
// Absent files are skipped, not failed. Returns total rows inserted.
func (l *Loader) Run(ctx context.Context, dir string, tables []types.TableSchema) (int, error) {
	total := 0
	for _, t := range tables {
		path := filepath.Join(dir, t.Name+".csv")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			color.Yellow("⚠️  Skipping %s, no CSV found", t.Name)
			continue
		}

		n, err := l.loadTable(ctx, path, t)
		if err != nil {
			return total, fmt.Errorf("failed to load %s: %w", t.Name, err)
		}
		fmt.Printf("✅ Inserted %d rows into %s\n", n, t.Name)
		total += n
	}
	return total, nil
}

func (l *Loader) loadTable(ctx context.Context, path string, t types.TableSchema) (int, error) {
	header, records, err := csvio.ReadTable(path)
	if err != nil {
		return 0, err
	}

	cols := make([]types.ColumnSpec, len(header))
	for i, name := range header {
		col, ok := t.Column(name)
		if !ok {
			return 0, fmt.Errorf("csv column %s not declared on table %s", name, t.Name)
		}
		cols[i] = col
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	builder := squirrel.StatementBuilder.PlaceholderFormat(l.placeholders())
	for i, record := range records {
		values := make([]interface{}, len(record))
		for j, cell := range record {
			v, err := l.convertCell(cols[j], cell)
			if err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("row %d column %s: %w", i+1, cols[j].Name, err)
			}
			values[j] = v
		}

		query, args, err := builder.Insert(t.Name).Columns(header...).Values(values...).ToSql()
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return len(records), nil
}

func (l *Loader) placeholders() squirrel.PlaceholderFormat {
	switch l.provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

// convertCell maps a CSV cell to a driver value: empty cells become NULL,
// integers and booleans get native types, everything else travels as text
// and is cast by the database. Trim mode cuts strings that exceed the
// column's declared length before insertion.
func (l *Loader) convertCell(col types.ColumnSpec, cell string) (interface{}, error) {
	if cell == "" {
		return nil, nil
	}

	switch col.Type {
	case types.TypeInteger:
		n, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", cell, err)
		}
		return n, nil
	case types.TypeBoolean:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", cell, err)
		}
		return b, nil
	case types.TypeString, types.TypeText:
		if l.trim && col.Length > 0 && len(cell) > col.Length {
			cell = cell[:col.Length]
		}
		return cell, nil
	default:
		return cell, nil
	}
}
