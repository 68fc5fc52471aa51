package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/datagen"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

// WriteTable writes one CSV file named after the table: a header in declared
// column order followed by one line per row. Empty cells stand for NULL;
// encoding/csv handles quoting for values containing the delimiter. Returns
// the written file path.
func WriteTable(dir string, t types.TableSchema, rows []datagen.Row) (string, error) {
	path := filepath.Join(dir, t.Name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := t.ColumnNames()
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", t.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}

// ReadTable reads a table CSV back as header plus data records. The loader
// and tests share this; it does no validation beyond CSV well-formedness.
func ReadTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s has no header row", path)
	}
	return records[0], records[1:], nil
}
