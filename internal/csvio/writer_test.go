package csvio

import (
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/datagen"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/schema"
	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

func TestWriteTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	table := types.TableSchema{
		Name: "customers",
		Columns: []types.ColumnSpec{
			{Name: "customer_id", Type: types.TypeUUID, IsPrimary: true},
			{Name: "name", Type: types.TypeString, Length: 255},
			{Name: "email", Type: types.TypeString, Length: 255},
			{Name: "is_active", Type: types.TypeBoolean, Nullable: true},
		},
	}

	gen := datagen.New(10)
	rows := gen.Table(table)

	path, err := WriteTable(dir, table, rows)
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if filepath.Base(path) != "customers.csv" {
		t.Errorf("file should be named after the table, got %s", path)
	}

	header, records, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("expected 10 data rows, got %d", len(records))
	}
	for i, want := range table.ColumnNames() {
		if header[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want)
		}
	}
}

func TestWriteTableQuotesDelimiters(t *testing.T) {
	dir := t.TempDir()
	table := types.TableSchema{
		Name: "notes",
		Columns: []types.ColumnSpec{
			{Name: "note_id", Type: types.TypeUUID, IsPrimary: true},
			{Name: "body", Type: types.TypeText, Nullable: true},
		},
	}

	rows := []datagen.Row{
		{"note_id": "n-1", "body": "first, second, third"},
		{"note_id": "n-2", "body": ""},
	}

	path, err := WriteTable(dir, table, rows)
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	_, records, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if records[0][1] != "first, second, third" {
		t.Errorf("comma-bearing value did not survive the round trip: %q", records[0][1])
	}
	if records[1][1] != "" {
		t.Errorf("NULL cell should read back empty, got %q", records[1][1])
	}
}

func TestStructuralIdempotence(t *testing.T) {
	table := types.TableSchema{
		Name: "products",
		Columns: []types.ColumnSpec{
			{Name: "product_id", Type: types.TypeUUID, IsPrimary: true},
			{Name: "name", Type: types.TypeString, Length: 255},
			{Name: "sale_price", Type: types.TypeDecimal, Scale: 2},
		},
	}

	firstDir, secondDir := t.TempDir(), t.TempDir()

	firstPath, err := WriteTable(firstDir, table, datagen.New(8).Table(table))
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	secondPath, err := WriteTable(secondDir, table, datagen.New(8).Table(table))
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	firstHeader, firstRows, _ := ReadTable(firstPath)
	secondHeader, secondRows, _ := ReadTable(secondPath)

	if len(firstRows) != len(secondRows) {
		t.Errorf("row counts differ across runs: %d vs %d", len(firstRows), len(secondRows))
	}
	for i := range firstHeader {
		if firstHeader[i] != secondHeader[i] {
			t.Errorf("headers differ across runs at %d: %q vs %q", i, firstHeader[i], secondHeader[i])
		}
	}
}

// The two-table scenario: child FK values must be drawn from exactly the
// parent keys that were generated.
func TestParentChildGeneration(t *testing.T) {
	dir := t.TempDir()
	parent := types.TableSchema{
		Name: "parent",
		Columns: []types.ColumnSpec{
			{Name: "parent_id", Type: types.TypeUUID, IsPrimary: true},
			{Name: "name", Type: types.TypeString, Length: 255},
		},
	}
	child := types.TableSchema{
		Name: "child",
		Columns: []types.ColumnSpec{
			{Name: "child_id", Type: types.TypeUUID, IsPrimary: true},
			{Name: "parent_id", Type: types.TypeUUID, ForeignKeyTable: "parent", ForeignKeyColumn: "parent_id"},
			{Name: "label", Type: types.TypeString, Length: 50},
		},
	}

	gen := datagen.New(3)
	for _, tbl := range []types.TableSchema{parent, child} {
		if _, err := WriteTable(dir, tbl, gen.Table(tbl)); err != nil {
			t.Fatalf("write %s: %v", tbl.Name, err)
		}
	}

	_, parentRows, err := ReadTable(filepath.Join(dir, "parent.csv"))
	if err != nil {
		t.Fatal(err)
	}
	parentIDs := make(map[string]bool, 3)
	for _, rec := range parentRows {
		if parentIDs[rec[0]] {
			t.Fatalf("duplicate parent_id %q", rec[0])
		}
		parentIDs[rec[0]] = true
	}
	if len(parentIDs) != 3 {
		t.Fatalf("expected 3 unique parent ids, got %d", len(parentIDs))
	}

	_, childRows, err := ReadTable(filepath.Join(dir, "child.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(childRows) != 3 {
		t.Fatalf("expected 3 child rows, got %d", len(childRows))
	}
	for i, rec := range childRows {
		if !parentIDs[rec[1]] {
			t.Errorf("child row %d parent_id %q not among generated parent ids", i, rec[1])
		}
	}
}

// Full-schema smoke: every ERP table produces a file, and every FK column in
// every file points at a key its parent file actually contains.
func TestFullSchemaReferentialIntegrity(t *testing.T) {
	dir := t.TempDir()
	tables := schema.Tables()

	gen := datagen.New(5)
	gen.WarnFunc = func(format string, args ...interface{}) {
		t.Errorf("degraded FK fallback during ordered generation: "+format, args...)
	}

	for _, tbl := range tables {
		if _, err := WriteTable(dir, tbl, gen.Table(tbl)); err != nil {
			t.Fatalf("write %s: %v", tbl.Name, err)
		}
	}

	// Index primary keys per table from the files themselves.
	pks := make(map[string]map[string]bool, len(tables))
	for _, tbl := range tables {
		header, records, err := ReadTable(filepath.Join(dir, tbl.Name+".csv"))
		if err != nil {
			t.Fatalf("read %s: %v", tbl.Name, err)
		}
		if len(records) != 5 {
			t.Fatalf("%s: expected 5 rows, got %d", tbl.Name, len(records))
		}
		pk := tbl.PrimaryKey()
		keys := make(map[string]bool, len(records))
		for col, name := range header {
			if name != pk.Name {
				continue
			}
			for _, rec := range records {
				keys[rec[col]] = true
			}
		}
		pks[tbl.Name] = keys
	}

	for _, tbl := range tables {
		header, records, err := ReadTable(filepath.Join(dir, tbl.Name+".csv"))
		if err != nil {
			t.Fatal(err)
		}
		for colIdx, name := range header {
			col, _ := tbl.Column(name)
			if !col.HasForeignKey() {
				continue
			}
			for rowIdx, rec := range records {
				v := rec[colIdx]
				if v == "" && col.Nullable {
					continue // self-reference root case
				}
				if !pks[col.ForeignKeyTable][v] {
					t.Errorf("%s row %d: %s = %q not found in %s primary keys",
						tbl.Name, rowIdx, name, v, col.ForeignKeyTable)
				}
			}
		}
	}
}
