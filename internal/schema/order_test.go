package schema

import (
	"testing"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

func assertParentsFirst(t *testing.T, tables []types.TableSchema) {
	t.Helper()
	position := make(map[string]int, len(tables))
	for i, tbl := range tables {
		position[tbl.Name] = i
	}
	for _, tbl := range tables {
		for _, parent := range tbl.References() {
			pp, ok := position[parent]
			if !ok {
				t.Errorf("table %s references unknown table %s", tbl.Name, parent)
				continue
			}
			if pp >= position[tbl.Name] {
				t.Errorf("table %s (index %d) references %s (index %d), parent must come first",
					tbl.Name, position[tbl.Name], parent, pp)
			}
		}
	}
}

func TestAuthoredOrderSatisfiesDependencies(t *testing.T) {
	assertParentsFirst(t, Tables())
}

func TestSortPutsParentsFirst(t *testing.T) {
	tables := Tables()

	// Feed the schema in reverse so the sort has real work to do.
	reversed := make([]types.TableSchema, len(tables))
	for i, tbl := range tables {
		reversed[len(tables)-1-i] = tbl
	}

	ordered, warnings := Sort(reversed)
	if len(warnings) != 0 {
		t.Fatalf("unexpected cycle warnings: %v", warnings)
	}
	if len(ordered) != len(tables) {
		t.Fatalf("expected %d tables, got %d", len(tables), len(ordered))
	}
	assertParentsFirst(t, ordered)
}

func TestSortIsStable(t *testing.T) {
	first, _ := Sort(Tables())
	second, _ := Sort(Tables())
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("sort not deterministic at index %d: %s vs %s", i, first[i].Name, second[i].Name)
		}
	}
}

func TestSortIgnoresSelfReference(t *testing.T) {
	tables := []types.TableSchema{
		{
			Name: "categories",
			Columns: []types.ColumnSpec{
				{Name: "category_id", Type: types.TypeUUID, IsPrimary: true},
				{Name: "parent_id", Type: types.TypeUUID, Nullable: true, ForeignKeyTable: "categories", ForeignKeyColumn: "category_id"},
			},
		},
	}
	ordered, warnings := Sort(tables)
	if len(warnings) != 0 {
		t.Fatalf("self-reference must not count as a cycle, got warnings %v", warnings)
	}
	if len(ordered) != 1 || ordered[0].Name != "categories" {
		t.Fatalf("unexpected order: %+v", ordered)
	}
}

func TestSortWarnsOnGenuineCycle(t *testing.T) {
	tables := []types.TableSchema{
		{
			Name: "a",
			Columns: []types.ColumnSpec{
				{Name: "a_id", Type: types.TypeUUID, IsPrimary: true},
				{Name: "b_id", Type: types.TypeUUID, ForeignKeyTable: "b", ForeignKeyColumn: "b_id"},
			},
		},
		{
			Name: "b",
			Columns: []types.ColumnSpec{
				{Name: "b_id", Type: types.TypeUUID, IsPrimary: true},
				{Name: "a_id", Type: types.TypeUUID, ForeignKeyTable: "a", ForeignKeyColumn: "a_id"},
			},
		},
		{
			Name: "c",
			Columns: []types.ColumnSpec{
				{Name: "c_id", Type: types.TypeUUID, IsPrimary: true},
			},
		},
	}

	ordered, warnings := Sort(tables)
	if len(ordered) != 3 {
		t.Fatalf("cyclic tables must still be emitted, got %d of 3", len(ordered))
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 cycle warnings, got %v", warnings)
	}
	if ordered[0].Name != "c" {
		t.Errorf("acyclic table should order first, got %s", ordered[0].Name)
	}
	// Cyclic remainder keeps declaration order.
	if ordered[1].Name != "a" || ordered[2].Name != "b" {
		t.Errorf("cyclic remainder should keep declaration order, got %s, %s", ordered[1].Name, ordered[2].Name)
	}
}
