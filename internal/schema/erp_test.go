package schema

import "testing"

func TestSchemaShape(t *testing.T) {
	tables := Tables()
	if len(tables) != 27 {
		t.Fatalf("expected 27 tables, got %d", len(tables))
	}

	seen := make(map[string]bool)
	for _, tbl := range tables {
		if seen[tbl.Name] {
			t.Errorf("duplicate table %s", tbl.Name)
		}
		seen[tbl.Name] = true

		if tbl.PrimaryKey() == nil {
			t.Errorf("table %s has no primary key", tbl.Name)
		}
		if len(tbl.Columns) == 0 {
			t.Errorf("table %s has no columns", tbl.Name)
		}
	}
}

func TestForeignKeyTargetsExist(t *testing.T) {
	tables := Tables()
	byName := make(map[string]bool, len(tables))
	for _, tbl := range tables {
		byName[tbl.Name] = true
	}

	for _, tbl := range tables {
		for _, col := range tbl.Columns {
			if !col.HasForeignKey() {
				continue
			}
			if !byName[col.ForeignKeyTable] {
				t.Errorf("%s.%s references missing table %s", tbl.Name, col.Name, col.ForeignKeyTable)
			}
		}
	}
}

func TestAccountsSelfReference(t *testing.T) {
	for _, tbl := range Tables() {
		if tbl.Name != "accounts" {
			continue
		}
		col, ok := tbl.Column("parent_account_id")
		if !ok {
			t.Fatal("accounts.parent_account_id missing")
		}
		if col.ForeignKeyTable != "accounts" || col.ForeignKeyColumn != "account_id" {
			t.Errorf("parent_account_id should reference accounts.account_id, got %s.%s",
				col.ForeignKeyTable, col.ForeignKeyColumn)
		}
		if !col.Nullable {
			t.Error("parent_account_id must be nullable, the first generated row has no parent candidate")
		}
		return
	}
	t.Fatal("accounts table missing")
}
