package types

// ColumnType is the semantic type tag driving value synthesis and cell
// conversion. It is deliberately coarser than any one database's type system.
type ColumnType string

const (
	TypeUUID      ColumnType = "uuid"
	TypeInteger   ColumnType = "integer"
	TypeString    ColumnType = "string"
	TypeText      ColumnType = "text"
	TypeBoolean   ColumnType = "boolean"
	TypeDate      ColumnType = "date"
	TypeTimestamp ColumnType = "timestamp"
	TypeDecimal   ColumnType = "decimal"
)

type TableSchema struct {
	Name    string
	Columns []ColumnSpec
}

type ColumnSpec struct {
	Name             string
	Type             ColumnType
	Nullable         bool
	Length           int // max length for bounded strings, 0 = unbounded
	Scale            int // fractional digits for decimals, 0 = default (2)
	IsPrimary        bool
	ForeignKeyTable  string
	ForeignKeyColumn string
}

// HasForeignKey reports whether the column references another column.
func (c ColumnSpec) HasForeignKey() bool {
	return c.ForeignKeyTable != ""
}

// PrimaryKey returns the table's primary key column, or nil if the table
// declares none. Composite keys return the first declared key column.
func (t TableSchema) PrimaryKey() *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].IsPrimary {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns column names in declared order.
func (t TableSchema) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (t TableSchema) Column(name string) (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// References returns the distinct parent table names this table depends on
// via foreign keys, excluding self-references.
func (t TableSchema) References() []string {
	seen := make(map[string]bool)
	var refs []string
	for _, c := range t.Columns {
		if !c.HasForeignKey() || c.ForeignKeyTable == t.Name {
			continue
		}
		if !seen[c.ForeignKeyTable] {
			seen[c.ForeignKeyTable] = true
			refs = append(refs, c.ForeignKeyTable)
		}
	}
	return refs
}
