package datagen

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

// Row holds one synthesized record as CSV-ready strings keyed by column
// name. An empty string stands for NULL.
type Row map[string]string

// Generator synthesizes rows for one table at a time, in dependency order.
// All state lives on the generator so runs are independent and testable.
type Generator struct {
	Rows int
	// WarnFunc receives degraded-path notices, e.g. an FK resolved against
	// an empty pool. Defaults to a no-op.
	WarnFunc func(format string, args ...interface{})

	pool *KeyPool
}

const DefaultRows = 50

func New(rows int) *Generator {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Generator{
		Rows:     rows,
		WarnFunc: func(string, ...interface{}) {},
		pool:     NewKeyPool(),
	}
}

// Pool exposes the key pool, primarily for tests and the tables report.
func (g *Generator) Pool() *KeyPool {
	return g.pool
}

// Table synthesizes g.Rows rows for the given table and records every
// primary-key value into the pool for descendant tables. Tables must be
// processed parents-first; FK columns resolve against pools already filled.
func (g *Generator) Table(t types.TableSchema) []Row {
	pk := t.PrimaryKey()
	rows := make([]Row, g.Rows)

	for i := 0; i < g.Rows; i++ {
		row := make(Row, len(t.Columns))
		for _, col := range t.Columns {
			row[col.Name] = g.value(t, col, i)
		}

		if pk != nil {
			key := row[pk.Name]
			if key == "" {
				// Backstop: a primary key must always land in the pool.
				if pk.Type == types.TypeInteger {
					key = strconv.Itoa(i + 1)
				} else {
					key = uuid.NewString()
				}
				row[pk.Name] = key
			}
			g.pool.Add(t.Name, key)
		}
		rows[i] = row
	}
	return rows
}

// value synthesizes one cell. Precedence: integer PK sequence, then FK
// resolution, then semantic type dispatch.
func (g *Generator) value(t types.TableSchema, col types.ColumnSpec, rowIdx int) string {
	if col.IsPrimary && col.Type == types.TypeInteger {
		return strconv.Itoa(rowIdx + 1)
	}

	if col.HasForeignKey() {
		return g.foreignKey(t, col)
	}

	return g.typed(col)
}

// foreignKey picks a key from the referenced table's pool. Self-references
// read the same table's in-progress pool, so the first row of such a table
// has no candidate and becomes NULL when the column allows it. An empty
// pool on a regular FK means the ordering was violated; the value degrades
// to a type-consistent fake and is reported through WarnFunc.
func (g *Generator) foreignKey(t types.TableSchema, col types.ColumnSpec) string {
	key, ok := g.pool.Random(col.ForeignKeyTable)
	if ok {
		return key
	}

	if col.ForeignKeyTable == t.Name && col.Nullable {
		return ""
	}

	g.WarnFunc("no generated keys for %s, %s.%s falls back to a synthetic value (referential integrity broken)",
		col.ForeignKeyTable, t.Name, col.Name)
	if col.Type == types.TypeInteger {
		return strconv.Itoa(1 + randN(g.Rows*10))
	}
	return uuid.NewString()
}

func (g *Generator) typed(col types.ColumnSpec) string {
	switch col.Type {
	case types.TypeUUID:
		return uuid.NewString()
	case types.TypeInteger:
		return strconv.Itoa(1 + randN(g.Rows*10))
	case types.TypeBoolean:
		if randomBool() {
			return "true"
		}
		return "false"
	case types.TypeDate:
		return randomDate()
	case types.TypeTimestamp:
		return randomTimestamp()
	case types.TypeDecimal:
		return randomDecimal(col.Scale)
	default:
		return fakeString(col.Name, col.Length)
	}
}
