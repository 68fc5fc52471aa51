package schema

import (
	"sort"

	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

// Sort derives a generation order from the foreign-key graph: every parent
// table comes before all tables referencing it. Self-references are ignored,
// since those resolve against the same table's in-progress key pool. If the
// remaining graph still contains a cycle, the cyclic tables are appended in
// declaration order and their names returned as warnings; generation for
// them degrades to fallback FK values rather than failing outright.
func Sort(tables []types.TableSchema) ([]types.TableSchema, []string) {
	byName := make(map[string]types.TableSchema, len(tables))
	declared := make(map[string]int, len(tables))
	for i, t := range tables {
		byName[t.Name] = t
		declared[t.Name] = i
	}

	// indegree counts FK edges to parents declared in this schema set;
	// references to unknown tables cannot be ordered and are skipped.
	indegree := make(map[string]int, len(tables))
	children := make(map[string][]string)
	for _, t := range tables {
		indegree[t.Name] = 0
	}
	for _, t := range tables {
		for _, parent := range t.References() {
			if _, ok := byName[parent]; !ok {
				continue
			}
			indegree[t.Name]++
			children[parent] = append(children[parent], t.Name)
		}
	}

	ready := make([]string, 0, len(tables))
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}

	ordered := make([]types.TableSchema, 0, len(tables))
	for len(ready) > 0 {
		// Stable tie-break: among tables with no remaining parents, keep
		// declaration order so repeated runs produce identical orderings.
		sort.Slice(ready, func(i, j int) bool {
			return declared[ready[i]] < declared[ready[j]]
		})
		name := ready[0]
		ready = ready[1:]

		ordered = append(ordered, byName[name])
		for _, child := range children[name] {
			indegree[child]--
			if indegree[child] == 0 {
				ready = append(ready, child)
			}
		}
	}

	if len(ordered) == len(tables) {
		return ordered, nil
	}

	// Cyclic remainder: emit in declaration order and report it.
	placed := make(map[string]bool, len(ordered))
	for _, t := range ordered {
		placed[t.Name] = true
	}
	var warnings []string
	for _, t := range tables {
		if !placed[t.Name] {
			ordered = append(ordered, t)
			warnings = append(warnings, t.Name)
		}
	}
	return ordered, warnings
}
