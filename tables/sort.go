package tables

import "sort"

// SortForSimplification establishes the order the simplification passes
// require as a precondition.
//
// Edges sort by parent birth time, descending, so that children are always
// processed before their parents. Ties break by parent id, then child id,
// then left coordinate, ascending, giving each parent one contiguous run of
// edges grouped by child. Mutations sort by site position, descending.
//
// The passes only partially re-check this order; calling them on unsorted
// tables is undefined beyond that check.
func (tc *TableCollection) SortForSimplification() {
	nodes := tc.nodes
	sort.SliceStable(tc.edges, func(i, j int) bool {
		a, b := tc.edges[i], tc.edges[j]
		ta := nodes[a.Parent].Time
		tb := nodes[b.Parent].Time
		if ta != tb {
			return ta > tb
		}
		if a.Parent != b.Parent {
			return a.Parent < b.Parent
		}
		if a.Child != b.Child {
			return a.Child < b.Child
		}
		return a.Left < b.Left
	})
	sort.SliceStable(tc.mutations, func(i, j int) bool {
		return tc.sites[tc.mutations[i].Site].Position > tc.sites[tc.mutations[j].Site].Position
	})
}
