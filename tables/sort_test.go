package tables

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSortForSimplification(t *testing.T) {
	tc, err := New(10)
	require.NoError(t, err)

	// 0, 1 born first, then 2, then 3 and 4
	for _, n := range []Node{{Time: 0}, {Time: 0}, {Time: 1}, {Time: 2}, {Time: 2}} {
		_, err := tc.AddNode(n.Time, n.Deme)
		require.NoError(t, err)
	}
	// insertion order is scrambled relative to the documented sort
	for _, e := range []Edge{
		{Left: 0, Right: 10, Parent: 0, Child: 2},
		{Left: 5, Right: 10, Parent: 2, Child: 4},
		{Left: 0, Right: 5, Parent: 2, Child: 4},
		{Left: 0, Right: 10, Parent: 2, Child: 3},
		{Left: 0, Right: 10, Parent: 1, Child: 2},
	} {
		_, err := tc.AddEdge(e.Left, e.Right, e.Parent, e.Child)
		require.NoError(t, err)
	}

	tc.SortForSimplification()

	want := []Edge{
		// parent 2 is youngest and comes first; its run groups by child, then left
		{Left: 0, Right: 10, Parent: 2, Child: 3},
		{Left: 0, Right: 5, Parent: 2, Child: 4},
		{Left: 5, Right: 10, Parent: 2, Child: 4},
		// time tie between parents 0 and 1 breaks by parent id
		{Left: 0, Right: 10, Parent: 0, Child: 2},
		{Left: 0, Right: 10, Parent: 1, Child: 2},
	}
	if diff := cmp.Diff(want, tc.Edges()); diff != "" {
		t.Errorf("edge order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortMutationsByPositionDescending(t *testing.T) {
	tc, err := New(100)
	require.NoError(t, err)
	_, err = tc.AddNode(0, 0)
	require.NoError(t, err)

	for _, pos := range []Position{3, 77, 15} {
		_, err := tc.AddSite(pos, 0)
		require.NoError(t, err)
	}
	for site := range tc.Sites() {
		_, err := tc.AddMutation(0, site, site, 1, true)
		require.NoError(t, err)
	}

	tc.SortForSimplification()

	var got []Position
	for _, m := range tc.Mutations() {
		got = append(got, tc.Sites()[m.Site].Position)
	}
	if diff := cmp.Diff([]Position{77, 15, 3}, got); diff != "" {
		t.Errorf("mutation order mismatch (-want +got):\n%s", diff)
	}
}
