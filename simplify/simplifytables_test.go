package simplify

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/molpopgen/forwardts/tables"
)

func TestTablesPrunesPassThroughChain(t *testing.T) {
	tc, err := tables.New(10)
	assert.NilError(t, err)
	// grandparent -> parent -> sampled child, single lineage throughout
	for _, tm := range []tables.Time{0, 1, 2} {
		_, err := tc.AddNode(tm, 0)
		assert.NilError(t, err)
	}
	_, err = tc.AddEdge(0, 10, 0, 1)
	assert.NilError(t, err)
	_, err = tc.AddEdge(0, 10, 1, 2)
	assert.NilError(t, err)
	tc.SortForSimplification()

	samples := &SamplesInfo{Samples: []tables.NodeID{2}}
	output := NewSimplificationOutput()
	assert.NilError(t, Tables(samples, NoFlags, NewSimplificationBuffers(), tc, output))

	// nothing coalesces, so the whole chain folds into the sample
	assert.Equal(t, 1, tc.NumNodes())
	assert.Equal(t, 0, tc.NumEdges())
	assert.DeepEqual(t, []tables.NodeID{tables.NullID, tables.NullID, 0}, output.IDMap)
}

func TestTablesCoalescence(t *testing.T) {
	tc, err := tables.New(10)
	assert.NilError(t, err)
	for _, tm := range []tables.Time{0, 1, 1} {
		_, err := tc.AddNode(tm, 0)
		assert.NilError(t, err)
	}
	_, err = tc.AddEdge(0, 10, 0, 1)
	assert.NilError(t, err)
	_, err = tc.AddEdge(0, 10, 0, 2)
	assert.NilError(t, err)
	tc.SortForSimplification()

	samples := &SamplesInfo{Samples: []tables.NodeID{1, 2}}
	output := NewSimplificationOutput()
	assert.NilError(t, Tables(samples, NoFlags, NewSimplificationBuffers(), tc, output))

	assert.Equal(t, 3, tc.NumNodes())
	assert.DeepEqual(t, []tables.Edge{
		{Left: 0, Right: 10, Parent: 2, Child: 0},
		{Left: 0, Right: 10, Parent: 2, Child: 1},
	}, tc.Edges())
	assert.DeepEqual(t, []tables.NodeID{2, 0, 1}, output.IDMap)
}

func TestTablesMatchesBufferedPath(t *testing.T) {
	// the buffered driver and the plain table walk must agree when fed
	// the same genealogy
	build := func(t *testing.T) *tables.TableCollection {
		tc, err := tables.New(10)
		assert.NilError(t, err)
		for _, tm := range []tables.Time{0, 0, 1, 2, 2} {
			_, err := tc.AddNode(tm, 0)
			assert.NilError(t, err)
		}
		return tc
	}
	edges := []tables.Edge{
		{Left: 0, Right: 10, Parent: 0, Child: 2},
		{Left: 0, Right: 6, Parent: 2, Child: 3},
		{Left: 0, Right: 10, Parent: 2, Child: 4},
	}
	sampleList := []tables.NodeID{3, 4}

	viaTables := build(t)
	for _, e := range edges {
		_, err := viaTables.AddEdge(e.Left, e.Right, e.Parent, e.Child)
		assert.NilError(t, err)
	}
	viaTables.SortForSimplification()
	outA := NewSimplificationOutput()
	assert.NilError(t, Tables(&SamplesInfo{Samples: sampleList}, NoFlags, NewSimplificationBuffers(), viaTables, outA))

	viaBuffer := build(t)
	buffer := NewEdgeBuffer()
	buffer.Reset(viaBuffer.NumNodes())
	for _, e := range edges {
		assert.NilError(t, RecordBirth(buffer, e.Parent, e.Left, e.Right, e.Child))
	}
	outB := NewSimplificationOutput()
	samples := &SamplesInfo{Samples: sampleList, EdgeBufferFounderNodes: []tables.NodeID{0, 1}}
	assert.NilError(t, FromEdgeBuffer(samples, NoFlags, NewSimplificationBuffers(), buffer, viaBuffer, outB))

	assert.DeepEqual(t, viaTables.Nodes(), viaBuffer.Nodes())
	assert.DeepEqual(t, viaTables.Edges(), viaBuffer.Edges())
	assert.DeepEqual(t, outA.IDMap, outB.IDMap)
}

func TestTablesValidateFlagCatchesUnsortedEdges(t *testing.T) {
	tc, err := tables.New(10)
	assert.NilError(t, err)
	for _, tm := range []tables.Time{0, 1, 2} {
		_, err := tc.AddNode(tm, 0)
		assert.NilError(t, err)
	}
	// deliberately inserted in the wrong order, and not re-sorted
	_, err = tc.AddEdge(0, 10, 0, 1)
	assert.NilError(t, err)
	_, err = tc.AddEdge(0, 10, 1, 2)
	assert.NilError(t, err)

	samples := &SamplesInfo{Samples: []tables.NodeID{2}}
	err = Tables(samples, ValidateTables, NewSimplificationBuffers(), tc, NewSimplificationOutput())
	assert.ErrorIs(t, err, ErrSimplification)
}
