package simplify

import (
	"github.com/molpopgen/forwardts/flist"
	"github.com/molpopgen/forwardts/tables"
)

// SimplificationBuffers is the scratch state of a pass: the ancestry map,
// the overlapper, a per-parent edge staging area, and the new tables under
// construction. Reusing one instance across passes amortises allocation.
// There are no invariants carried between passes; setup wipes everything.
type SimplificationBuffers struct {
	ancestry   AncestryList
	overlapper SegmentOverlapper

	// tempEdges stages the current parent's output edges, keyed by output
	// child id, so they can be squashed per child and emitted grouped by
	// child then left.
	tempEdges flist.List[Segment]

	newNodes []tables.Node
	newEdges []tables.Edge
}

// NewSimplificationBuffers returns empty scratch state.
func NewSimplificationBuffers() *SimplificationBuffers {
	return &SimplificationBuffers{}
}

func (s *SimplificationBuffers) reset(numNodes int) {
	s.ancestry.Reset(numNodes)
	s.overlapper.ClearQueue()
	s.tempEdges.Reset(0)
	s.newNodes = s.newNodes[:0]
	s.newEdges = s.newEdges[:0]
}
