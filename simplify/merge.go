package simplify

import (
	"github.com/molpopgen/forwardts/flist"
	"github.com/molpopgen/forwardts/tables"
)

// mergeAncestors consumes the overlapper's swept intervals for one parent,
// allocating coalescence nodes and edges lazily and updating the parent's
// own ancestry and the id map.
//
// An interval with a single overlapping lineage passes through: the parent
// maps the interval straight to that lineage and no edge is emitted. With
// two or more lineages the parent is a coalescence ancestor: it gets an
// output node on first need (copying the input time and deme) and one edge
// per lineage. A parent that is itself a retained sample instead emits
// pass-through intervals as edges immediately and keeps mapping its whole
// genome to itself, including any gaps the sweep never covered.
//
// The overlapper must have been finalized by the caller. Any arena failure
// surfaced here is fatal to the pass.
func mergeAncestors(
	inputNodes []tables.Node,
	genomeLength tables.Position,
	parent tables.NodeID,
	state *SimplificationBuffers,
	idmap []tables.NodeID,
) error {
	outputID := idmap[parent]
	isSample := outputID != tables.NullID
	if isSample {
		// the sample's whole-genome self mapping recorded at setup is
		// rebuilt interval by interval below
		if err := state.ancestry.NullifyList(parent); err != nil {
			return err
		}
	}

	state.tempEdges.Reset(len(state.newNodes))

	previousRight := tables.Position(0)
	for state.overlapper.Advance() {
		left, right := state.overlapper.Left(), state.overlapper.Right()
		overlaps := state.overlapper.Overlaps()

		var ancestryNode tables.NodeID
		if len(overlaps) == 1 {
			ancestryNode = overlaps[0].Node
			if isSample {
				if err := bufferEdge(state, left, right, ancestryNode); err != nil {
					return err
				}
				ancestryNode = outputID
			}
		} else {
			if outputID == tables.NullID {
				n := inputNodes[parent]
				state.newNodes = append(state.newNodes, tables.Node{Time: n.Time, Deme: n.Deme})
				outputID = tables.NodeID(len(state.newNodes) - 1)
				idmap[parent] = outputID
			}
			ancestryNode = outputID
			for _, seg := range overlaps {
				if err := bufferEdge(state, left, right, seg.Node); err != nil {
					return err
				}
			}
		}

		if isSample && left != previousRight {
			// keep the sample's own ancestry gap free
			if err := addAncestry(parent, previousRight, left, outputID, &state.ancestry); err != nil {
				return err
			}
		}
		if err := addAncestry(parent, left, right, ancestryNode, &state.ancestry); err != nil {
			return err
		}
		previousRight = right
	}
	if isSample && previousRight != genomeLength {
		if err := addAncestry(parent, previousRight, genomeLength, outputID, &state.ancestry); err != nil {
			return err
		}
	}

	if outputID != tables.NullID {
		emitted, err := outputBufferedEdges(state, outputID)
		if err != nil {
			return err
		}
		if emitted == 0 && !isSample {
			// the node allocated above turned out not to coalesce
			// anything after all; take it back
			state.newNodes = state.newNodes[:len(state.newNodes)-1]
			idmap[parent] = tables.NullID
		}
	}
	return nil
}

// addAncestry records [left, right) -> node for input node id, widening the
// previous entry instead when the new interval abuts it and maps to the
// same node.
func addAncestry(
	id tables.NodeID,
	left, right tables.Position,
	node tables.NodeID,
	ancestry *AncestryList,
) error {
	tail, err := ancestry.Tail(id)
	if err != nil {
		return err
	}
	if tail == flist.Null {
		return ancestry.Extend(id, Segment{Left: left, Right: right, Node: node})
	}
	last, err := ancestry.Fetch(tail)
	if err != nil {
		return err
	}
	if last.Right == left && last.Node == node {
		last.Right = right
		return nil
	}
	return ancestry.Extend(id, Segment{Left: left, Right: right, Node: node})
}

// bufferEdge stages an output edge to child over [left, right), extending
// the child's previous staged interval when contiguous.
func bufferEdge(state *SimplificationBuffers, left, right tables.Position, child tables.NodeID) error {
	tail, err := state.tempEdges.Tail(child)
	if err != nil {
		return err
	}
	if tail == flist.Null {
		return state.tempEdges.Extend(child, Segment{Left: left, Right: right, Node: tables.NullID})
	}
	last, err := state.tempEdges.Fetch(tail)
	if err != nil {
		return err
	}
	if last.Right == left {
		last.Right = right
		return nil
	}
	return state.tempEdges.Extend(child, Segment{Left: left, Right: right, Node: tables.NullID})
}

// outputBufferedEdges flushes the staged edges for parent into the new edge
// table, grouped by child id ascending and by left within a child, and
// returns how many edges were emitted.
func outputBufferedEdges(state *SimplificationBuffers, parent tables.NodeID) (int, error) {
	emitted := 0
	for child, head := range state.tempEdges.Heads() {
		if head == flist.Null {
			continue
		}
		err := state.tempEdges.ForEach(int32(child), func(seg *Segment) bool {
			state.newEdges = append(state.newEdges, tables.Edge{
				Left:   seg.Left,
				Right:  seg.Right,
				Parent: parent,
				Child:  tables.NodeID(child),
			})
			emitted++
			return true
		})
		if err != nil {
			return emitted, err
		}
	}
	return emitted, nil
}
