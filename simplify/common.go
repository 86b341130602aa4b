package simplify

import (
	"fmt"

	"github.com/molpopgen/forwardts/tables"
)

// setupSimplification wipes the scratch state, sizes the id map, consults
// the flags and records the sample nodes as the first output nodes.
func setupSimplification(
	samples *SamplesInfo,
	tc *tables.TableCollection,
	flags SimplificationFlags,
	state *SimplificationBuffers,
	output *SimplificationOutput,
) error {
	if unknown := flags &^ knownFlags; unknown != 0 {
		return fmt.Errorf("%w: %#x", ErrUnknownFlags, uint32(unknown))
	}
	if flags&ValidateTables != 0 {
		if err := validateEdgeSort(tc); err != nil {
			return err
		}
	}
	state.reset(tc.NumNodes())
	output.reset(tc.NumNodes())
	return recordSampleNodes(samples.Samples, tc, state, output.IDMap)
}

// validateEdgeSort checks the full documented edge sort order, not just the
// time monotonicity the passes verify on their own.
func validateEdgeSort(tc *tables.TableCollection) error {
	nodes := tc.Nodes()
	edges := tc.Edges()
	for i := 1; i < len(edges); i++ {
		a, b := edges[i-1], edges[i]
		ta, tb := nodes[a.Parent].Time, nodes[b.Parent].Time
		switch {
		case ta > tb:
			continue
		case ta < tb:
			return fmt.Errorf("%w: edge table not sorted by parent time at row %d", ErrSimplification, i)
		case a.Parent != b.Parent:
			if a.Parent > b.Parent {
				return fmt.Errorf("%w: edge table not sorted by parent id at row %d", ErrSimplification, i)
			}
		case a.Child != b.Child:
			if a.Child > b.Child {
				return fmt.Errorf("%w: edge table not sorted by child id at row %d", ErrSimplification, i)
			}
		case a.Left > b.Left:
			return fmt.Errorf("%w: edge table not sorted by left coordinate at row %d", ErrSimplification, i)
		}
	}
	return nil
}

// recordSampleNodes allocates output nodes 0..len(samples)-1 for the sample
// list and seeds each sample's ancestry with its whole genome mapped to
// itself.
func recordSampleNodes(
	samples []tables.NodeID,
	tc *tables.TableCollection,
	state *SimplificationBuffers,
	idmap []tables.NodeID,
) error {
	for _, sample := range samples {
		if sample < 0 || int(sample) >= tc.NumNodes() {
			return fmt.Errorf("%w: %d", tables.ErrInvalidNodeValue, sample)
		}
		if idmap[sample] != tables.NullID {
			return fmt.Errorf("%w: node %d repeated in sample list", ErrSimplification, sample)
		}
		n := tc.Node(sample)
		state.newNodes = append(state.newNodes, tables.Node{Time: n.Time, Deme: n.Deme})
		idmap[sample] = tables.NodeID(len(state.newNodes) - 1)
		if err := state.ancestry.Extend(sample, Segment{
			Left:  0,
			Right: tc.GenomeLength(),
			Node:  idmap[sample],
		}); err != nil {
			return err
		}
	}
	return nil
}

// queueChildren intersects the child's resolved ancestry with the interval
// the parent transmitted and stages each overlap for the sweep.
func queueChildren(
	child tables.NodeID,
	left, right tables.Position,
	state *SimplificationBuffers,
) error {
	return state.ancestry.ForEach(child, func(seg *Segment) bool {
		if seg.Right > left && right > seg.Left {
			o := max(seg.Left, left)
			r := min(seg.Right, right)
			state.overlapper.Enqueue(o, r, seg.Node)
		}
		return true
	})
}

// processParent consumes parent's contiguous edge run starting at
// edgeIndex, sweeps it and merges, returning the index one past the run.
func processParent(
	parent tables.NodeID,
	edgeIndex, numEdges int,
	tc *tables.TableCollection,
	state *SimplificationBuffers,
	output *SimplificationOutput,
) (int, error) {
	state.overlapper.ClearQueue()
	edges := tc.Edges()
	i := edgeIndex
	for i < numEdges && edges[i].Parent == parent {
		e := edges[i]
		if err := queueChildren(e.Child, e.Left, e.Right, state); err != nil {
			return i, err
		}
		i++
	}
	state.overlapper.FinalizeQueue(tc.GenomeLength())
	if err := mergeAncestors(tc.Nodes(), tc.GenomeLength(), parent, state, output.IDMap); err != nil {
		return i, err
	}
	return i, nil
}

// commitTables swaps the freshly built node and edge tables into the
// collection. The previous tables stay with the scratch state so their
// capacity is reused next pass.
func commitTables(state *SimplificationBuffers, tc *tables.TableCollection) {
	state.newNodes, state.newEdges = tc.ReplaceNodesAndEdges(state.newNodes, state.newEdges)
}
