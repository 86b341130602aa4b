package simplify

import "github.com/molpopgen/forwardts/tables"

// Tables simplifies a sorted table collection outright, with no edge
// buffer: every edge already lives in the table, so a single walk over the
// parent runs in descending time order suffices.
//
// tc must be sorted per tables.SortForSimplification. On success the
// collection holds the new node and edge tables and output carries the id
// map. The error contract matches FromEdgeBuffer.
func Tables(
	samples *SamplesInfo,
	flags SimplificationFlags,
	state *SimplificationBuffers,
	tc *tables.TableCollection,
	output *SimplificationOutput,
) error {
	if err := setupSimplification(samples, tc, flags, state, output); err != nil {
		return err
	}

	edgeIndex := 0
	numEdges := tc.NumEdges()
	var err error
	for edgeIndex < numEdges {
		edgeIndex, err = processParent(tc.Edges()[edgeIndex].Parent, edgeIndex, numEdges, tc, state, output)
		if err != nil {
			return err
		}
	}

	commitTables(state, tc)
	return nil
}
