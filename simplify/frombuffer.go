package simplify

import (
	"fmt"
	"math"
	"sort"

	"github.com/molpopgen/forwardts/flist"
	"github.com/molpopgen/forwardts/tables"
)

// runNotFound marks a founder with no edges in the pre-existing table.
// Deliberately the largest int so not-found runs sort after real runs on a
// time tie.
const runNotFound = math.MaxInt

// parentLocation is the contiguous index run [start, stop) of one founder's
// edges in the pre-existing sorted edge table.
type parentLocation struct {
	parent tables.NodeID
	start  int
	stop   int
}

// findPreExistingEdges locates, for every founder with buffered births, its
// edge run in the pre-existing table. The runs come back sorted by parent
// time descending, tie-broken by run start then parent id ascending, and
// are checked for time monotonicity; a violation means the caller broke the
// sort precondition.
func findPreExistingEdges(
	tc *tables.TableCollection,
	founders []tables.NodeID,
	buffer *EdgeBuffer,
) ([]parentLocation, error) {
	var aliveWithNewEdges []tables.NodeID
	for _, a := range founders {
		head, err := buffer.Head(a)
		if err != nil {
			return nil, err
		}
		if head != flist.Null {
			aliveWithNewEdges = append(aliveWithNewEdges, a)
		}
	}
	if len(aliveWithNewEdges) == 0 {
		return nil, nil
	}

	starts := make([]int, tc.NumNodes())
	stops := make([]int, tc.NumNodes())
	for i := range starts {
		starts[i] = runNotFound
		stops[i] = runNotFound
	}
	for i, e := range tc.Edges() {
		if starts[e.Parent] == runNotFound {
			starts[e.Parent] = i
		}
		stops[e.Parent] = i + 1
	}

	locations := make([]parentLocation, 0, len(aliveWithNewEdges))
	for _, a := range aliveWithNewEdges {
		locations = append(locations, parentLocation{parent: a, start: starts[a], stop: stops[a]})
	}

	nodes := tc.Nodes()
	sort.Slice(locations, func(i, j int) bool {
		ti := nodes[locations[i].parent].Time
		tj := nodes[locations[j].parent].Time
		if ti != tj {
			return ti > tj
		}
		if locations[i].start != locations[j].start {
			return locations[i].start < locations[j].start
		}
		return locations[i].parent < locations[j].parent
	})

	for i := 1; i < len(locations); i++ {
		t0 := nodes[locations[i-1].parent].Time
		t1 := nodes[locations[i].parent].Time
		if t0 < t1 {
			return nil, fmt.Errorf("%w: existing edges not properly sorted by time", ErrSimplification)
		}
	}
	return locations, nil
}

// processBirthsFromBuffer queues the buffered births of one parent for the
// sweep, intersecting each child's segment with its resolved ancestry.
func processBirthsFromBuffer(
	parent tables.NodeID,
	buffer *EdgeBuffer,
	state *SimplificationBuffers,
) error {
	var qerr error
	err := buffer.ForEach(parent, func(seg *Segment) bool {
		qerr = queueChildren(seg.Node, seg.Left, seg.Right, state)
		return qerr == nil
	})
	if err != nil {
		return err
	}
	return qerr
}

// FromEdgeBuffer simplifies tc against the births buffered since the last
// pass, merging the pre-existing sorted edge table and the buffer in one
// walk over descending parent birth times.
//
// Preconditions: tc is sorted per tables.SortForSimplification, the buffer
// was Reset to tc's node count when last drained, and
// samples.EdgeBufferFounderNodes holds the sample nodes that predate the
// buffer's content. On success the collection holds the new tables, output
// carries the id map, and the buffer is reset to the new node count. On
// error the structures are left mid-pass and must not be reused as-is.
func FromEdgeBuffer(
	samples *SamplesInfo,
	flags SimplificationFlags,
	state *SimplificationBuffers,
	edgeBuffer *EdgeBuffer,
	tc *tables.TableCollection,
	output *SimplificationOutput,
) error {
	if err := setupSimplification(samples, tc, flags, state, output); err != nil {
		return err
	}

	maxTime := tables.Time(math.MinInt64)
	for _, n := range samples.EdgeBufferFounderNodes {
		if t := tc.Node(n).Time; t > maxTime {
			maxTime = t
		}
	}

	// Pass 1: parents born since the last simplification live only in the
	// buffer. Walk them newest first; the first parent at or below the
	// founder horizon ends the pass, since older parents may need edges
	// from both sources.
	for head := int32(edgeBuffer.Len()) - 1; head >= 0; head-- {
		if tc.Node(head).Time <= maxTime {
			break
		}
		state.overlapper.ClearQueue()
		if err := processBirthsFromBuffer(head, edgeBuffer, state); err != nil {
			return err
		}
		state.overlapper.FinalizeQueue(tc.GenomeLength())
		if err := mergeAncestors(tc.Nodes(), tc.GenomeLength(), head, state, output.IDMap); err != nil {
			return err
		}
	}

	existing, err := findPreExistingEdges(tc, samples.EdgeBufferFounderNodes, edgeBuffer)
	if err != nil {
		return err
	}

	// Pass 2: walk the pre-existing table and the split parents in
	// lockstep by descending time. Ordinary parents take the single
	// source path; a split parent unions its table run with its buffered
	// births into one sweep.
	edgeIndex := 0
	numEdges := tc.NumEdges()
	edges := tc.Edges()
	nodes := tc.Nodes()
	for _, ex := range existing {
		for edgeIndex < numEdges && nodes[edges[edgeIndex].Parent].Time > nodes[ex.parent].Time {
			edgeIndex, err = processParent(edges[edgeIndex].Parent, edgeIndex, numEdges, tc, state, output)
			if err != nil {
				return err
			}
		}
		if ex.start != runNotFound {
			for edgeIndex < ex.start && nodes[edges[edgeIndex].Parent].Time >= nodes[ex.parent].Time {
				edgeIndex, err = processParent(edges[edgeIndex].Parent, edgeIndex, numEdges, tc, state, output)
				if err != nil {
					return err
				}
			}
		}

		state.overlapper.ClearQueue()
		if ex.start != runNotFound {
			for edgeIndex < ex.stop {
				if edges[edgeIndex].Parent != ex.parent {
					return fmt.Errorf("%w: unexpected parent node %d", ErrSimplification, edges[edgeIndex].Parent)
				}
				e := edges[edgeIndex]
				if err := queueChildren(e.Child, e.Left, e.Right, state); err != nil {
					return err
				}
				edgeIndex++
			}
			if edgeIndex < numEdges && edges[edgeIndex].Parent == ex.parent {
				return fmt.Errorf("%w: error traversing pre-existing edges for parent %d", ErrSimplification, ex.parent)
			}
		}
		if err := processBirthsFromBuffer(ex.parent, edgeBuffer, state); err != nil {
			return err
		}
		state.overlapper.FinalizeQueue(tc.GenomeLength())
		if err := mergeAncestors(nodes, tc.GenomeLength(), ex.parent, state, output.IDMap); err != nil {
			return err
		}
	}

	// Pass 3: purely pre-existing parents after the last split parent.
	for edgeIndex < numEdges {
		edgeIndex, err = processParent(edges[edgeIndex].Parent, edgeIndex, numEdges, tc, state, output)
		if err != nil {
			return err
		}
	}

	commitTables(state, tc)
	edgeBuffer.Reset(tc.NumNodes())
	return nil
}
