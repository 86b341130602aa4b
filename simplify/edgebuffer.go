package simplify

import (
	"github.com/molpopgen/forwardts/flist"
	"github.com/molpopgen/forwardts/tables"
)

// EdgeBuffer is an append-only log of birth transmissions, keyed by parent
// node id. Each entry records that the parent transmitted [Left, Right) to
// the child held in Segment.Node.
//
// The buffering protocol between simplifications:
//
//  1. After a pass, the buffer is Reset to the new node count and the
//     caller records the surviving pre-pass sample nodes as the founders
//     (SamplesInfo.EdgeBufferFounderNodes).
//  2. During simulation, every birth appends via RecordBirth. Because
//     births happen in time order and node ids are assigned in birth
//     order, each parent's list is sorted by insertion and parents with
//     higher ids are never older than parents with lower ids.
//  3. FromEdgeBuffer consumes the buffer together with the sorted tables
//     and resets it again.
//
// Only the founders may have edges both in the tables and in the buffer;
// the driver gives them the merged treatment.
type EdgeBuffer = flist.List[Segment]

// NewEdgeBuffer returns an empty buffer. Callers normally Reset it to the
// current node table size before recording births.
func NewEdgeBuffer() *EdgeBuffer {
	return flist.New[Segment]()
}

// RecordBirth logs the transmission of [left, right) from parent to child.
func RecordBirth(buffer *EdgeBuffer, parent tables.NodeID, left, right tables.Position, child tables.NodeID) error {
	return buffer.Extend(parent, Segment{Left: left, Right: right, Node: child})
}

// AncestryList maps each input node, once processed, to the output nodes
// its genome is ancestral to and over which intervals. Keyed by input node
// id. Entries for a node are only trustworthy after the node itself has
// been processed; the strict time-descending processing order guarantees
// children are resolved before their parents look them up.
type AncestryList = flist.List[Segment]
