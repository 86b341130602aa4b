package simplify

import "github.com/molpopgen/forwardts/tables"

// Segment is a half-open genomic interval [Left, Right) associated with a
// node. Producers guarantee Left < Right; it is not re-validated here.
//
// The node's meaning depends on context: in an EdgeBuffer it is the child of
// a birth transmission, in an AncestryList it is the output node an interval
// maps to.
type Segment struct {
	Left  tables.Position
	Right tables.Position
	Node  tables.NodeID
}
