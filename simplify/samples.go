package simplify

import "github.com/molpopgen/forwardts/tables"

// SamplesInfo names the node sets driving a simplification pass.
type SamplesInfo struct {
	// Samples are the nodes whose ancestry must be retained. They map to
	// output nodes 0..len(Samples)-1 in order.
	Samples []tables.NodeID

	// EdgeBufferFounderNodes are the sample nodes that already existed
	// when the edge buffer was last reset. Only these may have edges in
	// both the pre-existing table and the buffer, so the driver uses
	// them to locate the parents needing the merged treatment. Unused
	// by Tables.
	EdgeBufferFounderNodes []tables.NodeID
}
