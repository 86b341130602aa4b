package simplify

import "github.com/molpopgen/forwardts/tables"

// SimplificationOutput receives the results of a pass beyond the tables
// themselves.
type SimplificationOutput struct {
	// IDMap maps each input node id to its output id, or tables.NullID
	// for nodes pruned from the genealogy. Sized to the input node count
	// at setup.
	IDMap []tables.NodeID
}

// NewSimplificationOutput returns an empty output object.
func NewSimplificationOutput() *SimplificationOutput {
	return &SimplificationOutput{}
}

func (o *SimplificationOutput) reset(numNodes int) {
	if cap(o.IDMap) < numNodes {
		o.IDMap = make([]tables.NodeID, numNodes)
	}
	o.IDMap = o.IDMap[:numNodes]
	for i := range o.IDMap {
		o.IDMap[i] = tables.NullID
	}
}
