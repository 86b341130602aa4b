package tables

// NodeID indexes a row of the node table. Ids are dense and assigned in
// birth order by forward simulations, which the simplification passes rely
// on when walking nodes newest-first.
type NodeID = int32

// NullID marks an absent or pruned node, for example in an id map.
const NullID NodeID = -1

// Position is a discrete genomic coordinate. Intervals over positions are
// half open: [left, right).
type Position = int64

// Time is a birth time. Forward simulations count time upwards, so larger
// values are more recent.
type Time = int64
