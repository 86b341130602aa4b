package tables

import "fmt"

// Node is a birth event: when, and in which deme.
type Node struct {
	Time Time
	Deme int32
}

// Edge records that Child inherited the interval [Left, Right) from Parent.
type Edge struct {
	Left   Position
	Right  Position
	Parent NodeID
	Child  NodeID
}

// Site is the position and ancestral state of a variant.
type Site struct {
	Position       Position
	AncestralState int8
}

// Mutation is the minimal bookkeeping needed to track a mutation on a tree
// sequence. Key indexes simulation-owned metadata and is opaque here.
type Mutation struct {
	Node         NodeID
	Key          int
	Site         int
	DerivedState int8
	Neutral      bool
}

func positionNonNegative(x Position) error {
	if x < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, x)
	}
	return nil
}

func nodeNonNegative(x NodeID) error {
	if x < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodeValue, x)
	}
	return nil
}

func timeNonNegative(x Time) error {
	if x < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTime, x)
	}
	return nil
}

func demeNonNegative(x int32) error {
	if x < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDeme, x)
	}
	return nil
}

// TableCollection gathers the node, edge, site and mutation tables for one
// genome of a fixed length.
type TableCollection struct {
	length Position

	nodes     []Node
	edges     []Edge
	sites     []Site
	mutations []Mutation
}

// New returns an empty collection over a genome of the given length.
func New(genomeLength Position) (*TableCollection, error) {
	if genomeLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGenomeLength, genomeLength)
	}
	return &TableCollection{length: genomeLength}, nil
}

// AddNode appends a node row and returns its id.
func (tc *TableCollection) AddNode(time Time, deme int32) (NodeID, error) {
	if err := timeNonNegative(time); err != nil {
		return NullID, err
	}
	if err := demeNonNegative(deme); err != nil {
		return NullID, err
	}
	tc.nodes = append(tc.nodes, Node{Time: time, Deme: deme})
	return NodeID(len(tc.nodes) - 1), nil
}

// AddEdge appends an edge row. Rows with right <= left, or with any negative
// coordinate or node id, are rejected and never reach the table.
func (tc *TableCollection) AddEdge(left, right Position, parent, child NodeID) (int, error) {
	if right <= left {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidLeftRight, left, right)
	}
	if err := positionNonNegative(left); err != nil {
		return 0, err
	}
	if err := positionNonNegative(right); err != nil {
		return 0, err
	}
	if err := nodeNonNegative(parent); err != nil {
		return 0, err
	}
	if err := nodeNonNegative(child); err != nil {
		return 0, err
	}
	tc.edges = append(tc.edges, Edge{Left: left, Right: right, Parent: parent, Child: child})
	return len(tc.edges), nil
}

// AddSite appends a site row. The position must lie on the genome.
func (tc *TableCollection) AddSite(position Position, ancestralState int8) (int, error) {
	if err := positionNonNegative(position); err != nil {
		return 0, err
	}
	if position >= tc.length {
		return 0, fmt.Errorf("%w: %d beyond genome length %d", ErrInvalidPosition, position, tc.length)
	}
	tc.sites = append(tc.sites, Site{Position: position, AncestralState: ancestralState})
	return len(tc.sites), nil
}

// AddMutation appends a mutation row.
func (tc *TableCollection) AddMutation(node NodeID, key, site int, derivedState int8, neutral bool) (int, error) {
	if err := nodeNonNegative(node); err != nil {
		return 0, err
	}
	tc.mutations = append(tc.mutations, Mutation{
		Node:         node,
		Key:          key,
		Site:         site,
		DerivedState: derivedState,
		Neutral:      neutral,
	})
	return len(tc.mutations), nil
}

// GenomeLength returns the genome length the collection was created with.
func (tc *TableCollection) GenomeLength() Position {
	return tc.length
}

// Nodes returns the node table. The slice is a view; it must not be resized
// by callers.
func (tc *TableCollection) Nodes() []Node {
	return tc.nodes
}

// Node returns the node row for id. The id must be in range.
func (tc *TableCollection) Node(id NodeID) Node {
	return tc.nodes[id]
}

// Edges returns the edge table as a view.
func (tc *TableCollection) Edges() []Edge {
	return tc.edges
}

// Sites returns the site table as a view.
func (tc *TableCollection) Sites() []Site {
	return tc.sites
}

// Mutations returns the mutation table as a view.
func (tc *TableCollection) Mutations() []Mutation {
	return tc.mutations
}

// NumNodes returns the number of node rows.
func (tc *TableCollection) NumNodes() int {
	return len(tc.nodes)
}

// NumEdges returns the number of edge rows.
func (tc *TableCollection) NumEdges() int {
	return len(tc.edges)
}

// ReplaceNodesAndEdges installs replacement node and edge tables, returning
// the previous tables so callers can reuse their capacity. Simplification
// commits its output through this single swap: external observers see either
// the old tables or the complete new ones, never a partial mix.
func (tc *TableCollection) ReplaceNodesAndEdges(nodes []Node, edges []Edge) ([]Node, []Edge) {
	oldNodes, oldEdges := tc.nodes, tc.edges
	tc.nodes, tc.edges = nodes, edges
	return oldNodes, oldEdges
}
