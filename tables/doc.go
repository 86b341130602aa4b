// Package tables defines the row storage for a forward-time tree sequence:
// node, edge, site and mutation tables gathered into a TableCollection.
//
// Rows are validated on insertion and otherwise stored as flat slices. The
// collection knows nothing about simplification beyond the sort order the
// simplification passes require (see SortForSimplification) and the bulk
// table replacement they commit with (see ReplaceNodesAndEdges).
package tables
