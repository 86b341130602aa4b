// Package simplify compacts the genealogy recorded by a forward-time
// simulation down to the lineages ancestral to a designated sample set.
//
// # Motivation
//
// A forward simulation produces one node per birth and a handful of edges
// per transmission. Almost all of that material is irrelevant within a few
// generations: lineages die out, and surviving lineages coalesce. Keeping
// the full pedigree costs O(total births); periodically simplifying keeps
// memory bounded and amortises towards O(samples * log samples) per pass.
//
// Births are logged cheaply in an EdgeBuffer, a flist arena keyed by parent
// node id. A pass then walks parents strictly by descending birth time, so
// every child's ancestry is fully resolved before its parent consumes it.
// For each parent the children's ancestry segments are intersected with the
// parent's transmitted intervals, swept left to right by a SegmentOverlapper,
// and merged:
//
//   - an interval with one overlapping lineage passes through unchanged, no
//     edge is emitted and no node is allocated (unless the parent is itself
//     a retained sample);
//   - an interval with two or more overlapping lineages is a coalescence:
//     the parent gets an output node and one output edge per lineage.
//
// The swept results are recorded in an AncestryList so the parent can in
// turn be consumed as a child, and a new node/edge table pair accumulates.
// Finally the new tables are swapped into the TableCollection in one move
// and the buffer is reset for the next epoch.
//
// # Entry points
//
// Tables simplifies a sorted TableCollection outright. FromEdgeBuffer merges
// two sorted edge sources - the previously simplified table and the births
// buffered since - in a single pass, which is the cheap path for repeated
// use inside a simulation loop. Simplifier wraps either with reusable
// scratch buffers and structured logging.
//
// Everything here is single threaded and synchronous. The scratch state
// exists purely to amortise allocation across passes; callers must serialize
// access. Any error aborts a pass and leaves the tables and buffer in an
// intermediate state that must not be reused without re-establishing the
// input invariants.
package simplify
