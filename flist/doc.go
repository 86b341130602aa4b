// Package flist provides a compact arena representation of many independent
// forward linked lists.
//
// A conventional forward list allocates one node per element and chains them
// with pointers. When an algorithm needs thousands of small lists - one per
// genome, one per tree node, one per parent - that layout scatters the data
// across the heap and the traversal cost is dominated by cache misses.
//
// List flattens every list into four parallel growable slices. The i-th list
// is addressed through head[i] and tail[i], which hold record indices into a
// shared data slice, and next[r] links record r to the record appended after
// it in the same list. The value -1 (Null) stands in for a nil pointer
// everywhere.
//
//	head:  [ 0 -1  2 ]
//	tail:  [ 3 -1  2 ]
//	next:  [ 1  3 -1 -1 ]
//	data:  [ a  b  c  d ]        list 0 = a, b, d    list 2 = c
//
// Appending is O(1) amortised. Records are never removed individually:
// storage only ever grows, and is given back wholesale by Clear or Reset.
// NullifyList detaches a list from traversal without reclaiming its records;
// a free list of reusable slots is a possible future extension.
//
// The type is not safe for concurrent use.
package flist
