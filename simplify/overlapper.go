package simplify

import (
	"sort"

	"github.com/molpopgen/forwardts/tables"
)

// SegmentOverlapper sweeps an unordered batch of segments into maximal
// sub-intervals with a stable set of overlapping nodes.
//
// Usage is a three phase cycle per parent: Enqueue each intersected child
// segment, FinalizeQueue once, then iterate:
//
//	for o.Advance() {
//		left, right := o.Left(), o.Right()
//		overlaps := o.Overlaps()
//		...
//	}
//
// Between consecutive breakpoints (the enqueued lefts and rights, in order)
// the sweep reports one interval [Left, Right) together with every enqueued
// segment covering it. Nothing is reported for an empty queue. ClearQueue
// rearms the overlapper without releasing its storage.
type SegmentOverlapper struct {
	queue       []Segment
	overlapping []Segment
	left        tables.Position
	right       tables.Position
	qindex      int
}

// Enqueue stages one segment for the next sweep.
func (o *SegmentOverlapper) Enqueue(left, right tables.Position, node tables.NodeID) {
	o.queue = append(o.queue, Segment{Left: left, Right: right, Node: node})
}

// ClearQueue resets the overlapper for a new batch. Storage is retained.
func (o *SegmentOverlapper) ClearQueue() {
	o.queue = o.queue[:0]
	o.overlapping = o.overlapping[:0]
	o.left = 0
	o.right = 0
	o.qindex = 0
}

// FinalizeQueue bounds the sweep to [0, genomeLength) and prepares the
// staged segments: a stable sort by left coordinate (ties keep insertion
// order) plus a sentinel past the end of the genome so the sweep never has
// to special-case queue exhaustion.
func (o *SegmentOverlapper) FinalizeQueue(genomeLength tables.Position) {
	sort.SliceStable(o.queue, func(i, j int) bool {
		return o.queue[i].Left < o.queue[j].Left
	})
	o.queue = append(o.queue, Segment{Left: genomeLength + 1, Right: genomeLength + 2, Node: tables.NullID})
	o.overlapping = o.overlapping[:0]
	o.left = 0
	o.right = 0
	o.qindex = 0
}

// Advance moves the sweep to the next reportable interval, returning false
// once the queue and the open set are both exhausted.
func (o *SegmentOverlapper) Advance() bool {
	n := len(o.queue) - 1 // the last entry is the sentinel
	if o.qindex < n {
		o.left = o.right
		o.dropFinished()
		if len(o.overlapping) == 0 {
			// a gap with nothing overlapping: skip to the next segment
			o.left = o.queue[o.qindex].Left
		}
		for o.qindex < n && o.queue[o.qindex].Left == o.left {
			o.overlapping = append(o.overlapping, o.queue[o.qindex])
			o.qindex++
		}
		o.right = o.queue[o.qindex].Left
		for _, seg := range o.overlapping {
			if seg.Right < o.right {
				o.right = seg.Right
			}
		}
		return true
	}

	// queue exhausted; drain whatever is still open
	o.left = o.right
	o.dropFinished()
	if len(o.overlapping) > 0 {
		o.right = o.overlapping[0].Right
		for _, seg := range o.overlapping[1:] {
			if seg.Right < o.right {
				o.right = seg.Right
			}
		}
		return true
	}
	return false
}

// dropFinished removes segments ending at or before the current left edge.
func (o *SegmentOverlapper) dropFinished() {
	keep := o.overlapping[:0]
	for _, seg := range o.overlapping {
		if seg.Right > o.left {
			keep = append(keep, seg)
		}
	}
	o.overlapping = keep
}

// Left returns the left edge of the current interval.
func (o *SegmentOverlapper) Left() tables.Position { return o.left }

// Right returns the right edge of the current interval.
func (o *SegmentOverlapper) Right() tables.Position { return o.right }

// Overlaps returns the segments covering the current interval. The slice is
// a view that is invalidated by the next Advance.
func (o *SegmentOverlapper) Overlaps() []Segment { return o.overlapping }
