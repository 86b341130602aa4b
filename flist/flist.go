package flist

import (
	"errors"
	"fmt"
)

// Null is the sentinel record index standing in for a nil pointer in the
// head, tail and next slices.
const Null int32 = -1

var (
	// ErrInvalidIndex is returned for a negative list key or record index,
	// or one beyond the current length of the backing slices.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrNullTail reports that the tail of a non-empty list resolved to
	// Null. It indicates a structural invariant violation and should be
	// unreachable under append-only use.
	ErrNullTail = errors.New("tail of list is unexpectedly null")
)

// List holds any number of independent forward linked lists flattened into
// parallel slices. List k runs from head[k] through the next links to
// tail[k]. The zero value is ready to use and holds no lists; see Reset to
// pre-allocate a fixed number of empty lists.
type List[V any] struct {
	head []int32
	tail []int32
	next []int32
	data []V
}

// New returns an empty list arena.
func New[V any]() *List[V] {
	return &List[V]{}
}

func (l *List[V]) checkKey(k int32) error {
	if k < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, k)
	}
	return nil
}

func (l *List[V]) checkRange(k int32, n int) error {
	if int(k) >= n {
		return fmt.Errorf("%w: %d out of range %d", ErrInvalidIndex, k, n)
	}
	return nil
}

func (l *List[V]) insertNewRecord(k int32, v V) {
	l.data = append(l.data, v)
	x := int32(len(l.data) - 1)
	l.head[k] = x
	l.tail[k] = x
	l.next = append(l.next, Null)
}

// Extend appends v to the list with key k. If k is beyond the current number
// of lists the head and tail slices grow to accommodate it, with the new
// slack initialised to empty lists.
func (l *List[V]) Extend(k int32, v V) error {
	if err := l.checkKey(k); err != nil {
		return err
	}

	if int(k) >= len(l.head) {
		for int32(len(l.head)) <= k {
			l.head = append(l.head, Null)
			l.tail = append(l.tail, Null)
		}
	}

	if l.head[k] == Null {
		l.insertNewRecord(k, v)
		return nil
	}
	t := l.tail[k]
	if t == Null {
		return fmt.Errorf("%w: list %d", ErrNullTail, k)
	}
	l.data = append(l.data, v)
	l.tail[k] = int32(len(l.data) - 1)
	l.next[t] = l.tail[k]
	l.next = append(l.next, Null)
	return nil
}

// Fetch returns a pointer to the value stored at record index at. The
// pointer remains valid until the next Extend, Clear or Reset.
func (l *List[V]) Fetch(at int32) (*V, error) {
	if err := l.checkKey(at); err != nil {
		return nil, err
	}
	if err := l.checkRange(at, len(l.data)); err != nil {
		return nil, err
	}
	return &l.data[at], nil
}

// Head returns the record index of the first element of list at, or Null if
// the list is empty.
func (l *List[V]) Head(at int32) (int32, error) {
	if err := l.checkKey(at); err != nil {
		return Null, err
	}
	if err := l.checkRange(at, len(l.head)); err != nil {
		return Null, err
	}
	return l.head[at], nil
}

// Tail returns the record index of the most recently appended element of
// list at, or Null if the list is empty.
func (l *List[V]) Tail(at int32) (int32, error) {
	if err := l.checkKey(at); err != nil {
		return Null, err
	}
	if err := l.checkRange(at, len(l.tail)); err != nil {
		return Null, err
	}
	return l.tail[at], nil
}

// Next returns the record index following record at in its list, or Null if
// at is the current tail of its list.
func (l *List[V]) Next(at int32) (int32, error) {
	if err := l.checkKey(at); err != nil {
		return Null, err
	}
	if err := l.checkRange(at, len(l.next)); err != nil {
		return Null, err
	}
	return l.next[at], nil
}

// ForEach traverses list at in insertion order, calling f with a pointer to
// each value. Traversal stops early when f returns false, allowing linear
// searches through a list.
func (l *List[V]) ForEach(at int32, f func(*V) bool) error {
	itr, err := l.Head(at)
	if err != nil {
		return err
	}
	for itr != Null {
		v, err := l.Fetch(itr)
		if err != nil {
			return err
		}
		if !f(v) {
			break
		}
		itr, err = l.Next(itr)
		if err != nil {
			return err
		}
	}
	return nil
}

// Clear drops all lists and records. Capacity is retained.
func (l *List[V]) Clear() {
	l.head = l.head[:0]
	l.tail = l.tail[:0]
	l.next = l.next[:0]
	l.data = l.data[:0]
}

// NullifyList sets the head and tail of list at to Null, detaching the list
// from traversal. The records themselves are unaffected and still resolve
// through Fetch; no storage is reclaimed.
func (l *List[V]) NullifyList(at int32) error {
	if err := l.checkKey(at); err != nil {
		return err
	}
	if err := l.checkRange(at, len(l.head)); err != nil {
		return err
	}
	if err := l.checkRange(at, len(l.tail)); err != nil {
		return err
	}
	l.head[at] = Null
	l.tail[at] = Null
	return nil
}

// Reset clears all data and then sizes the arena to n empty lists.
func (l *List[V]) Reset(n int) {
	l.Clear()
	for i := 0; i < n; i++ {
		l.head = append(l.head, Null)
		l.tail = append(l.tail, Null)
	}
}

// Heads returns the head vector. The slice is a view into the arena: it is
// only valid until the next mutation and must not be written through.
func (l *List[V]) Heads() []int32 {
	return l.head
}

// Len returns the number of lists, including empty and nullified ones.
func (l *List[V]) Len() int {
	return len(l.head)
}

// IsEmpty reports whether the arena holds no lists at all.
func (l *List[V]) IsEmpty() bool {
	return len(l.head) == 0
}
