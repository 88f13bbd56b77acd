// Package linkedlist is a doubly linked registry of externally owned items.
//
// A List never owns what it stores: it allocates a Node per appended item and
// drops the Node on removal, the item itself is left alone. Every list carries
// exactly one cursor (MoveToHead, HasNext, Next, Active). There is no support
// for two independent cursor traversals of the same list; callers that need to
// walk the list while it may change underneath them use Front and Node.Next,
// which keep all traversal state on the caller's stack.
//
// The zero List is empty and ready to use. A List is not safe for concurrent use.
package linkedlist

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// Node is a single registration in a List.
type Node[T comparable] struct {
	prev, next *Node[T]
	// nil once the node has been removed
	list *List[T]
	gen  uint64
	item T
}

// Item returns the stored item, or the zero T once the node was removed.
func (n *Node[T]) Item() T {
	return n.item
}

// Generation is the list generation stamped on the node when it was appended.
// Generations grow strictly from head to tail.
func (n *Node[T]) Generation() uint64 {
	return n.gen
}

// Linked reports whether the node is still part of a list.
func (n *Node[T]) Linked() bool {
	return n.list != nil
}

// Next returns the next linked node, or nil at the end of the list.
//
// A removed node keeps its forward link, so a traversal standing on a node
// that was removed in the meantime still finds the rest of the list. Removed
// nodes are skipped.
func (n *Node[T]) Next() *Node[T] {
	for x := n.next; x != nil; x = x.next {
		if x.list != nil {
			return x
		}
	}
	return nil
}

// List is a doubly linked list of items of type T compared with ==.
type List[T comparable] struct {
	head, tail *Node[T]
	active     *Node[T]
	count      int
	gen        uint64
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Append links item as the new tail and returns its node. O(1).
func (l *List[T]) Append(item T) *Node[T] {
	l.gen++
	e := &Node[T]{
		list: l,
		gen:  l.gen,
		item: item,
	}

	if l.count == 0 {
		l.head = e
		l.tail = e
	} else {
		l.tail.next = e
		e.prev = l.tail
		l.tail = e
	}
	l.count++
	return e
}

// Remove unlinks the first node whose item equals item.
//
// The scan runs on the list cursor: it is moved to the head first and, after a
// successful removal, left unpositioned until the next MoveToHead. When nothing
// matches the cursor rests on the tail. Remove reports whether a node was
// removed.
func (l *List[T]) Remove(item T) bool {
	if l.head == nil {
		return false
	}

	l.MoveToHead()
	for i := 0; i < l.count; i++ {
		if l.active.item == item {
			l.removeActive()
			return true
		}
		l.Next()
	}
	return false
}

func (l *List[T]) removeActive() {
	e := l.active

	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}

	if e == l.head {
		l.head = e.next
	}
	if e == l.tail {
		l.tail = e.prev
	}

	l.unlink(e)
	l.active = nil
	l.count--
}

// unlink detaches e from l but keeps e.next so that callers holding e can
// still move forward.
func (l *List[T]) unlink(e *Node[T]) {
	var zero T
	e.prev = nil
	e.list = nil
	e.item = zero
}

// Len returns the number of items. O(1).
func (l *List[T]) Len() int {
	return l.count
}

// Generation returns the generation of the most recently appended node.
func (l *List[T]) Generation() uint64 {
	return l.gen
}

// MoveToHead positions the cursor on the first node.
func (l *List[T]) MoveToHead() {
	l.active = l.head
}

// HasNext reports whether the cursor is positioned and not on the tail.
func (l *List[T]) HasNext() bool {
	return l.active != nil && l.active.next != nil
}

// Next advances the cursor. It returns false and leaves the cursor where it is
// when the cursor is on the tail or not positioned.
func (l *List[T]) Next() bool {
	if l.active == nil || l.active.next == nil {
		return false
	}
	l.active = l.active.next
	return true
}

// Active returns the item under the cursor.
func (l *List[T]) Active() (T, error) {
	if l.active == nil || l.active.list != l {
		var zero T
		return zero, ErrCursorNotPositioned
	}
	return l.active.item, nil
}

// Front returns the first node or nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node or nil.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// Contains reports whether item is stored. The cursor is not touched.
func (l *List[T]) Contains(item T) bool {
	for e := l.head; e != nil; e = e.next {
		if e.item == item {
			return true
		}
	}
	return false
}

// Items returns the stored items in list order.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.count)
	for e := l.head; e != nil; e = e.next {
		items = append(items, e.item)
	}
	return items
}

// Clear removes every node and leaves the cursor unpositioned.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; e = e.next {
		l.unlink(e)
	}
	l.head = nil
	l.tail = nil
	l.active = nil
	l.count = 0
}

// Validate walks the list and checks its structural invariants: head is nil
// iff the list is empty, tail is reached from head in Len()-1 steps, back links
// mirror forward links, generations grow towards the tail and the cursor, if
// positioned, sits on a node of this list.
func (l *List[T]) Validate() error {
	if (l.head == nil) != (l.count == 0) {
		return errors.Wrapf(ErrCorrupt, "head %p with count %d", l.head, l.count)
	}
	if (l.tail == nil) != (l.count == 0) {
		return errors.Wrapf(ErrCorrupt, "tail %p with count %d", l.tail, l.count)
	}

	visited := mapset.NewThreadUnsafeSet[*Node[T]]()
	var prev *Node[T]
	for e := l.head; e != nil; e = e.next {
		if !visited.Add(e) {
			return errors.Wrapf(ErrCorrupt, "cycle after %d nodes", visited.Cardinality())
		}
		if e.list != l {
			return errors.Wrapf(ErrCorrupt, "node %d belongs to another list", visited.Cardinality())
		}
		if e.prev != prev {
			return errors.Wrapf(ErrCorrupt, "node %d has a broken back link", visited.Cardinality())
		}
		if prev != nil && e.gen <= prev.gen {
			return errors.Wrapf(ErrCorrupt, "node %d generation %d not after %d", visited.Cardinality(), e.gen, prev.gen)
		}
		prev = e
	}

	if prev != l.tail {
		return errors.Wrap(ErrCorrupt, "tail is not the last reachable node")
	}
	if n := visited.Cardinality(); n != l.count {
		return errors.Wrapf(ErrCorrupt, "reached %d nodes, count is %d", n, l.count)
	}
	if l.active != nil && !visited.Contains(l.active) {
		return errors.Wrap(ErrCorrupt, "cursor is on an unreachable node")
	}
	return nil
}
