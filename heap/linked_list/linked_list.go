package linked_list

import (
	"fmt"
	"io"
	"os"

	"github.com/goose-lang/std"
)

type Node[T any] struct {
	value T
	next  *Node[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a singly linked list that owns its chain of nodes through head.
//
// The list is meant for a single caller at a time; see the concurrent package
// for a locked wrapper.
type List[T any] struct {
	head *Node[T]
	out  io.Writer
}

type Option func(*options)

type options struct {
	out io.Writer
}

// WithOutput sets where notices about appends, deletions and printing go. A
// nil writer discards them.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

func New[T any](opts ...Option) *List[T] {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return &List[T]{out: o.out}
}

func (l *List[T]) Head() *Node[T] {
	return l.head
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len walks the chain, so it is O(n).
func (l *List[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Append adds value after the current last node. There is no tail pointer,
// so this walks the whole chain.
func (l *List[T]) Append(value T) {
	node := &Node[T]{value: value}
	if l.head == nil {
		l.head = node
	} else {
		last := l.head
		for last.next != nil {
			last = last.next
		}
		last.next = node
	}
	l.notify("Added node with value %v to the list.", value)
}

// DeleteAt removes the node at the 1-based position and returns its value.
//
// Failures are checked in order: an empty list, then a non-positive position,
// then a position past the tail. The list is unchanged on failure.
func (l *List[T]) DeleteAt(position int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, newListError(EmptyList, position)
	}
	if position <= 0 {
		return zero, newListError(InvalidIndex, position)
	}

	if position == 1 {
		removed := l.head
		l.notify("Deleting node at position %d with value %v", position, removed.value)
		l.head = removed.next
		removed.next = nil
		return removed.value, nil
	}

	// prev ends on the node at position-1
	prev := l.head
	for count := 1; count < position-1; count++ {
		if prev.next == nil {
			return zero, newListError(IndexOutOfRange, position)
		}
		prev = prev.next
	}
	target := prev.next
	if target == nil {
		return zero, newListError(IndexOutOfRange, position)
	}
	std.Assert(target != l.head)

	l.notify("Deleting node at position %d with value %v", position, target.value)
	prev.next = target.next
	target.next = nil
	return target.value, nil
}

// notify is a no-op on a zero List, which has no writer.
func (l *List[T]) notify(format string, args ...any) {
	if l.out == nil {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}
