package linked_list

import (
	"fmt"
	"strings"
)

const (
	connector   = " -> "
	emptyNotice = "List is empty."
)

// Values returns the payloads from head to tail. It does not mutate the list.
func (l *List[T]) Values() []T {
	vals := []T{}
	for cur := l.head; cur != nil; cur = cur.next {
		vals = append(vals, cur.value)
	}
	return vals
}

// String renders the list as "v1 -> v2 -> v3", or the empty notice when there
// are no nodes.
func (l *List[T]) String() string {
	if l.head == nil {
		return emptyNotice
	}
	var b strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		fmt.Fprint(&b, cur.value)
		if cur.next != nil {
			b.WriteString(connector)
		}
	}
	return b.String()
}

// Print writes String to the list's output.
func (l *List[T]) Print() {
	l.notify("%s", l.String())
}
