package linked_list

import "fmt"

// ErrorKind distinguishes the ways DeleteAt can fail.
type ErrorKind int

const (
	// EmptyList: there is nothing to delete.
	EmptyList ErrorKind = iota + 1
	// InvalidIndex: the requested position is not a positive integer.
	InvalidIndex
	// IndexOutOfRange: the position is past the tail of the list.
	IndexOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyList:
		return "empty list"
	case InvalidIndex:
		return "invalid index"
	case IndexOutOfRange:
		return "index out of range"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ListError is returned by DeleteAt. Position is the position that was
// requested (zero for the sentinels).
type ListError struct {
	Kind     ErrorKind
	Position int
}

var (
	ErrEmptyList       = &ListError{Kind: EmptyList}
	ErrInvalidIndex    = &ListError{Kind: InvalidIndex}
	ErrIndexOutOfRange = &ListError{Kind: IndexOutOfRange}
)

func (e *ListError) Error() string {
	switch e.Kind {
	case EmptyList:
		return "cannot delete from an empty list"
	case InvalidIndex:
		if e == ErrInvalidIndex {
			return "index must be a positive integer"
		}
		return fmt.Sprintf("index must be a positive integer, got %d", e.Position)
	case IndexOutOfRange:
		if e == ErrIndexOutOfRange {
			return "index out of the given range"
		}
		return fmt.Sprintf("index %d out of the given range", e.Position)
	}
	return e.Kind.String()
}

// Is reports whether target is a ListError of the same kind, so errors.Is
// matches the sentinels regardless of the position carried.
func (e *ListError) Is(target error) bool {
	t, ok := target.(*ListError)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

func newListError(kind ErrorKind, position int) *ListError {
	return &ListError{Kind: kind, Position: position}
}
