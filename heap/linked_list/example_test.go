package linked_list_test

import (
	"errors"
	"fmt"
	"internship_code/heap/linked_list"
)

func ExampleList() {
	l := linked_list.New[int]()
	for _, v := range []int{10, 20, 30} {
		l.Append(v)
	}
	l.Print()

	if _, err := l.DeleteAt(2); err != nil {
		fmt.Println("Error:", err)
	}
	l.Print()

	_, err := l.DeleteAt(5)
	if errors.Is(err, linked_list.ErrIndexOutOfRange) {
		fmt.Println("Error:", err)
	}

	// Output:
	// Added node with value 10 to the list.
	// Added node with value 20 to the list.
	// Added node with value 30 to the list.
	// 10 -> 20 -> 30
	// Deleting node at position 2 with value 20
	// 10 -> 30
	// Error: index 5 out of the given range
}
