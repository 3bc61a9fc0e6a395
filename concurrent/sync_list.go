// Package concurrent wraps the linked list for use from several goroutines.
package concurrent

import (
	"internship_code/concurrent/barrier"
	"internship_code/heap/linked_list"
	"sync"
)

// SyncList guards a whole linked_list.List with one mutex. Every operation,
// including rendering, takes the lock, so each call sees a consistent chain.
type SyncList[T any] struct {
	mu   *sync.Mutex
	list *linked_list.List[T]
}

func NewSyncList[T any](opts ...linked_list.Option) *SyncList[T] {
	return &SyncList[T]{
		mu:   new(sync.Mutex),
		list: linked_list.New[T](opts...),
	}
}

func (s *SyncList[T]) Append(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Append(value)
}

func (s *SyncList[T]) DeleteAt(position int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.DeleteAt(position)
}

func (s *SyncList[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Values()
}

func (s *SyncList[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

func (s *SyncList[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.String()
}

func (s *SyncList[T]) Print() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Print()
}

// ParallelAppend appends each value from its own goroutine and returns once
// all of them have landed. The relative order of the values is unspecified.
func (s *SyncList[T]) ParallelAppend(values []T) {
	b := barrier.New()
	b.Add(len(values))
	for _, v := range values {
		go func() {
			s.Append(v)
			b.Done()
		}()
	}
	b.Wait()
}
