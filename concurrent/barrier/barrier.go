// Package barrier provides a counting barrier: callers Add work, workers call
// Done, and Wait blocks until the count returns to zero.
package barrier

import (
	"sync"

	"github.com/goose-lang/std"
)

type Barrier struct {
	mu      *sync.Mutex
	cond    *sync.Cond
	pending int
}

func New() *Barrier {
	mu := new(sync.Mutex)
	return &Barrier{mu: mu, cond: sync.NewCond(mu)}
}

// Add registers n more outstanding calls to Done.
func (b *Barrier) Add(n int) {
	std.Assert(n >= 0)
	b.mu.Lock()
	b.pending += n
	b.mu.Unlock()
}

func (b *Barrier) Done() {
	b.mu.Lock()
	b.pending--
	// more Done than Add
	std.Assert(b.pending >= 0)
	if b.pending == 0 {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// Wait returns once every Add has been matched by a Done. With nothing
// pending it returns immediately.
func (b *Barrier) Wait() {
	b.mu.Lock()
	for b.pending > 0 {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
