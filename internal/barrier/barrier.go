// Package barrier provides a reusable N-party rendezvous point.
//
// A Barrier releases waiting goroutines only once all parties have arrived;
// no party proceeds past a barrier point until every other party reaches it.
// It is a pure synchronization primitive and carries no data.
package barrier

import (
	"fmt"
	"sync"
)

// Barrier is a cyclic N-party barrier. After a release it resets, so the
// same barrier serves consecutive rendezvous points.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	// generation distinguishes consecutive rendezvous so a released waiter
	// cannot be re-captured by the next round's Wait.
	generation uint64
}

// New creates a barrier for the given number of parties.
func New(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("barrier: parties must be >= 1, got %d", parties)
	}

	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b, nil
}

// Parties returns the number of participants.
func (b *Barrier) Parties() int {
	return b.parties
}

// Await blocks until all parties have called Await for the current
// generation, then releases every waiter. The last arriving party performs
// the release and does not block.
func (b *Barrier) Await() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation

	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}

	for gen == b.generation {
		b.cond.Wait()
	}
}
