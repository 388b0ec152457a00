// Package ledger tracks which reports the local user has upvoted during a session.
//
// The ledger is optimistic: it never talks to the backend, and the base upvote
// count on a report is left untouched. Display code asks the ledger for the
// adjusted count instead.
package ledger

import (
	"math"
	"slices"
	"sync"
)

// Ledger is a set of upvoted report ids. The zero value is not usable; call New.
type Ledger struct {
	ids map[int]struct{}
	mu  sync.RWMutex
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{ids: make(map[int]struct{})}
}

// Toggle adds id if absent and removes it if present. It returns true when the
// report is upvoted after the call.
func (l *Ledger) Toggle(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.ids[id]; ok {
		delete(l.ids, id)
		return false
	}
	l.ids[id] = struct{}{}
	return true
}

// Has reports whether the user upvoted id this session.
func (l *Ledger) Has(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.ids[id]
	return ok
}

// DisplayCount returns base plus one if id is in the ledger. The count
// saturates at math.MaxInt.
func (l *Ledger) DisplayCount(id, base int) int {
	if l.Has(id) && base < math.MaxInt {
		return base + 1
	}
	return base
}

// Len returns the number of upvoted reports.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// IDs returns the upvoted report ids in ascending order.
func (l *Ledger) IDs() []int {
	l.mu.RLock()
	out := make([]int, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	l.mu.RUnlock()

	slices.Sort(out)
	return out
}
