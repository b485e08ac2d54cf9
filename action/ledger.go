package action

import (
	"sort"
	"sync"
	"time"
)

// Ledger is an append-only log of recorded actions. One ledger is shared by
// a simulated client, its transport and every context built over it, so no
// post-hoc merging across owners is needed.
type Ledger struct {
	mu      sync.Mutex
	entries []Action
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append records an action. Appends are not ordered; ordering is established
// by sorting on the creation timestamp when reading.
func (l *Ledger) Append(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, a)
}

// All returns a snapshot of every recorded action sorted ascending by
// creation time.
func (l *Ledger) All() []Action {
	return l.Since(time.Time{})
}

// Since returns a snapshot of the actions recorded at or after t, sorted
// ascending by creation time. Entries older than t — typically from a prior
// invocation sharing the same client — are excluded.
func (l *Ledger) Since(t time.Time) []Action {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Action, 0, len(l.entries))
	for _, a := range l.entries {
		if !a.At().Before(t) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At().Before(out[j].At()) })
	return out
}

// Len returns the number of recorded actions.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
