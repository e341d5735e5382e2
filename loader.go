package esadmin

import (
	"context"
	"sync"
)

// Loader is the read helper for load-on-display queries: one fixed
// operation, decoded body cached in Data, errors fully absorbed. UI code
// renders Data (nil after a failed load) and binds Loading for the spinner.
type Loader struct {
	inv *Invoker
	op  Operation

	mu   sync.Mutex
	data Body
}

// NewLoader builds a Loader that runs op through inv on every Load.
func NewLoader(inv *Invoker, op Operation) *Loader {
	return &Loader{inv: inv, op: op}
}

// Load invokes the operation once and stores the decoded body. A failed
// call resets Data to nil; the error stays in the invoker's RequestState
// and never reaches the caller. Overlapping Loads are last-write-wins: the
// stored body is replaced whole, never mixed.
func (l *Loader) Load(ctx context.Context) {
	body, err := l.inv.Invoke(ctx, l.op)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.data = nil
		return
	}
	l.data = body
}

// Data returns the body of the last successful Load, or nil.
func (l *Loader) Data() Body {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data
}

// State returns the underlying invoker snapshot.
func (l *Loader) State() RequestState { return l.inv.State() }

// Loading reports whether a Load is in flight.
func (l *Loader) Loading() bool { return l.inv.Loading() }
