package ports

import "context"

// OrderNumberSequence is the counter name used for human-facing order
// numbers.
const OrderNumberSequence = "order_number"

// SequenceAllocator hands out strictly increasing numbers from a named
// counter. Every call returns a value greater than any previously returned
// for that counter, across all concurrent callers and process restarts.
//
// Allocation happens in its own short transaction, independent of the unit
// of work: a number allocated for an order that later fails to commit is
// simply skipped. Gaps are acceptable; duplicates are not.
type SequenceAllocator interface {
	// Next atomically increments the named counter and returns its new
	// value. The first call for a fresh counter returns 1.
	Next(ctx context.Context, name string) (int64, error)
}
