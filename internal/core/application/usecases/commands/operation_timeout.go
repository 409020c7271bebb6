package commands

import (
	"context"
	"errors"
	"time"

	"shop/internal/pkg/errs"
)

// DefaultOperationTimeout bounds one lifecycle operation end to end,
// covering every storage and delivery round trip it makes.
const DefaultOperationTimeout = 10 * time.Second

// ensureDeadline guarantees the operation context carries a deadline. A
// deadline supplied by the caller wins; otherwise the handler's own timeout
// applies.
func ensureDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	if timeout <= 0 {
		timeout = DefaultOperationTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// mapDeadline converts a deadline expiry into a storage availability fault,
// so callers see a retryable infrastructure error instead of a bare context
// error. Every other error passes through unchanged.
func mapDeadline(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewStorageUnavailableErrorWithCause(op, err)
	}
	return err
}
