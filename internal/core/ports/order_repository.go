package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their lines.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines are immutable after creation; only status and the admin
	// cancellation flag change over an order's life.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves all orders that belong to a customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// CountCancelledByAdmin returns how many of the customer's orders were
	// cancelled by an administrator. The ban policy recomputes this on every
	// evaluation instead of keeping a counter.
	CountCancelledByAdmin(ctx context.Context, customerID kernel.UUID) (int, error)
}
