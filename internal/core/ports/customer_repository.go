// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, the sequence
// allocator, and outbound notification channels. Adapters implement these
// interfaces; the core depends only on them, never on gorm, Kafka, or
// Firebase directly.
package ports

import (
	"context"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// projections. Customers are registered elsewhere; this subsystem reads
// them and updates only their ban state.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Update persists the customer's ban flags. Profile fields are owned by
	// the account subsystem and are never written from here.
	Update(ctx context.Context, aggregate *customer.Customer) error
}
