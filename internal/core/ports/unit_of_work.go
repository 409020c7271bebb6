package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction.
	NotificationRepository() NotificationRepository
}
