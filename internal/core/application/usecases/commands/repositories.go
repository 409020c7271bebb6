// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// CreateOrderUoW manages the order creation transaction: it reads the
	// customer and catalog and writes the new order atomically. The
	// notification repository is used after the commit for the best-effort
	// order-created outbox write.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
		NotificationRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ChangeOrderStatusUoW manages status change transactions. The same shape
	// serves both the transition itself (order + queued notification) and the
	// follow-up ban evaluation (orders recount + customer flags).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   notificationRepo := uow.NotificationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ChangeOrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		NotificationRepoFactory
	}

	// ChangeOrderStatusUoWFactory creates unit of work instances for status changes.
	ChangeOrderStatusUoWFactory interface {
		Create() ChangeOrderStatusUoW
	}

	// NotificationUoW manages the relay transaction that claims queued
	// notifications and reads their recipients.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		CustomerRepoFactory
	}

	// NotificationUoWFactory creates unit of work instances for the notification relay.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
