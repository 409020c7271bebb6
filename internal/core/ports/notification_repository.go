package ports

import (
	"context"

	"shop/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification queue. Rows are written in the same transaction as the order
// change that produced them and drained later by the relay job.
type NotificationRepository interface {
	// Add persists a new queued notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to a queued notification (the sent flag).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetAllUnsent retrieves up to limit notifications that have not been
	// claimed yet, oldest first.
	GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)
}
