package ports

import (
	"context"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
)

// NotificationDispatcher delivers a queued notification to its recipient,
// typically as a mobile push message. Implementations must respect the
// customer's notification preferences and treat a missing push token as a
// silent skip, not an error.
//
// Dispatch is best effort: callers log failures and move on, they never roll
// back business state because a message could not be delivered.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, recipient *customer.Customer, msg *notification.Notification) error
}

// OrderEventPublisher announces order lifecycle changes to other systems
// over the message bus. Publishing is fire-and-forget from the caller's
// point of view: a broker outage is logged, never surfaced to the customer.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event for the order's current state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
