// Package notification contains the Notification aggregate: a pending
// customer-facing message recorded when an order changes status.
//
// Notifications are written to storage in the same transaction as the status
// change and delivered later by a background relay. Delivery is best effort;
// a failed send never fails the order operation that produced the
// notification.
package notification

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errs.NewValueIsRequiredError(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is one queued order status message for a customer.
type Notification struct {
	id          kernel.UUID
	customerID  kernel.UUID
	orderID     kernel.UUID
	orderNumber int64
	orderStatus order.Status
	sent        bool
	createdAt   time.Time

	isConstructed bool
}

// NewNotification creates a pending (unsent) notification for an order
// status change.
func NewNotification(
	id kernel.UUID,
	customerID kernel.UUID,
	orderID kernel.UUID,
	orderNumber int64,
	orderStatus order.Status,
) (*Notification, error) {
	n := &Notification{createdAt: time.Now().UTC()}

	err := errors.Join(
		n.setID(id),
		n.setCustomerID(customerID),
		n.setOrderID(orderID),
		n.setOrderNumber(orderNumber),
		n.setOrderStatus(orderStatus),
	)
	if err != nil {
		return nil, err
	}

	n.isConstructed = true
	return n, nil
}

// RestoreNotification reconstructs a notification from storage.
func RestoreNotification(
	id kernel.UUID,
	customerID kernel.UUID,
	orderID kernel.UUID,
	orderNumber int64,
	orderStatus order.Status,
	sent bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, customerID, orderID, orderNumber, orderStatus)
	if err != nil {
		return nil, err
	}

	n.sent = sent
	n.createdAt = createdAt
	return n, nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// CustomerID returns the recipient customer.
func (n *Notification) CustomerID() kernel.UUID {
	return n.customerID
}

// OrderID returns the order the notification is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// OrderNumber returns the human-facing order number for message composition.
func (n *Notification) OrderNumber() int64 {
	return n.orderNumber
}

// OrderStatus returns the status the order moved to.
func (n *Notification) OrderStatus() order.Status {
	return n.orderStatus
}

// IsSent reports whether the relay has claimed this notification.
func (n *Notification) IsSent() bool {
	return n.sent
}

// CreatedAt returns when the notification was queued (UTC).
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkSent claims the notification for delivery. The relay persists this
// before attempting the send, so a crash mid-delivery loses the message
// rather than duplicating it.
func (n *Notification) MarkSent() {
	n.sent = true
}

// Validate ensures the notification was constructed via a factory function.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	n.customerID = customerID
	return nil
}

func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}

func (n *Notification) setOrderNumber(orderNumber int64) error {
	if orderNumber < 1 {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	n.orderNumber = orderNumber
	return nil
}

func (n *Notification) setOrderStatus(orderStatus order.Status) error {
	if err := orderStatus.Validate(); err != nil {
		return err
	}
	n.orderStatus = orderStatus
	return nil
}
