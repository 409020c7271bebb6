// Package push delivers order status notifications to customer devices
// through Firebase Cloud Messaging.
package push

import (
	"context"
	"fmt"
	"log/slog"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the slice of the FCM client the dispatcher needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMDispatcher sends order status pushes through Firebase Cloud Messaging.
// Customers who opted out of order status pushes, or who have no registered
// device token, are skipped silently.
type FCMDispatcher struct {
	sender messageSender
	logger *slog.Logger
}

// NewFCMDispatcher initialises the Firebase Admin SDK and returns a
// dispatcher backed by its messaging client. The credentials file is
// optional: when empty, application default credentials are used.
func NewFCMDispatcher(ctx context.Context, projectID, credentialsFile string, logger *slog.Logger) (*FCMDispatcher, error) {
	if projectID == "" {
		return nil, errs.NewValueIsRequiredError("projectID")
	}

	var clientOpts []option.ClientOption
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialise firebase messaging client: %w", err)
	}

	return newFCMDispatcher(client, logger), nil
}

func newFCMDispatcher(sender messageSender, logger *slog.Logger) *FCMDispatcher {
	return &FCMDispatcher{
		sender: sender,
		logger: logger.With("component", "fcm_dispatcher"),
	}
}

// Dispatch sends one push message for a queued notification. Opted-out
// recipients and recipients without a device token are a successful no-op.
func (d *FCMDispatcher) Dispatch(
	ctx context.Context,
	recipient *customer.Customer,
	msg *notification.Notification,
) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if !recipient.WantsOrderStatusPush() {
		d.logger.DebugContext(ctx, "Skipping push for opted-out customer",
			"customer_id", recipient.ID().String(),
			"notification_id", msg.ID().String(),
		)
		return nil
	}

	message := &messaging.Message{
		Token: recipient.PushToken(),
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Order #%d", msg.OrderNumber()),
			Body:  statusBody(msg.OrderStatus()),
		},
		Data: map[string]string{
			"order_id":     msg.OrderID().String(),
			"order_number": fmt.Sprintf("%d", msg.OrderNumber()),
			"status":       msg.OrderStatus().String(),
		},
	}

	if _, err := d.sender.Send(ctx, message); err != nil {
		return fmt.Errorf("send push for notification %s: %w", msg.ID().String(), err)
	}

	return nil
}

// statusBody maps an order status to the push message text.
func statusBody(status order.Status) string {
	switch status {
	case order.Pending:
		return "We received your order and will pack it shortly."
	case order.Shipped:
		return "Your order is on its way."
	case order.Delivered:
		return "Your order has been delivered. Enjoy!"
	case order.Cancelled:
		return "Your order has been cancelled."
	default:
		return fmt.Sprintf("Your order status changed to %s.", status.String())
	}
}
