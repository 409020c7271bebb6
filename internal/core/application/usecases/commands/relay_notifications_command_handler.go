package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/ports"
)

// ErrNoNotificationsFound is returned when the queue has nothing to relay.
// Callers running on a schedule treat it as a normal idle tick.
var ErrNoNotificationsFound = errors.New("no notifications found")

// defaultRelayBatchSize caps how many notifications one relay tick claims.
const defaultRelayBatchSize = 50

// RelayNotificationsCommandHandler drains the notification queue. It claims
// a batch by marking it sent inside a transaction, then delivers each
// message outside the transaction.
//
// Claiming before delivering makes the relay at-most-once: a crash between
// commit and delivery loses messages instead of duplicating them. For order
// status pushes that is the right trade.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	dispatcher ports.NotificationDispatcher
	batchSize  int
	timeout    time.Duration
	logger     *slog.Logger
}

// NewRelayNotificationsCommandHandler creates a handler for the
// notification relay. A non-positive timeout falls back to
// DefaultOperationTimeout.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
	timeout time.Duration,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		batchSize:  defaultRelayBatchSize,
		timeout:    timeout,
		logger:     logger.With("component", "relay_notifications_handler"),
	}
}

// claimedNotification pairs a claimed message with its recipient so
// delivery needs no further reads.
type claimedNotification struct {
	msg       *notification.Notification
	recipient *customer.Customer
}

// Handle claims one batch of unsent notifications and delivers them.
// Returns ErrNoNotificationsFound when the queue is empty. Delivery
// failures are logged per message and never fail the batch.
//
// Each tick runs under a deadline, bounding both the claim transaction and
// the deliveries; an expiry surfaces as a StorageUnavailableError.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ctx, cancel := ensureDeadline(ctx, h.timeout)
	defer cancel()

	claimed, err := h.claimBatch(ctx)
	if err != nil {
		return mapDeadline("relay notifications", err)
	}

	for _, c := range claimed {
		if err := h.dispatcher.Dispatch(ctx, c.recipient, c.msg); err != nil {
			h.logger.ErrorContext(ctx, "Failed to deliver notification",
				"notification_id", c.msg.ID().String(),
				"customer_id", c.recipient.ID().String(),
				"error", err)
		}
	}

	return nil
}

// claimBatch marks up to batchSize notifications sent and loads their
// recipients, all in one transaction.
func (h *RelayNotificationsCommandHandler) claimBatch(ctx context.Context) ([]claimedNotification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	pending, err := notificationRepo.GetAllUnsent(ctx, h.batchSize)
	if err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		return nil, ErrNoNotificationsFound
	}

	customerRepo := uow.CustomerRepository()
	recipients := make(map[string]*customer.Customer, len(pending))
	claimed := make([]claimedNotification, 0, len(pending))

	for _, msg := range pending {
		recipient, ok := recipients[msg.CustomerID().String()]
		if !ok {
			recipient, err = customerRepo.Get(ctx, msg.CustomerID())
			if err != nil {
				return nil, err
			}
			recipients[msg.CustomerID().String()] = recipient
		}

		msg.MarkSent()
		if err = notificationRepo.Update(ctx, msg); err != nil {
			return nil, err
		}

		claimed = append(claimed, claimedNotification{msg: msg, recipient: recipient})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
