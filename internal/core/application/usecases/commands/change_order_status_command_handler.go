package commands

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// ChangeOrderStatusResult is what a successful status change produces: the
// updated order and the outcome of the cancellation ban policy. BanDecision
// is BanDecisionNotBanned for every change that is not an admin
// cancellation.
type ChangeOrderStatusResult struct {
	Order       *order.Order
	BanDecision services.BanDecision
}

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Applies the state machine, queues the customer notification in the same
// transaction, evaluates the cancellation ban policy after admin
// cancellations, and announces the change on the message bus.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, banPolicy, publisher, logger, 10*time.Second)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Shipped, order.ActorAdmin)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var transitionErr *errs.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // the move is not allowed from the order's current status
//	    }
//	    return err
//	}
//	_ = result.Order.Status() // the new status
type ChangeOrderStatusCommandHandler struct {
	uowFactory ChangeOrderStatusUoWFactory
	banPolicy  services.BanPolicy
	publisher  ports.OrderEventPublisher
	timeout    time.Duration
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// The publisher may be nil when no message bus is configured; publishing is
// then skipped. A non-positive timeout falls back to
// DefaultOperationTimeout.
func NewChangeOrderStatusCommandHandler(
	uowFactory ChangeOrderStatusUoWFactory,
	banPolicy services.BanPolicy,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	timeout time.Duration,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		banPolicy:  banPolicy,
		publisher:  publisher,
		timeout:    timeout,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the status change command.
//
// The transition and the queued customer notification commit in one
// transaction. When an administrator cancels an order, the ban policy is
// then evaluated in a second, separate transaction: the cancellation
// remains committed even if the evaluation fails, and a failed evaluation
// still returns the cancelled order next to its error. Event publishing
// happens last and is best effort.
//
// The whole operation runs under a deadline; an expiry surfaces as a
// StorageUnavailableError.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	ctx, cancel := ensureDeadline(ctx, h.timeout)
	defer cancel()

	changedOrder, err := h.applyTransition(ctx, cmd)
	if err != nil {
		return ChangeOrderStatusResult{}, mapDeadline("change order status", err)
	}

	var banErr error
	decision := services.BanDecisionNotBanned
	if changedOrder.Status() == order.Cancelled && cmd.Actor() == order.ActorAdmin {
		decision, banErr = h.evaluateBan(ctx, changedOrder.CustomerID())
		banErr = mapDeadline("evaluate cancellation ban", banErr)
	}

	h.publishChange(ctx, changedOrder)

	return ChangeOrderStatusResult{Order: changedOrder, BanDecision: decision}, banErr
}

// applyTransition moves the order through the state machine and queues the
// customer notification, atomically.
func (h *ChangeOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.Actor()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	queued, err := notification.NewNotification(
		kernel.NewUUID(),
		aggregate.CustomerID(),
		aggregate.ID(),
		aggregate.OrderNumber(),
		aggregate.Status(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// evaluateBan recounts the customer's admin-cancelled orders and applies
// the ban policy in its own transaction, after the cancellation has
// committed.
func (h *ChangeOrderStatusCommandHandler) evaluateBan(
	ctx context.Context,
	customerID kernel.UUID,
) (services.BanDecision, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.BanDecisionUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.OrderRepository().CountCancelledByAdmin(ctx, customerID)
	if err != nil {
		return services.BanDecisionUnknown, err
	}

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.Get(ctx, customerID)
	if err != nil {
		return services.BanDecisionUnknown, err
	}

	decision := h.banPolicy.Decide(buyer.BannedByAdmin(), count)
	if decision != services.BanDecisionBanned {
		return decision, nil
	}

	buyer.Ban()
	if err = customerRepo.Update(ctx, buyer); err != nil {
		return services.BanDecisionUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.BanDecisionUnknown, err
	}

	h.logger.InfoContext(ctx, "Customer banned for repeated admin cancellations",
		"customer_id", customerID.String(), "admin_cancelled_count", count)

	return decision, nil
}

// publishChange announces the new order state on the message bus. Failures
// are logged, never propagated.
func (h *ChangeOrderStatusCommandHandler) publishChange(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order change event",
			"order_id", aggregate.ID().String(), "status", aggregate.Status().String(), "error", err)
	}
}
