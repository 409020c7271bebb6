package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor (the customer or an
// administrator). The state machine decides whether the move is legal; the
// command only carries validated inputs.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Cancelled, order.ActorAdmin)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
//	if result.BanDecision == services.BanDecisionBanned {
//	    // the customer just crossed the cancellation threshold
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID, target status, and actor are all well formed.
// Whether the transition itself is allowed is decided by the order aggregate
// during handling.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actor order.Actor,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActor(actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns who requested the change.
func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
