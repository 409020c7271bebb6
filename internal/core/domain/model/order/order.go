package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through shipping, delivery,
// or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Must carry a positive, immutable order number
//   - Must have at least one line; line snapshots never change after creation
//   - totalPrice == sum of line subtotals + deliveryFee
//   - Status transitions follow the lifecycle state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// Once created, only the status and the cancelled-by-admin flag may change,
// and only through TransitionTo.
type Order struct {
	// id is the internal unique identifier for the order
	id kernel.UUID

	// orderNumber is the externally visible, strictly increasing number
	orderNumber int64

	// customerID references the owning customer
	customerID kernel.UUID

	// lines are the ordered items with frozen price snapshots
	lines []Line

	// address is the delivery destination
	address kernel.Address

	// deliveryFee is the fee charged on top of the products total
	deliveryFee int64

	// totalPrice is the products total plus the delivery fee
	totalPrice int64

	// status represents the current state in the order lifecycle
	status Status

	// cancelledByAdmin is set when an administrator cancels the order
	cancelledByAdmin bool

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a fresh order; RestoreOrder is reserved for reconstruction from
// persistence.
//
// The caller supplies fully priced lines and the totals computed by the
// pricing engine; NewOrder re-checks the total-price invariant so an order
// whose totalPrice disagrees with its lines can never exist.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderNumber int64,
	lines []Line,
	address kernel.Address,
	deliveryFee int64,
	totalPrice int64,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setOrderNumber(orderNumber),
		order.setLines(lines),
		order.setAddress(address),
		order.setTotals(deliveryFee, totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any valid status and the cancelled-by-admin flag, but applies the
// same field validation so corrupted rows cannot become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderNumber int64,
	lines []Line,
	address kernel.Address,
	deliveryFee int64,
	totalPrice int64,
	status Status,
	cancelledByAdmin bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, customerID, orderNumber, lines, address, deliveryFee, totalPrice)
	if err != nil {
		return nil, err
	}

	order.status = status
	order.cancelledByAdmin = cancelledByAdmin
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the externally visible order number.
func (o *Order) OrderNumber() int64 {
	return o.orderNumber
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns a copy of the order's lines. The snapshots themselves are
// immutable value objects.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// DeliveryFee returns the delivery fee charged for this order.
func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// TotalPrice returns the order total (products total + delivery fee).
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// ProductsTotal returns the sum of line subtotals.
func (o *Order) ProductsTotal() int64 {
	var total int64
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CancelledByAdmin reports whether the order was cancelled by an
// administrator.
func (o *Order) CancelledByAdmin() bool {
	return o.cancelledByAdmin
}

// TransitionTo applies a lifecycle transition requested by actor.
//
// Business rules:
//   - newStatus must be one of the recognized statuses
//   - transitions out of Delivered or Cancelled are rejected
//   - only the transitions of the lifecycle state machine are allowed
//   - a cancellation performed by ActorAdmin sets the cancelled-by-admin flag
//
// On rejection the order is left unchanged.
func (o *Order) TransitionTo(newStatus Status, actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	if next == Cancelled && actor == ActorAdmin {
		o.cancelledByAdmin = true
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

// setOrderNumber validates and sets the immutable order number.
func (o *Order) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", orderNumber),
		)
	}
	o.orderNumber = orderNumber
	return nil
}

// setLines validates and sets the order lines. Orders without lines are
// rejected. The slice is copied so later caller mutations cannot reach the
// aggregate.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("lines[%d]", i),
				err,
			)
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setAddress validates and sets the delivery address.
func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setTotals validates the delivery fee and the total-price invariant
// (totalPrice == products total + delivery fee) before recording them.
func (o *Order) setTotals(deliveryFee, totalPrice int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee",
			fmt.Errorf("%d is negative", deliveryFee),
		)
	}

	expected := o.ProductsTotal() + deliveryFee
	if totalPrice != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("%d does not equal products total plus delivery fee (%d)", totalPrice, expected),
		)
	}

	o.deliveryFee = deliveryFee
	o.totalPrice = totalPrice
	return nil
}
