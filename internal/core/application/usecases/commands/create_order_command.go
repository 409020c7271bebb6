package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired    = errors.New("at least one item is required")
	ErrItemSizeIsRequired  = errors.New("item size is required")
	ErrItemColorIsRequired = errors.New("item color is required")
	ErrStreetIsRequired    = errors.New("street is required")
)

// OrderItem is one requested cart position inside CreateOrderCommand: a
// catalog reference and the customer's choices. Prices never appear here;
// they are resolved from the catalog during handling.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
	Size      string
	Color     string
}

// CreateOrderCommand represents a request to place a new order for a
// customer. Encapsulates the cart and the delivery address.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, items, "123 Main Street", "home")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequences, pricing)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order #%d created, total %d", created.OrderNumber(), created.TotalPrice())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []OrderItem
	street     string
	label      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both IDs are valid, the cart is not empty, every item
// carries a valid product reference with size and color, and the street is
// not empty. A non-positive quantity is allowed here and treated as 1
// during pricing.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItem,
	street string,
	label string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		label: label,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setStreet(street),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the requested cart positions.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

// Street returns the delivery street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// Label returns the optional address label ("home", "office").
func (c CreateOrderCommand) Label() string {
	return c.label
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if item.Size == "" {
			return fmt.Errorf("item %d: %w", i, ErrItemSizeIsRequired)
		}
		if item.Color == "" {
			return fmt.Errorf("item %d: %w", i, ErrItemColorIsRequired)
		}
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}
