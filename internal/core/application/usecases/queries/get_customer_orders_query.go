// Package queries contains read-only operations that bypass the domain
// model and read storage directly. Implements the Query side of the CQRS
// architecture: handlers run raw SQL and map rows straight into response
// structs.
package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest
// first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCustomerOrdersQueryHandler(db, 10*time.Second)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	fmt.Printf("Customer has %d orders\n", len(orders))
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
// Validates that the customer ID is well formed.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderLineResponse is one order position in the query response, with its
// frozen price snapshot and the product's current catalog name.
type OrderLineResponse struct {
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	Size            string
	Color           string
	OriginalPrice   int64
	DiscountPercent int
	DiscountedPrice int64
}

// GetCustomerOrdersQueryResponse represents one order in the customer's
// history.
type GetCustomerOrdersQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      int64
	Status           string
	CancelledByAdmin bool
	Street           string
	Label            string
	DeliveryFee      int64
	TotalPrice       int64
	Lines            []OrderLineResponse
}
