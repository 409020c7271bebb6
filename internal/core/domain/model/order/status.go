package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Shipped ──> Delivered
//	   │           │
//	   └───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
//
// The wire representation is the lowercase string set
// pending|shipped|delivered|cancelled; parsing is case-sensitive and closed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Shipped indicates the order has left for delivery.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire status string into a Status.
//
// The recognized set is exactly pending|shipped|delivered|cancelled,
// case-sensitive. Any other input is rejected with a ValueIsInvalidError,
// so "Pending", "PENDING", or free text never reach the state machine.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire string of the status ("pending", "shipped",
// "delivered", "cancelled"), or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the transition from s to next and returns the new
// status.
//
// Valid transitions:
//   - Pending -> Shipped
//   - Pending -> Cancelled
//   - Shipped -> Delivered
//   - Shipped -> Cancelled
//
// Any transition from a terminal status (Delivered, Cancelled), and any
// other combination, returns an InvalidTransitionError. An unrecognized
// target status returns a ValueIsInvalidError.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), next.String(),
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	allowed := map[Status][]Status{
		Pending: {Shipped, Cancelled},
		Shipped: {Delivered, Cancelled},
	}

	for _, candidate := range allowed[s] {
		if next == candidate {
			return next, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
}
