package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Actor identifies who requested a lifecycle transition. The distinction
// matters only for cancellation: a cancellation performed by an
// administrator marks the order cancelled-by-admin, which feeds the
// automated customer-ban policy.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	ActorUnknown Actor = iota

	// ActorCustomer is the owning customer.
	ActorCustomer

	// ActorAdmin is a shop administrator.
	ActorAdmin
)

// ActorFromString parses an actor wire string ("customer" or "admin",
// case-sensitive).
func ActorFromString(s string) (Actor, error) {
	switch s {
	case "customer":
		return ActorCustomer, nil
	case "admin":
		return ActorAdmin, nil
	default:
		return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
			"actor",
			fmt.Errorf("%q is not a recognized actor", s),
		)
	}
}

// Validate checks if the Actor value is valid.
func (a Actor) Validate() error {
	if a != ActorCustomer && a != ActorAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor",
			fmt.Errorf("%d is not a valid actor", a),
		)
	}
	return nil
}

// String returns the wire string of the actor.
func (a Actor) String() string {
	switch a {
	case ActorCustomer:
		return "customer"
	case ActorAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
