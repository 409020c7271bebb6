package kernel

import (
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress")

// Address is a value object holding the delivery destination for an order.
// The street text comes from the customer verbatim; the optional label is a
// customer-chosen name for the address ("home", "work"). Geocoding and
// address verification are handled outside the order subsystem.
//
// Address is immutable once constructed.
type Address struct {
	street string
	label  string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from customer input. The street must be
// non-blank; the label is optional.
func NewAddress(street, label string) (Address, error) {
	if strings.TrimSpace(street) == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		street: street,
		label:  label,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Street returns the delivery street text.
func (a Address) Street() string {
	return a.street
}

// Label returns the customer-chosen label, possibly empty.
func (a Address) Label() string {
	return a.label
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.label == other.label
}

// Validate ensures the Address was constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
