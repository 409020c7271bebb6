// Package customer contains the ban-relevant projection of a shop customer.
//
// The order subsystem does not own customer registration or profiles; it only
// needs the fields the lifecycle touches: the ban flags maintained by the
// cancellation ban policy and the push destination/preferences consulted by
// the notification dispatcher.
package customer

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when restoring a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when restoring a customer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer constructor")
)

// NotificationPrefs holds the per-category notification opt-ins a customer
// controls. All categories default to enabled.
type NotificationPrefs struct {
	OrderStatus bool
	Deals       bool
	General     bool
}

// DefaultNotificationPrefs returns the opt-in defaults for a new customer.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{OrderStatus: true, Deals: true, General: true}
}

// Customer is the ban-relevant projection of a shop customer.
//
// Business rules:
//   - Ban flags are set once by the automated policy and never auto-clear;
//     unbanning is a manual administrative act outside this subsystem.
//   - A customer with no push token, or with the relevant category opted
//     out, silently receives no push notifications.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// phone is the customer's registered phone number
	phone string
	// isBanned blocks the customer from placing new orders
	isBanned bool
	// bannedByAdmin records that the automated admin-cancellation policy fired
	bannedByAdmin bool
	// pushToken is the registered push destination, empty when none
	pushToken string
	// prefs are the notification category opt-ins
	prefs NotificationPrefs
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// RestoreCustomer reconstructs the projection from persistent storage.
// The order subsystem never creates customers, so there is no NewCustomer.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	phone string,
	isBanned bool,
	bannedByAdmin bool,
	pushToken string,
	prefs NotificationPrefs,
) (*Customer, error) {
	customer := &Customer{
		isBanned:      isBanned,
		bannedByAdmin: bannedByAdmin,
		pushToken:     pushToken,
		prefs:         prefs,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer was created via RestoreCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's registered phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// IsBanned reports whether the customer is banned from ordering.
func (c *Customer) IsBanned() bool {
	return c.isBanned
}

// BannedByAdmin reports whether the automated ban policy already fired for
// this customer.
func (c *Customer) BannedByAdmin() bool {
	return c.bannedByAdmin
}

// PushToken returns the registered push destination, empty when none.
func (c *Customer) PushToken() string {
	return c.pushToken
}

// NotificationPrefs returns the customer's notification opt-ins.
func (c *Customer) NotificationPrefs() NotificationPrefs {
	return c.prefs
}

// WantsOrderStatusPush reports whether order-status pushes may be sent:
// the customer must have a push token and not have opted out of the
// order-status category.
func (c *Customer) WantsOrderStatusPush() bool {
	return c.pushToken != "" && c.prefs.OrderStatus
}

// Ban marks the customer banned by the automated policy. It is idempotent:
// banning an already-banned customer changes nothing.
func (c *Customer) Ban() {
	c.isBanned = true
	c.bannedByAdmin = true
}

// setID validates and sets the customer identifier.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the display name.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setPhone validates and sets the phone number.
func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
