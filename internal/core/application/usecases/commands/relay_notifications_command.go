package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand represents a request to drain one batch of
// queued notifications. It carries no parameters; the batch size is a
// handler concern.
type RelayNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command to relay queued
// notifications.
func NewRelayNotificationsCommand() RelayNotificationsCommand {
	return RelayNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}
