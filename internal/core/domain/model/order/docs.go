// Package order contains the Order aggregate and its supporting value objects.
//
// An Order is born from a priced cart: each Line freezes the catalog price,
// discount, and the resulting discounted price at creation time, so the
// order's history is immune to later catalog changes. The aggregate owns a bounded
// status state machine (pending -> shipped -> delivered, with cancellation
// from pending or shipped) and records whether a cancellation was performed
// by an administrator, which feeds the automated customer-ban policy.
//
// Orders are immutable after creation except for status and the
// cancelled-by-admin flag, both changed only through TransitionTo.
package order
