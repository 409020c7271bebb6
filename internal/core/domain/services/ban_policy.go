package services

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DefaultBanThreshold is the number of admin-cancelled orders at which a
// customer is banned from placing new orders.
const DefaultBanThreshold = 2

// BanDecision is the outcome of evaluating the cancellation ban policy for a
// customer.
type BanDecision int

const (
	// BanDecisionUnknown is the zero value and never a valid outcome.
	BanDecisionUnknown BanDecision = iota

	// BanDecisionNotBanned means the customer is below the threshold and no
	// action is taken.
	BanDecisionNotBanned

	// BanDecisionBanned means the threshold was reached and the ban must be
	// applied now.
	BanDecisionBanned

	// BanDecisionAlreadyBanned means the threshold was reached but the
	// customer is banned already; the evaluation is a no-op.
	BanDecisionAlreadyBanned
)

var banDecisionNames = map[BanDecision]string{
	BanDecisionUnknown:       "unknown",
	BanDecisionNotBanned:     "not_banned",
	BanDecisionBanned:        "banned",
	BanDecisionAlreadyBanned: "already_banned",
}

// String returns the wire representation of the decision.
func (d BanDecision) String() string {
	if name, ok := banDecisionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("BanDecision(%d)", int(d))
}

// BanPolicy is a domain service that decides whether a customer must be
// banned based on how many of their orders administrators have cancelled.
//
// Business rules:
//   - The count of admin-cancelled orders is always recomputed by the caller
//     from current order state, never cached
//   - Reaching the threshold bans the customer once; re-evaluating a banned
//     customer reports AlreadyBanned and changes nothing
//   - The policy is evaluated after every admin cancellation
//
// Example usage:
//
//	policy, _ := services.NewBanPolicy(services.DefaultBanThreshold)
//	decision := policy.Decide(customer.BannedByAdmin(), adminCancelledCount)
//	if decision == services.BanDecisionBanned {
//	    customer.Ban()
//	}
type BanPolicy struct {
	threshold int
}

// NewBanPolicy creates a BanPolicy with the given threshold. The threshold
// must be at least 1.
func NewBanPolicy(threshold int) (BanPolicy, error) {
	if threshold < 1 {
		return BanPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not a positive threshold", threshold),
		)
	}

	return BanPolicy{threshold: threshold}, nil
}

// Threshold returns the configured admin-cancellation threshold.
func (p BanPolicy) Threshold() int {
	return p.threshold
}

// Decide evaluates the policy for one customer.
//
// Parameters:
//   - alreadyBanned: whether the customer currently carries an admin ban
//   - adminCancelledCount: the freshly recomputed number of the customer's
//     orders cancelled by an administrator
//
// Returns BanDecisionBanned exactly when the threshold is reached for a
// customer who is not banned yet; callers apply the ban on that decision
// only.
func (p BanPolicy) Decide(alreadyBanned bool, adminCancelledCount int) BanDecision {
	if adminCancelledCount < p.threshold {
		return BanDecisionNotBanned
	}

	if alreadyBanned {
		return BanDecisionAlreadyBanned
	}

	return BanDecisionBanned
}
