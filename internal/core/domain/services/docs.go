// Package services provides domain services that implement business rules
// spanning more than one aggregate in the shop system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingService: prices a cart against the catalog and applies the
//     delivery fee policy
//   - BanPolicy: decides whether repeated admin cancellations ban a customer
//
// Domain services are stateless and pure: they receive everything they need
// as arguments and never touch storage themselves.
package services
