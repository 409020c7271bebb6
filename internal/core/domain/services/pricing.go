package services

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// Default pricing parameters. Deployments may override them through
// configuration; the values here match the shop's standing policy.
const (
	// DefaultFreeShippingThreshold is the products total (in minor currency
	// units) at or above which delivery is free.
	DefaultFreeShippingThreshold int64 = 100000

	// DefaultFlatDeliveryFee is the fee charged when the products total is
	// below the free-shipping threshold.
	DefaultFlatDeliveryFee int64 = 5000
)

// CartItem is one requested position of a cart before pricing: a catalog
// reference plus the customer's choices. Prices are deliberately absent;
// the pricing service resolves them from the catalog so that a client can
// never dictate what it pays.
type CartItem struct {
	ProductID kernel.UUID
	Quantity  int
	Size      string
	Color     string
}

// PricedCart is the result of pricing a cart: fully constructed order lines
// with frozen price snapshots, plus the three derived amounts. The invariant
// TotalPrice == ProductsTotal + DeliveryFee holds by construction.
type PricedCart struct {
	Lines         []order.Line
	ProductsTotal int64
	DeliveryFee   int64
	TotalPrice    int64
}

// PricingService is a domain service that turns a raw cart into priced order
// lines using the current catalog.
//
// Key responsibilities:
//   - Resolving each cart item against the catalog snapshot
//   - Computing per-unit discounted prices with half-up rounding
//   - Applying the delivery fee policy over the products total
//
// Business rules:
//   - Every cart item must reference an existing catalog product; a single
//     unknown product aborts pricing for the whole cart
//   - A missing or non-positive quantity is treated as 1
//   - Delivery is free when the products total reaches the threshold,
//     otherwise the flat fee applies
//
// Example usage:
//
//	pricing, _ := services.NewPricingService(
//	    services.DefaultFreeShippingThreshold, services.DefaultFlatDeliveryFee)
//	cart, err := pricing.PriceCart(items, catalog)
//	if err != nil {
//	    // unknown product or invalid item
//	    return
//	}
//	// cart.Lines carry the frozen snapshots; cart.TotalPrice is what to charge
type PricingService struct {
	freeShippingThreshold int64
	flatDeliveryFee       int64
}

// NewPricingService creates a PricingService with the given policy
// parameters. Both values must be non-negative.
func NewPricingService(freeShippingThreshold int64, flatDeliveryFee int64) (PricingService, error) {
	if freeShippingThreshold < 0 {
		return PricingService{}, errs.NewValueIsInvalidErrorWithCause(
			"freeShippingThreshold",
			fmt.Errorf("%d is negative", freeShippingThreshold),
		)
	}
	if flatDeliveryFee < 0 {
		return PricingService{}, errs.NewValueIsInvalidErrorWithCause(
			"flatDeliveryFee",
			fmt.Errorf("%d is negative", flatDeliveryFee),
		)
	}

	return PricingService{
		freeShippingThreshold: freeShippingThreshold,
		flatDeliveryFee:       flatDeliveryFee,
	}, nil
}

// PriceCart prices every cart item against the catalog snapshot and returns
// the resulting lines together with the derived totals.
//
// Parameters:
//   - items: the raw cart (must not be empty)
//   - catalog: products keyed by ID, loaded by the caller for exactly the
//     IDs referenced in the cart
//
// Returns:
//   - PricedCart: lines with frozen snapshots plus the three amounts
//   - error: ErrValueIsRequired for an empty cart, ObjectNotFoundError when
//     an item references a product absent from the catalog, or a line
//     validation error
func (s PricingService) PriceCart(items []CartItem, catalog map[kernel.UUID]*product.Product) (PricedCart, error) {
	if len(items) == 0 {
		return PricedCart{}, errs.NewValueIsRequiredError("items")
	}

	lines := make([]order.Line, 0, len(items))
	var productsTotal int64

	for _, item := range items {
		p, ok := catalog[item.ProductID]
		if !ok {
			return PricedCart{}, errs.NewObjectNotFoundError("productID", item.ProductID)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		discounted := discountedUnitPrice(p.Price(), p.DiscountPercent())

		line, err := order.NewLine(
			item.ProductID,
			quantity,
			item.Size,
			item.Color,
			p.Price(),
			p.DiscountPercent(),
			discounted,
		)
		if err != nil {
			return PricedCart{}, err
		}

		lines = append(lines, line)
		productsTotal += line.Subtotal()
	}

	deliveryFee := s.flatDeliveryFee
	if productsTotal >= s.freeShippingThreshold {
		deliveryFee = 0
	}

	return PricedCart{
		Lines:         lines,
		ProductsTotal: productsTotal,
		DeliveryFee:   deliveryFee,
		TotalPrice:    productsTotal + deliveryFee,
	}, nil
}

// discountedUnitPrice applies the discount with half-up rounding in integer
// arithmetic: round(price * (100 - discount) / 100).
func discountedUnitPrice(price int64, discountPercent int) int64 {
	return (price*int64(100-discountPercent) + 50) / 100
}
