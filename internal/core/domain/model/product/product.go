// Package product contains the catalog projection consumed by the pricing
// engine. The order subsystem never mutates the catalog; it only reads the
// current price and discount to freeze them into order line snapshots.
package product

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when restoring a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")
)

// Product is the read-only catalog projection the pricing engine works from:
// the current price and discount percentage, plus the variant axes the
// customer chooses on a line.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the catalog display name
	name string
	// price is the current undiscounted price
	price int64
	// discountPercent is the current discount percentage (0..100)
	discountPercent int
	// sizes are the offered size variants
	sizes []string
	// colors are the offered color variants
	colors []string
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// RestoreProduct reconstructs the catalog projection from storage.
// The order subsystem never creates products, so there is no NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price int64,
	discountPercent int,
	sizes []string,
	colors []string,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	product.sizes = append([]string(nil), sizes...)
	product.colors = append([]string(nil), colors...)
	return product, nil
}

// Validate ensures the Product was created via RestoreProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current undiscounted price.
func (p *Product) Price() int64 {
	return p.price
}

// DiscountPercent returns the current discount percentage (0..100).
func (p *Product) DiscountPercent() int {
	return p.discountPercent
}

// Sizes returns a copy of the offered size variants.
func (p *Product) Sizes() []string {
	return append([]string(nil), p.sizes...)
}

// Colors returns a copy of the offered color variants.
func (p *Product) Colors() []string {
	return append([]string(nil), p.colors...)
}

// setID validates and sets the product identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the catalog name.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

// setPrice validates and sets the current price.
func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", price),
		)
	}
	p.price = price
	return nil
}

// setDiscountPercent validates and sets the discount percentage.
func (p *Product) setDiscountPercent(discountPercent int) error {
	if discountPercent < 0 || discountPercent > 100 {
		return errs.NewValueIsOutOfRangeError("discountPercent", discountPercent, 0, 100)
	}
	p.discountPercent = discountPercent
	return nil
}
