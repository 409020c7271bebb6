package order

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine factory function.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError(
	"Line must be created via NewLine")

// Line is one ordered item with its frozen price snapshot.
//
// The snapshot (original price, discount percent, discounted price) is
// captured from the catalog when the order is created and is never
// re-derived afterwards: a later catalog price change must not alter an
// order's history. Line has no setters; it is write-once by construction.
type Line struct {
	productID       kernel.UUID
	quantity        int
	size            string
	color           string
	originalPrice   int64
	discountPercent int
	discountedPrice int64

	guard guard.ConstructorGuard
}

// NewLine creates a Line with its price snapshot. The pricing engine is the
// only intended caller: it resolves the catalog record and computes the
// discounted price before constructing lines.
//
// Validation rules:
//   - productID must be a constructed UUID
//   - quantity must be at least 1
//   - size and color must be present
//   - originalPrice must not be negative
//   - discountPercent must be within 0..100
//   - discountedPrice must be within 0..originalPrice
func NewLine(
	productID kernel.UUID,
	quantity int,
	size string,
	color string,
	originalPrice int64,
	discountPercent int,
	discountedPrice int64,
) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}

	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive quantity", quantity),
		)
	}

	if size == "" {
		return Line{}, errs.NewValueIsRequiredError("size")
	}

	if color == "" {
		return Line{}, errs.NewValueIsRequiredError("color")
	}

	if originalPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"originalPrice",
			fmt.Errorf("%d is negative", originalPrice),
		)
	}

	if discountPercent < 0 || discountPercent > 100 {
		return Line{}, errs.NewValueIsOutOfRangeError("discountPercent", discountPercent, 0, 100)
	}

	if discountedPrice < 0 || discountedPrice > originalPrice {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"discountedPrice",
			fmt.Errorf("%d is not within 0..%d", discountedPrice, originalPrice),
		)
	}

	return Line{
		productID:       productID,
		quantity:        quantity,
		size:            size,
		color:           color,
		originalPrice:   originalPrice,
		discountPercent: discountPercent,
		discountedPrice: discountedPrice,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the referenced catalog product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity (always >= 1).
func (l Line) Quantity() int {
	return l.quantity
}

// Size returns the chosen product size.
func (l Line) Size() string {
	return l.size
}

// Color returns the chosen product color.
func (l Line) Color() string {
	return l.color
}

// OriginalPrice returns the catalog price frozen at order creation.
func (l Line) OriginalPrice() int64 {
	return l.originalPrice
}

// DiscountPercent returns the discount percentage frozen at order creation.
func (l Line) DiscountPercent() int {
	return l.discountPercent
}

// DiscountedPrice returns the per-unit price the customer pays, frozen at
// order creation (a.k.a. priceAtOrder).
func (l Line) DiscountedPrice() int64 {
	return l.discountedPrice
}

// Subtotal returns DiscountedPrice * Quantity.
func (l Line) Subtotal() int64 {
	return l.discountedPrice * int64(l.quantity)
}

// Validate ensures the Line was constructed via NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
