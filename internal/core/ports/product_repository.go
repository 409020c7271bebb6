package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
)

// ProductRepository defines the read-side contract for the product catalog.
// The order subsystem only reads catalog records to freeze price snapshots;
// catalog maintenance lives in another subsystem.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs retrieves the products for the given identifiers in one
	// round trip. Missing IDs are simply absent from the result; callers
	// detect them by lookup.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
