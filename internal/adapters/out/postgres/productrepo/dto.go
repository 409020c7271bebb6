// Package productrepo provides data transfer objects and mapping functions
// for the product catalog read side. The order subsystem only reads catalog
// rows to freeze price snapshots at order creation.
package productrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductDTO represents the database structure for catalog products.
// Variant lists are stored as postgres text arrays.
type ProductDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Price           int64          `gorm:"type:bigint;not null"`
	DiscountPercent int            `gorm:"type:int;not null"`
	Sizes           pq.StringArray `gorm:"type:text[]"`
	Colors          pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product projection using
// RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.DiscountPercent,
		dto.Sizes,
		dto.Colors,
	)
}
