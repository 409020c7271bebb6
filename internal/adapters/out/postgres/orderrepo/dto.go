// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index; the allocator should never produce
// duplicates, so a violation here indicates a misconfigured counter. GORM
// maintains the creation and update timestamps.
type OrderDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNumber      int64          `gorm:"type:bigint;not null;uniqueIndex"`
	CustomerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Street           string         `gorm:"type:varchar(255);not null"`
	Label            string         `gorm:"type:varchar(64)"`
	DeliveryFee      int64          `gorm:"type:bigint;not null"`
	TotalPrice       int64          `gorm:"type:bigint;not null"`
	Status           int            `gorm:"type:int;not null;index"`
	CancelledByAdmin bool           `gorm:"not null"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
	Lines            []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order position with its frozen price snapshot.
// Lines are written once at order creation and never updated.
type OrderLineDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"type:int;not null"`
	Size            string    `gorm:"type:varchar(32);not null"`
	Color           string    `gorm:"type:varchar(64);not null"`
	OriginalPrice   int64     `gorm:"type:bigint;not null"`
	DiscountPercent int       `gorm:"type:int;not null"`
	DiscountedPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order row together with all its lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       line.ProductID().Bytes(),
			Quantity:        line.Quantity(),
			Size:            line.Size(),
			Color:           line.Color(),
			OriginalPrice:   line.OriginalPrice(),
			DiscountPercent: line.DiscountPercent(),
			DiscountedPrice: line.DiscountedPrice(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Street:           aggregate.Address().Street(),
		Label:            aggregate.Address().Label(),
		DeliveryFee:      aggregate.DeliveryFee(),
		TotalPrice:       aggregate.TotalPrice(),
		Status:           int(aggregate.Status()),
		CancelledByAdmin: aggregate.CancelledByAdmin(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO with its lines to an order domain
// aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.Label)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(
			productID,
			lineDTO.Quantity,
			lineDTO.Size,
			lineDTO.Color,
			lineDTO.OriginalPrice,
			lineDTO.DiscountPercent,
			lineDTO.DiscountedPrice,
		)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.OrderNumber,
		lines,
		address,
		dto.DeliveryFee,
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.CancelledByAdmin,
	)
}
