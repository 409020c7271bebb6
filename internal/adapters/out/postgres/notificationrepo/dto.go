// Package notificationrepo provides data transfer objects and mapping
// functions for the notification queue. Rows are written in the same
// transaction as the order change that produced them and drained by the
// relay job.
package notificationrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for queued
// notifications. The sent flag is indexed because the relay polls on it
// every second.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber int64     `gorm:"type:bigint;not null"`
	OrderStatus int       `gorm:"type:int;not null"`
	Sent        bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for notification entities.
// Overrides GORM's default naming convention to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification aggregate to its database
// representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		OrderStatus: int(aggregate.OrderStatus()),
		Sent:        aggregate.IsSent(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification aggregate using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		customerID,
		orderID,
		dto.OrderNumber,
		order.Status(dto.OrderStatus),
		dto.Sent,
		dto.CreatedAt,
	)
}
