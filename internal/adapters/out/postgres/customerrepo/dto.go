// Package customerrepo provides data transfer objects and mapping functions
// for the customer projection. The order subsystem reads customers and
// writes only their ban flags; profile fields belong to the account
// subsystem.
package customerrepo

import (
	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for the customer projection.
type CustomerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Phone             string    `gorm:"type:varchar(32);not null"`
	IsBanned          bool      `gorm:"not null"`
	BannedByAdmin     bool      `gorm:"not null"`
	PushToken         string    `gorm:"type:varchar(512)"`
	NotifyOrderStatus bool      `gorm:"not null;default:true"`
	NotifyDeals       bool      `gorm:"not null;default:true"`
	NotifyGeneral     bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer projection to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	prefs := aggregate.NotificationPrefs()

	return CustomerDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Phone:             aggregate.Phone(),
		IsBanned:          aggregate.IsBanned(),
		BannedByAdmin:     aggregate.BannedByAdmin(),
		PushToken:         aggregate.PushToken(),
		NotifyOrderStatus: prefs.OrderStatus,
		NotifyDeals:       prefs.Deals,
		NotifyGeneral:     prefs.General,
	}
}

// toDomain converts a database DTO to a customer projection using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Phone,
		dto.IsBanned,
		dto.BannedByAdmin,
		dto.PushToken,
		customer.NotificationPrefs{
			OrderStatus: dto.NotifyOrderStatus,
			Deals:       dto.NotifyDeals,
			General:     dto.NotifyGeneral,
		},
	)
}
