package customerrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the customer's ban flags. The remaining columns are owned
// by the account subsystem and deliberately left alone.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"is_banned":       aggregate.IsBanned(),
			"banned_by_admin": aggregate.BannedByAdmin(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
