package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = pq.ErrorCode("23505")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable part of an existing order: its status and the
// cancelled-by-admin flag. Lines are never touched after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":             int(aggregate.Status()),
			"cancelled_by_admin": aggregate.CancelledByAdmin(),
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

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves all of a customer's orders, newest first.
// Order numbers are strictly increasing, so descending number order matches
// creation order.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("order_number DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountCancelledByAdmin counts the customer's orders that an administrator
// cancelled. Feeds the ban policy, which recomputes this on every
// evaluation.
func (r *GormOrderRepository) CountCancelledByAdmin(ctx context.Context, customerID kernel.UUID) (int, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ? AND status = ? AND cancelled_by_admin = ?",
			customerID.Bytes(), int(order.Cancelled), true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
