package notificationrepo

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new queued notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the sent flag of a claimed notification.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{"sent": aggregate.IsSent()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllUnsent retrieves up to limit unclaimed notifications, oldest first.
func (r *GormNotificationRepository) GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos, "sent = ?", false).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
