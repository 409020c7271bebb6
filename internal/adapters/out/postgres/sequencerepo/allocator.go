// Package sequencerepo implements the sequence allocator on a postgres
// counters table. Each named counter is a single row; allocation is one
// atomic upsert, so concurrent callers always receive distinct, strictly
// increasing values.
package sequencerepo

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name string `gorm:"type:varchar(64);primaryKey"`
	Seq  int64  `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for counter entities.
// Overrides GORM's default naming convention to use "counters".
func (CounterDTO) TableName() string {
	return "counters"
}

// GormSequenceAllocator implements SequenceAllocator on a counters table.
// It runs outside any unit of work: the row-level lock taken by the upsert
// is held only for the duration of the single statement, so allocation
// never serializes whole order transactions behind one row.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new postgres-backed sequence allocator.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next atomically increments the named counter and returns its new value.
// A fresh counter starts at 1. The insert and the increment race safely:
// whichever concurrent caller loses the insert takes the conflict branch.
func (a *GormSequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var seq int64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, seq)
		VALUES (?, 1)
		ON CONFLICT (name)
		DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`, name).Row().Scan(&seq)
	if err != nil {
		return 0, errs.NewStorageUnavailableErrorWithCause("allocate sequence "+name, err)
	}

	return seq, nil
}
