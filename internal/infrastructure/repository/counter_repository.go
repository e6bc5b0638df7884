package repository

import (
	"context"

	domainRepo "github.com/restoflow/restoflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new ticket counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next bumps the counter for prefix+day in one statement. The upsert
// takes a row lock, so two transactions asking for the same prefix on
// the same day are serialized and can never see the same value.
func (r *counterRepository) Next(ctx context.Context, prefix, day string) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO ticket_counters (prefix, day, value)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, day)
		DO UPDATE SET value = ticket_counters.value + 1
		RETURNING value`,
		prefix, day,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
