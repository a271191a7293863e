package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/property"
)

type GormPropertyRepository struct {
	base
}

func NewGormPropertyRepository(db *gorm.DB, queryTimeout time.Duration) *GormPropertyRepository {
	return &GormPropertyRepository{base: newBase(db, queryTimeout)}
}

func (r *GormPropertyRepository) CreateOwner(ctx context.Context, o *property.Owner) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(o).Error; err != nil {
		return fmt.Errorf("error creating owner: %w", err)
	}
	return nil
}

func (r *GormPropertyRepository) GetOwner(ctx context.Context, id int64) (*property.Owner, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	o := &property.Owner{}
	if err := db.First(o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error getting owner by ID: %w", err)
	}
	return o, nil
}

func (r *GormPropertyRepository) CreateApartment(ctx context.Context, a *property.Apartment) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(a).Error; err != nil {
		return fmt.Errorf("error creating apartment: %w", err)
	}
	return nil
}
