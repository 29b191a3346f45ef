package repository

import (
	"context"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository is the singleton profile store. Current never reports
// absence: the default profile exists before any save.
type ProfileRepository interface {
	// Current returns the active profile.
	Current(ctx context.Context) (*domain.UserProfile, error)
	// Save replaces the profile wholesale.
	Save(ctx context.Context, profile *domain.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Current(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.WithContext(ctx).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.DefaultProfile(), nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	// Upsert against the fixed row so the singleton invariant holds.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(profile).Error
}
