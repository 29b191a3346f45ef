package service

import (
	"context"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/repository"
)

type ProfileService interface {
	// Current returns the active profile. A default exists before any save.
	Current(ctx context.Context) (*domain.UserProfile, error)
	// Save replaces the profile wholesale.
	Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.UserProfile, error)
	// ToggleRisk flips exactly one family-history flag and returns the
	// updated profile. Toggling the same flag twice is an identity.
	ToggleRisk(ctx context.Context, flag domain.RiskFlag) (*domain.UserProfile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Current(ctx context.Context) (*domain.UserProfile, error) {
	return s.repo.Current(ctx)
}

func (s *profileService) Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.UserProfile, error) {
	profile := req.ToProfile()
	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ToggleRisk(ctx context.Context, flag domain.RiskFlag) (*domain.UserProfile, error) {
	profile, err := s.repo.Current(ctx)
	if err != nil {
		return nil, err
	}

	if err := profile.FamilyHistory.Toggle(flag); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
