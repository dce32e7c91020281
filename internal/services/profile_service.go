package services

import (
	"context"
	"errors"

	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
)

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	p, err := s.repo.FindByProfileID(ctx, profileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProfileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProfileService) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if p.ProfileID == "" {
		return nil, errors.New("profileId is required to create a profile")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

// Update is a whole-document replace keyed by profileID.
func (s *ProfileService) Update(ctx context.Context, profileID string, p *models.Profile) (*models.Profile, error) {
	updated, err := s.repo.Replace(ctx, profileID, p)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (s *ProfileService) Delete(ctx context.Context, profileID string) (bool, error) {
	return s.repo.Delete(ctx, profileID)
}

func (s *ProfileService) Exists(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	return n > 0, err
}
