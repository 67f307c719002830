package service

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

var ErrVenueNotFound = repository.ErrVenueNotFound

type VenueRepository interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindByID(ctx context.Context, id uint) (domain.Venue, error)
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.VenueFilter, page domain.PageQuery) ([]domain.Venue, int64, error)
	FindEvents(ctx context.Context, venueID uint) ([]domain.Event, error)
}

type VenueService struct {
	repo VenueRepository
}

func NewVenueService(repo VenueRepository) *VenueService {
	return &VenueService{
		repo: repo,
	}
}

func (s *VenueService) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Get returns the venue together with its events, earliest start first.
func (s *VenueService) Get(ctx context.Context, id uint) (domain.Venue, []domain.Event, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	events, err := s.repo.FindEvents(ctx, id)
	if err != nil {
		return domain.Venue{}, nil, fmt.Errorf("s.repo.FindEvents -> %w", err)
	}

	return venue, events, nil
}

func (s *VenueService) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	existing, err := s.repo.FindByID(ctx, venue.ID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	venue.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VenueService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *VenueService) List(ctx context.Context, filter domain.VenueFilter, page domain.PageQuery) ([]domain.Venue, int64, error) {
	venues, total, err := s.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return venues, total, nil
}
