package service

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.EventFilter, page domain.PageQuery) ([]domain.Event, int64, error)
}

type EventVenueRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Venue, error)
}

type EventService struct {
	repo      EventRepository
	venueRepo EventVenueRepository
}

func NewEventService(repo EventRepository, venueRepo EventVenueRepository) *EventService {
	return &EventService{
		repo:      repo,
		venueRepo: venueRepo,
	}
}

// Create verifies the venue resolves before persisting, then re-reads the
// event so the response carries the creator and venue summaries.
func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, err := s.venueRepo.FindByID(ctx, event.VenueID); err != nil {
		return domain.Event{}, fmt.Errorf("s.venueRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	detailed, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return detailed, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// Update overwrites the writable fields only. Creator, capacity bookkeeping
// and the registered count stay what the engine has made them.
func (s *EventService) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.VenueID != existing.VenueID {
		if _, err = s.venueRepo.FindByID(ctx, event.VenueID); err != nil {
			return domain.Event{}, fmt.Errorf("s.venueRepo.FindByID -> %w", err)
		}
	}

	existing.Title = event.Title
	existing.Description = event.Description
	existing.Cover = event.Cover
	existing.Type = event.Type
	existing.Difficulty = event.Difficulty
	existing.StartTime = event.StartTime
	existing.EndTime = event.EndTime
	existing.RegStart = event.RegStart
	existing.RegEnd = event.RegEnd
	existing.FeeType = event.FeeType
	existing.FeeAmount = event.FeeAmount
	existing.Status = event.Status
	existing.VenueID = event.VenueID
	existing.Creator = nil
	existing.Venue = nil

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete cascades members, then groups, then the event, atomically.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter, page domain.PageQuery) ([]domain.Event, int64, error) {
	events, total, err := s.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, total, nil
}
