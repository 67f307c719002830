package repository

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query dao.EventListQuery) ([]dao.Event, int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

// Delete cascades over the event's groups and their member rows; the DAO runs
// the whole cascade in one transaction.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter, page domain.PageQuery) ([]domain.Event, int64, error) {
	found, total, err := r.dao.List(ctx, dao.EventListQuery{
		Title:      filter.Title,
		VenueID:    filter.VenueID,
		Difficulty: filter.Difficulty,
		Type:       filter.Type,
		FeeType:    filter.FeeType,
		Offset:     page.Offset(),
		Limit:      page.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDAOToDomain(e))
	}

	return events, total, nil
}

func eventDomainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Cover:           e.Cover,
		Type:            e.Type,
		Difficulty:      e.Difficulty,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		RegStart:        e.RegStart,
		RegEnd:          e.RegEnd,
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		FeeType:         e.FeeType,
		FeeAmount:       e.FeeAmount,
		Status:          e.Status,
		CreatorID:       e.CreatorID,
		VenueID:         e.VenueID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Cover:           e.Cover,
		Type:            e.Type,
		Difficulty:      e.Difficulty,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		RegStart:        e.RegStart,
		RegEnd:          e.RegEnd,
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		FeeType:         e.FeeType,
		FeeAmount:       e.FeeAmount,
		Status:          e.Status,
		CreatorID:       e.CreatorID,
		VenueID:         e.VenueID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Creator:         userSummary(e.Creator),
		Venue:           venueSummary(e.Venue),
	}
}
