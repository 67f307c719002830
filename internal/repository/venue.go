package repository

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
)

var ErrVenueNotFound = dao.ErrVenueNotFound

type VenueDAO interface {
	Insert(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindByID(ctx context.Context, id uint) (dao.Venue, error)
	Update(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query dao.VenueListQuery) ([]dao.Venue, int64, error)
	FindEvents(ctx context.Context, venueID uint) ([]dao.Event, error)
}

type VenueRepository struct {
	dao VenueDAO
}

func NewVenueRepository(dao VenueDAO) *VenueRepository {
	return &VenueRepository{
		dao: dao,
	}
}

func (r *VenueRepository) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VenueRepository) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VenueRepository) List(ctx context.Context, filter domain.VenueFilter, page domain.PageQuery) ([]domain.Venue, int64, error) {
	found, total, err := r.dao.List(ctx, dao.VenueListQuery{
		Name:   filter.Name,
		Status: filter.Status,
		Offset: page.Offset(),
		Limit:  page.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	venues := make([]domain.Venue, 0, len(found))
	for _, v := range found {
		venues = append(venues, r.daoToDomain(v))
	}

	return venues, total, nil
}

// FindEvents returns the venue's upcoming and past events, earliest first.
func (r *VenueRepository) FindEvents(ctx context.Context, venueID uint) ([]domain.Event, error) {
	found, err := r.dao.FindEvents(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEvents -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDAOToDomain(e))
	}

	return events, nil
}

func (r *VenueRepository) domainToDAO(v domain.Venue) dao.Venue {
	return dao.Venue{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		Cover:       v.Cover,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		OpenTime:    v.OpenTime,
		CloseTime:   v.CloseTime,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (r *VenueRepository) daoToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		Cover:       v.Cover,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		OpenTime:    v.OpenTime,
		CloseTime:   v.CloseTime,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func venueSummary(v dao.Venue) *domain.VenueSummary {
	if v.ID == 0 {
		return nil
	}

	return &domain.VenueSummary{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		Status:      v.Status,
	}
}
