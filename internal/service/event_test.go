package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

type fakeEventRepo struct {
	events map[uint]domain.Event
	nextID uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: map[uint]domain.Event{},
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)

	return nil
}

func (f *fakeEventRepo) List(_ context.Context, filter domain.EventFilter, page domain.PageQuery) ([]domain.Event, int64, error) {
	var events []domain.Event
	for _, event := range f.events {
		events = append(events, event)
	}

	return events, int64(len(events)), nil
}

func newEventTestFixture() (*EventService, *fakeEventRepo) {
	venues := &fakeVenueStore{venues: map[uint]domain.Venue{
		1: {ID: 1, Name: "city gym"},
	}}
	repo := newFakeEventRepo()

	return NewEventService(repo, venues), repo
}

func TestEventServiceCreate(t *testing.T) {
	t.Run("rejects an unknown venue", func(t *testing.T) {
		svc, _ := newEventTestFixture()

		_, err := svc.Create(context.Background(), domain.Event{Title: "morning run", VenueID: 99})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("creates against an existing venue", func(t *testing.T) {
		svc, _ := newEventTestFixture()

		event, err := svc.Create(context.Background(), domain.Event{Title: "morning run", VenueID: 1})
		require.NoError(t, err)
		assert.NotZero(t, event.ID)
	})
}

func TestEventServiceUpdate(t *testing.T) {
	t.Run("preserves capacity and registered count", func(t *testing.T) {
		svc, repo := newEventTestFixture()

		created, err := svc.Create(context.Background(), domain.Event{Title: "morning run", VenueID: 1})
		require.NoError(t, err)

		// The membership engine has been at work meanwhile.
		stored := repo.events[created.ID]
		stored.Capacity = 18
		stored.RegisteredCount = 5
		repo.events[created.ID] = stored

		updated, err := svc.Update(context.Background(), domain.Event{
			ID:       created.ID,
			Title:    "evening run",
			VenueID:  1,
			Capacity: 1, // must be ignored
		})
		require.NoError(t, err)
		assert.Equal(t, "evening run", updated.Title)
		assert.Equal(t, 18, updated.Capacity)
		assert.Equal(t, 5, updated.RegisteredCount)
	})

	t.Run("rejects a venue change to an unknown venue", func(t *testing.T) {
		svc, _ := newEventTestFixture()

		created, err := svc.Create(context.Background(), domain.Event{Title: "morning run", VenueID: 1})
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), domain.Event{
			ID:      created.ID,
			Title:   "morning run",
			VenueID: 99,
		})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _ := newEventTestFixture()

		_, err := svc.Update(context.Background(), domain.Event{ID: 42, VenueID: 1})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
