package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

type fakeCommentStore struct {
	comments map[uint]domain.EventComment
	nextID   uint
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments: map[uint]domain.EventComment{},
		nextID:   1,
	}
}

func (f *fakeCommentStore) Create(_ context.Context, comment domain.EventComment) (domain.EventComment, error) {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment

	return comment, nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id uint) (domain.EventComment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return domain.EventComment{}, repository.ErrCommentNotFound
	}

	return comment, nil
}

func (f *fakeCommentStore) FindByEventID(_ context.Context, eventID uint, page domain.PageQuery) ([]domain.EventComment, int64, error) {
	var comments []domain.EventComment
	for _, comment := range f.comments {
		if comment.EventID == eventID {
			comments = append(comments, comment)
		}
	}

	return comments, int64(len(comments)), nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(f.comments, id)

	return nil
}

func TestCommentServiceCreate(t *testing.T) {
	events := newFakeEventStore(domain.Event{ID: 1, Title: "pickup game"})
	svc := NewCommentService(newFakeCommentStore(), events)

	t.Run("on an existing event", func(t *testing.T) {
		comment, err := svc.Create(context.Background(), domain.EventComment{
			Content: "count me in",
			EventID: 1,
			UserID:  7,
		})
		require.NoError(t, err)
		assert.NotZero(t, comment.ID)
	})

	t.Run("on a missing event", func(t *testing.T) {
		_, err := svc.Create(context.Background(), domain.EventComment{
			Content: "hello?",
			EventID: 99,
		})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestCommentServiceDelete(t *testing.T) {
	newFixture := func(t *testing.T) (*CommentService, domain.EventComment) {
		t.Helper()

		events := newFakeEventStore(domain.Event{ID: 1})
		svc := NewCommentService(newFakeCommentStore(), events)

		comment, err := svc.Create(context.Background(), domain.EventComment{
			Content: "count me in",
			EventID: 1,
			UserID:  7,
		})
		require.NoError(t, err)

		return svc, comment
	}

	t.Run("author may delete", func(t *testing.T) {
		svc, comment := newFixture(t)

		err := svc.Delete(context.Background(), comment.ID, domain.User{ID: 7})
		assert.NoError(t, err)
	})

	t.Run("admin may delete", func(t *testing.T) {
		svc, comment := newFixture(t)

		err := svc.Delete(context.Background(), comment.ID, domain.User{ID: 1, Role: domain.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("stranger may not delete", func(t *testing.T) {
		svc, comment := newFixture(t)

		err := svc.Delete(context.Background(), comment.ID, domain.User{ID: 8})
		assert.ErrorIs(t, err, ErrNotCommentAuthor)
	})

	t.Run("missing comment", func(t *testing.T) {
		svc, _ := newFixture(t)

		err := svc.Delete(context.Background(), 99, domain.User{ID: 7})
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}
