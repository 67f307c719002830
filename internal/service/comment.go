package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

var (
	ErrCommentNotFound  = repository.ErrCommentNotFound
	ErrNotCommentAuthor = errors.New("comment belongs to another user")
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.EventComment) (domain.EventComment, error)
	FindByID(ctx context.Context, id uint) (domain.EventComment, error)
	FindByEventID(ctx context.Context, eventID uint, page domain.PageQuery) ([]domain.EventComment, int64, error)
	Delete(ctx context.Context, id uint) error
}

type CommentEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type CommentService struct {
	repo      CommentRepository
	eventRepo CommentEventRepository
}

func NewCommentService(repo CommentRepository, eventRepo CommentEventRepository) *CommentService {
	return &CommentService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *CommentService) Create(ctx context.Context, comment domain.EventComment) (domain.EventComment, error) {
	if _, err := s.eventRepo.FindByID(ctx, comment.EventID); err != nil {
		return domain.EventComment{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return domain.EventComment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CommentService) ListByEvent(ctx context.Context, eventID uint, page domain.PageQuery) ([]domain.EventComment, int64, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, 0, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	comments, total, err := s.repo.FindByEventID(ctx, eventID, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return comments, total, nil
}

// Delete removes a comment on behalf of requester. Only the comment's author
// or an admin may delete it.
func (s *CommentService) Delete(ctx context.Context, id uint, requester domain.User) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if comment.UserID != requester.ID && !requester.IsAdmin() {
		return ErrNotCommentAuthor
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
