package repository

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
)

var ErrCommentNotFound = dao.ErrCommentNotFound

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.EventComment) (dao.EventComment, error)
	FindByID(ctx context.Context, id uint) (dao.EventComment, error)
	FindByEventID(ctx context.Context, eventID uint, offset, limit int) ([]dao.EventComment, int64, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository struct {
	dao CommentDAO
}

func NewCommentRepository(dao CommentDAO) *CommentRepository {
	return &CommentRepository{
		dao: dao,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.EventComment) (domain.EventComment, error) {
	created, err := r.dao.Insert(ctx, dao.EventComment{
		Content: comment.Content,
		UserID:  comment.UserID,
		EventID: comment.EventID,
	})
	if err != nil {
		return domain.EventComment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (domain.EventComment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.EventComment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CommentRepository) FindByEventID(ctx context.Context, eventID uint, page domain.PageQuery) ([]domain.EventComment, int64, error) {
	found, total, err := r.dao.FindByEventID(ctx, eventID, page.Offset(), page.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	comments := make([]domain.EventComment, 0, len(found))
	for _, c := range found {
		comments = append(comments, r.daoToDomain(c))
	}

	return comments, total, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CommentRepository) daoToDomain(c dao.EventComment) domain.EventComment {
	return domain.EventComment{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		EventID:   c.EventID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User:      userSummary(c.User),
	}
}
