package service

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.UserFilter, page domain.PageQuery) ([]domain.User, int64, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) Get(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// Update persists the record as given. When newPassword is non-empty it is
// hashed here, at the single write boundary, and replaces the stored hash.
func (s *UserService) Update(ctx context.Context, user domain.User, newPassword string) (domain.User, error) {
	if newPassword != "" {
		hashed, err := hashPassword(newPassword)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = hashed
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Create is the admin path; unlike Register it honors the role field.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashed

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) List(ctx context.Context, filter domain.UserFilter, page domain.PageQuery) ([]domain.User, int64, error) {
	users, total, err := s.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return users, total, nil
}
