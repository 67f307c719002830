package repository

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
)

var (
	ErrUsernameExists    = dao.ErrUsernameExists
	ErrUserEmailExists   = dao.ErrUserEmailExists
	ErrUserNotFound      = dao.ErrUserNotFound
	ErrUserOwnsResources = dao.ErrUserOwnsResources
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByLogin(ctx context.Context, login string) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query dao.UserListQuery) ([]dao.User, int64, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	found, err := r.dao.FindByLogin(ctx, login)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByLogin -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter, page domain.PageQuery) ([]domain.User, int64, error) {
	found, total, err := r.dao.List(ctx, dao.UserListQuery{
		Username: filter.Username,
		Nickname: filter.Nickname,
		Email:    filter.Email,
		Phone:    filter.Phone,
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, total, nil
}

func (r *UserRepository) domainToDAO(u domain.User) dao.User {
	return dao.User{
		ID:          u.ID,
		Username:    u.Username,
		Nickname:    u.Nickname,
		Password:    u.Password,
		Email:       u.Email,
		Phone:       u.Phone,
		Gender:      u.Gender,
		Avatar:      u.Avatar,
		Introduce:   u.Introduce,
		Role:        u.Role,
		Level:       u.Level,
		CreditScore: u.CreditScore,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		Nickname:    u.Nickname,
		Password:    u.Password,
		Email:       u.Email,
		Phone:       u.Phone,
		Gender:      u.Gender,
		Avatar:      u.Avatar,
		Introduce:   u.Introduce,
		Role:        u.Role,
		Level:       u.Level,
		CreditScore: u.CreditScore,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func userSummary(u dao.User) *domain.UserSummary {
	if u.ID == 0 {
		return nil
	}

	return &domain.UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
