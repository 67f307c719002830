package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

var (
	ErrUsernameExists    = repository.ErrUsernameExists
	ErrUserEmailExists   = repository.ErrUserEmailExists
	ErrUserNotFound      = repository.ErrUserNotFound
	ErrUserOwnsResources = repository.ErrUserOwnsResources
	ErrWrongPassword     = errors.New("wrong password")
	ErrNotAdmin          = errors.New("user is not an administrator")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByLogin(ctx context.Context, login string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Register hashes the password and creates the user. Self-registration always
// produces an ordinary member; role and gender defaults are forced here, not
// trusted from the caller.
func (s *AuthService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashed
	user.Role = domain.RoleMember
	user.Gender = domain.GenderSecret
	if user.Level == 0 {
		user.Level = 1
	}
	if user.CreditScore == 0 {
		user.CreditScore = 100
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login accepts either an email address or a username.
func (s *AuthService) Login(ctx context.Context, login, password string) (domain.User, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByLogin -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// AdminLogin is Login plus the role gate for the moderation surface.
func (s *AuthService) AdminLogin(ctx context.Context, login, password string) (domain.User, error) {
	user, err := s.Login(ctx, login, password)
	if err != nil {
		return domain.User{}, err
	}

	if !user.IsAdmin() {
		return domain.User{}, ErrNotAdmin
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
