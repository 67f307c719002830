package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
)

func TestAuthServiceRegister(t *testing.T) {
	t.Run("hashes the password and forces member defaults", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore())

		user, err := svc.Register(context.Background(), domain.User{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1234",
			Role:     domain.RoleAdmin, // must not be honored
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RoleMember, user.Role)
		assert.Equal(t, domain.GenderSecret, user.Gender)
		assert.Equal(t, 1, user.Level)
		assert.Equal(t, 100, user.CreditScore)

		assert.NotEqual(t, "secret1234", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1234")))
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore())

		_, err := svc.Register(context.Background(), domain.User{
			Username: "alice", Email: "alice@example.com", Password: "secret1234",
		})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), domain.User{
			Username: "alice", Email: "other@example.com", Password: "secret1234",
		})
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore())

		_, err := svc.Register(context.Background(), domain.User{
			Username: "alice", Email: "alice@example.com", Password: "secret1234",
		})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), domain.User{
			Username: "bob", Email: "alice@example.com", Password: "secret1234",
		})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	newRegistered := func(t *testing.T) *AuthService {
		t.Helper()

		svc := NewAuthService(newFakeUserStore())
		_, err := svc.Register(context.Background(), domain.User{
			Username: "alice", Email: "alice@example.com", Password: "secret1234",
		})
		require.NoError(t, err)

		return svc
	}

	t.Run("by email", func(t *testing.T) {
		svc := newRegistered(t)

		user, err := svc.Login(context.Background(), "alice@example.com", "secret1234")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("by username", func(t *testing.T) {
		svc := newRegistered(t)

		user, err := svc.Login(context.Background(), "alice", "secret1234")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newRegistered(t)

		_, err := svc.Login(context.Background(), "alice", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown login", func(t *testing.T) {
		svc := newRegistered(t)

		_, err := svc.Login(context.Background(), "nobody", "secret1234")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthServiceAdminLogin(t *testing.T) {
	t.Run("rejects ordinary members", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore())
		_, err := svc.Register(context.Background(), domain.User{
			Username: "alice", Email: "alice@example.com", Password: "secret1234",
		})
		require.NoError(t, err)

		_, err = svc.AdminLogin(context.Background(), "alice", "secret1234")
		assert.ErrorIs(t, err, ErrNotAdmin)
	})

	t.Run("accepts admins", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store)

		hashed, err := hashPassword("secret1234")
		require.NoError(t, err)
		_, err = store.Create(context.Background(), domain.User{
			Username: "root", Email: "root@example.com", Password: hashed, Role: domain.RoleAdmin,
		})
		require.NoError(t, err)

		user, err := svc.AdminLogin(context.Background(), "root", "secret1234")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})
}
