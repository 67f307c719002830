package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUsernameExists    = errors.New("username already taken")
	ErrUserEmailExists   = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserOwnsResources = errors.New("user still owns events or groups")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username string `gorm:"unique;not null;size:20"`
	Nickname string `gorm:"size:20"`
	Password string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Phone    string `gorm:"size:20"`

	Gender      int `gorm:"not null;default:2"` // 0 female, 1 male, 2 undisclosed
	Avatar      string
	Introduce   string `gorm:"size:500"`
	Role        int    `gorm:"not null;default:0"` // 0 member, 100 admin
	Level       int    `gorm:"not null;default:1"`
	CreditScore int    `gorm:"not null;default:100"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			if strings.Contains(err.Message, `"uni_users_username"`) {
				return User{}, ErrUsernameExists
			}
			if strings.Contains(err.Message, `"uni_users_email"`) {
				return User{}, ErrUserEmailExists
			}
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FindByLogin resolves a login string that may be either an email or a username.
func (d *UserDAO) FindByLogin(ctx context.Context, login string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).
		Where("email = ? OR username = ?", login, login).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			if strings.Contains(err.Message, `"uni_users_username"`) {
				return User{}, ErrUsernameExists
			}
			if strings.Contains(err.Message, `"uni_users_email"`) {
				return User{}, ErrUserEmailExists
			}
		}

		return User{}, result.Error
	}

	return user, nil
}

// Delete removes the user together with their memberships and comments,
// giving back one registered seat per membership. Events and groups the
// user created are left in place and block the deletion.
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		err := tx.Model(&GroupMember{}).
			Joins("JOIN groups ON groups.id = group_members.group_id").
			Where("group_members.user_id = ?", id).
			Pluck("groups.event_id", &eventIDs).Error
		if err != nil {
			return err
		}

		for _, eventID := range eventIDs {
			result := tx.Model(&Event{}).
				Where("id = ?", eventID).
				UpdateColumn("registered_count", gorm.Expr("registered_count - ?", 1))
			if result.Error != nil {
				return result.Error
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&EventComment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			var pgErr *pgconn.PgError
			if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return ErrUserOwnsResources
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}

type UserListQuery struct {
	Username string
	Nickname string
	Email    string
	Phone    string
	Offset   int
	Limit    int
}

func (d *UserDAO) List(ctx context.Context, query UserListQuery) ([]User, int64, error) {
	tx := d.db.WithContext(ctx).Model(&User{})
	if query.Username != "" {
		tx = tx.Where("username LIKE ?", "%"+query.Username+"%")
	}
	if query.Nickname != "" {
		tx = tx.Where("nickname LIKE ?", "%"+query.Nickname+"%")
	}
	if query.Email != "" {
		tx = tx.Where("email LIKE ?", "%"+query.Email+"%")
	}
	if query.Phone != "" {
		tx = tx.Where("phone LIKE ?", "%"+query.Phone+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	err := tx.Order("id ASC").Offset(query.Offset).Limit(query.Limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
