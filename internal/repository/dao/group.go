package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("group member not found")
	ErrMemberExists   = errors.New("user is already a member of this group")
)

type Group struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null;size:30"`
	Description string `gorm:"size:200"`
	Capacity    int    `gorm:"not null;default:6"`
	Status      string `gorm:"not null"` // "public", "private", "apply-required" or "closed"

	EventID   uint `gorm:"not null;index"`
	CreatorID uint `gorm:"not null;index"`

	Creator User `gorm:"foreignKey:CreatorID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GroupMember struct {
	ID uint `gorm:"primaryKey"`

	GroupID uint `gorm:"not null;uniqueIndex:idx_group_members_group_user"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_group_members_group_user"`

	User User `gorm:"foreignKey:UserID"`

	JoinedAt time.Time `gorm:"not null;autoCreateTime"`
}

type GroupDAO struct {
	db *gorm.DB
}

func NewGroupDAO(db *gorm.DB) *GroupDAO {
	return &GroupDAO{
		db: db,
	}
}

// Insert creates the group and adds its capacity to the parent event's
// capacity in the same transaction. The event's capacity is additive once
// groups exist; it is never re-derived.
func (d *GroupDAO) Insert(ctx context.Context, group Group) (Group, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Event{}).
			Where("id = ?", group.EventID).
			UpdateColumn("capacity", gorm.Expr("capacity + ?", group.Capacity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return tx.Create(&group).Error
	})
	if err != nil {
		return Group{}, err
	}

	return group, nil
}

func (d *GroupDAO) FindByID(ctx context.Context, id uint) (Group, error) {
	var group Group

	result := d.db.WithContext(ctx).Preload("Creator").First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Group{}, ErrGroupNotFound
		}

		return Group{}, result.Error
	}

	return group, nil
}

func (d *GroupDAO) Update(ctx context.Context, group Group) (Group, error) {
	result := d.db.WithContext(ctx).Omit("Creator").Save(&group)
	if result.Error != nil {
		return Group{}, result.Error
	}

	return group, nil
}

// Delete removes the group and its member rows in one transaction. The parent
// event survives and keeps its capacity.
func (d *GroupDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&GroupMember{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Group{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}

		return nil
	})
}

type GroupListQuery struct {
	Name   string
	Offset int
	Limit  int
}

func (d *GroupDAO) List(ctx context.Context, query GroupListQuery) ([]Group, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Group{})
	if query.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Name+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []Group
	err := tx.Order("id DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Preload("Creator").
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

func (d *GroupDAO) FindMembers(ctx context.Context, groupID uint, offset, limit int) ([]GroupMember, int64, error) {
	tx := d.db.WithContext(ctx).Model(&GroupMember{}).Where("group_id = ?", groupID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []GroupMember
	query := tx.Order("id ASC").Preload("User")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (d *GroupDAO) FindMember(ctx context.Context, groupID, userID uint) (GroupMember, error) {
	var member GroupMember

	result := d.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GroupMember{}, ErrMemberNotFound
		}

		return GroupMember{}, result.Error
	}

	return member, nil
}

// FindMemberInEvent looks for any membership the user holds in any group of
// the given event. This powers the one-group-per-event rule.
func (d *GroupDAO) FindMemberInEvent(ctx context.Context, eventID, userID uint) (GroupMember, error) {
	var member GroupMember

	result := d.db.WithContext(ctx).
		Joins("JOIN groups ON groups.id = group_members.group_id").
		Where("groups.event_id = ? AND group_members.user_id = ?", eventID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GroupMember{}, ErrMemberNotFound
		}

		return GroupMember{}, result.Error
	}

	return member, nil
}

// InsertMemberCounted adds the member and bumps the event's registered count
// together.
func (d *GroupDAO) InsertMemberCounted(ctx context.Context, member GroupMember, eventID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return memberInsertError(err)
		}

		return tx.Model(&Event{}).
			Where("id = ?", eventID).
			UpdateColumn("registered_count", gorm.Expr("registered_count + 1")).Error
	})
}

// DeleteMemberCounted removes the member and decrements the event's
// registered count together.
func (d *GroupDAO) DeleteMemberCounted(ctx context.Context, memberID, eventID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&GroupMember{}, memberID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMemberNotFound
		}

		return tx.Model(&Event{}).
			Where("id = ?", eventID).
			UpdateColumn("registered_count", gorm.Expr("registered_count - 1")).Error
	})
}

// MoveMember deletes the old membership row and inserts the new one in a
// single transaction. One leave plus one join cancel out, so the event's
// registered count is untouched.
func (d *GroupDAO) MoveMember(ctx context.Context, memberID, toGroupID, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&GroupMember{}, memberID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMemberNotFound
		}

		member := GroupMember{GroupID: toGroupID, UserID: userID}
		if err := tx.Create(&member).Error; err != nil {
			return memberInsertError(err)
		}

		return nil
	})
}

// InsertMember is the admin path: an explicit add with no exclusivity search
// and no registered-count bookkeeping.
func (d *GroupDAO) InsertMember(ctx context.Context, member GroupMember) (GroupMember, error) {
	if err := d.db.WithContext(ctx).Create(&member).Error; err != nil {
		return GroupMember{}, memberInsertError(err)
	}

	return member, nil
}

// DeleteMember is the admin path: an explicit remove by pair.
func (d *GroupDAO) DeleteMember(ctx context.Context, groupID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func memberInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrMemberExists
	}

	return err
}
