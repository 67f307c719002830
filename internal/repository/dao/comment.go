package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type EventComment struct {
	ID uint `gorm:"primaryKey"`

	Content string `gorm:"not null;size:500"`
	UserID  uint   `gorm:"not null;index"`
	EventID uint   `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (EventComment) TableName() string {
	return "event_comments"
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment EventComment) (EventComment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return EventComment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) FindByID(ctx context.Context, id uint) (EventComment, error) {
	var comment EventComment

	result := d.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventComment{}, ErrCommentNotFound
		}

		return EventComment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) FindByEventID(ctx context.Context, eventID uint, offset, limit int) ([]EventComment, int64, error) {
	tx := d.db.WithContext(ctx).Model(&EventComment{}).Where("event_id = ?", eventID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []EventComment
	err := tx.Order("id DESC").Offset(offset).Limit(limit).Preload("User").Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (d *CommentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventComment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
