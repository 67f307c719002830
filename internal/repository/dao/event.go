package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null;size:15"`
	Description string `gorm:"size:200"`
	Cover       string
	Type        string `gorm:"not null"` // "badminton", "basketball", "soccer", "table-tennis", "tennis" or "other"
	Difficulty  int    `gorm:"not null;default:0"`

	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	RegStart  time.Time `gorm:"not null"`
	RegEnd    time.Time `gorm:"not null"`

	// Capacity grows by each child group's capacity as groups are created.
	// RegisteredCount tracks toggle joins/leaves, not admin member edits.
	Capacity        int `gorm:"not null;default:0"`
	RegisteredCount int `gorm:"not null;default:0"`

	FeeType   string  `gorm:"not null"` // "free", "split" or "fixed"
	FeeAmount float64 `gorm:"not null;default:0"`
	Status    string  `gorm:"not null"` // "public", "private" or "apply-required"

	CreatorID uint `gorm:"not null;index"`
	VenueID   uint `gorm:"not null;index"`

	Creator User  `gorm:"foreignKey:CreatorID"`
	Venue   Venue `gorm:"foreignKey:VenueID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Creator").
		Preload("Venue").
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Omit("Creator", "Venue").Save(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

// Delete removes the event together with its groups and their member rows.
// The whole cascade runs in one transaction so a concurrent reader never sees
// groups without their event or members without their group.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groupIDs []uint
		err := tx.Model(&Group{}).Where("event_id = ?", id).Pluck("id", &groupIDs).Error
		if err != nil {
			return err
		}

		if len(groupIDs) > 0 {
			if err = tx.Where("group_id IN ?", groupIDs).Delete(&GroupMember{}).Error; err != nil {
				return err
			}
			if err = tx.Where("event_id = ?", id).Delete(&Group{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

type EventListQuery struct {
	Title      string
	VenueID    uint
	Difficulty *int
	Type       string
	FeeType    string
	Offset     int
	Limit      int
}

func (d *EventDAO) List(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Event{})
	if query.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.VenueID != 0 {
		tx = tx.Where("venue_id = ?", query.VenueID)
	}
	if query.Difficulty != nil {
		tx = tx.Where("difficulty = ?", *query.Difficulty)
	}
	if query.Type != "" {
		tx = tx.Where("type = ?", query.Type)
	}
	if query.FeeType != "" {
		tx = tx.Where("fee_type = ?", query.FeeType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := tx.Order("id DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Preload("Creator").
		Preload("Venue").
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
