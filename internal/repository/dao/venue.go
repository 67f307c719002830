package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type Venue struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null;size:50"`
	Location    string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Cover       string

	Latitude  float64
	Longitude float64

	OpenTime  string `gorm:"not null;size:8;default:08:00:00"` // HH:mm:ss
	CloseTime string `gorm:"not null;size:8;default:22:00:00"` // HH:mm:ss
	Status    string `gorm:"not null"`                         // "available", "maintenance" or "closed"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VenueDAO struct {
	db *gorm.DB
}

func NewVenueDAO(db *gorm.DB) *VenueDAO {
	return &VenueDAO{
		db: db,
	}
}

func (d *VenueDAO) Insert(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Create(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) FindByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).First(&venue, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Venue{}, ErrVenueNotFound
		}

		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) Update(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Save(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Venue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

type VenueListQuery struct {
	Name   string
	Status string
	Offset int
	Limit  int
}

func (d *VenueDAO) List(ctx context.Context, query VenueListQuery) ([]Venue, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Venue{})
	if query.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var venues []Venue
	err := tx.Order("id ASC").Offset(query.Offset).Limit(query.Limit).Find(&venues).Error
	if err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

// FindEvents returns the venue's events ordered by start time.
func (d *VenueDAO) FindEvents(ctx context.Context, venueID uint) ([]Event, error) {
	var events []Event

	err := d.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Preload("Creator").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
