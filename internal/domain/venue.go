package domain

import "time"

const (
	VenueStatusAvailable   = "available"
	VenueStatusMaintenance = "maintenance"
	VenueStatusClosed      = "closed"
)

type Venue struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Cover       string    `json:"cover"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OpenTime    string    `json:"open_time"`  // HH:mm:ss
	CloseTime   string    `json:"close_time"` // HH:mm:ss
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VenueSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type VenueFilter struct {
	Name   string
	Status string
}
