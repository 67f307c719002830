package domain

import "time"

const (
	EventTypeBadminton   = "badminton"
	EventTypeBasketball  = "basketball"
	EventTypeSoccer      = "soccer"
	EventTypeTableTennis = "table-tennis"
	EventTypeTennis      = "tennis"
	EventTypeOther       = "other"
)

const (
	FeeTypeFree  = "free"
	FeeTypeSplit = "split"
	FeeTypeFixed = "fixed"
)

const (
	EventStatusPublic        = "public"
	EventStatusPrivate       = "private"
	EventStatusApplyRequired = "apply-required"
)

type Event struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Cover           string    `json:"cover"`
	Type            string    `json:"type"`
	Difficulty      int       `json:"difficulty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	RegStart        time.Time `json:"reg_start"`
	RegEnd          time.Time `json:"reg_end"`
	Capacity        int       `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	FeeType         string    `json:"fee_type"`
	FeeAmount       float64   `json:"fee_amount"`
	Status          string    `json:"status"`
	CreatorID       uint      `json:"creator_id"`
	VenueID         uint      `json:"venue_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Creator *UserSummary  `json:"creator,omitempty"`
	Venue   *VenueSummary `json:"venue,omitempty"`
}

// EventFilter narrows event listings. Zero values are ignored.
type EventFilter struct {
	Title      string
	VenueID    uint
	Difficulty *int
	Type       string
	FeeType    string
}
