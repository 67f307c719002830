package domain

import "time"

const (
	GroupStatusPublic        = "public"
	GroupStatusPrivate       = "private"
	GroupStatusApplyRequired = "apply-required"
	GroupStatusClosed        = "closed"
)

const (
	GroupMinCapacity     = 2
	GroupMaxCapacity     = 12
	GroupDefaultCapacity = 6
)

type Group struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	EventID     uint      `json:"event_id"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Creator *UserSummary `json:"creator,omitempty"`
}

// GroupMember is the join row between a group and a user. A user holds at most
// one membership across all groups of the same event; the toggle operation
// enforces that, not the schema.
type GroupMember struct {
	ID       uint      `json:"id"`
	GroupID  uint      `json:"group_id"`
	UserID   uint      `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type MembershipAction string

const (
	MembershipJoined   MembershipAction = "joined"
	MembershipLeft     MembershipAction = "left"
	MembershipSwitched MembershipAction = "switched"
)

// MembershipChange reports the outcome of a toggle. FromGroupName is set only
// for switches.
type MembershipChange struct {
	Action        MembershipAction `json:"action"`
	GroupName     string           `json:"group_name"`
	FromGroupName string           `json:"from_group_name,omitempty"`
}

type GroupFilter struct {
	Name string
}
