package models

import "github.com/google/uuid"

// Role designates a member's standing within the riding group.
type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// Profile represents a group member. The ID matches the authenticated
// principal. Exactly one leader is expected per group (the first registrant),
// though the invariant is advisory and not enforced here.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Age       int       `json:"age" db:"age"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Role      Role      `json:"role" db:"role"`
}

// LeaderboardEntry is a member's ranking by total recorded distance.
type LeaderboardEntry struct {
	Profile       Profile `json:"profile"`
	TotalDistance float64 `json:"total_distance" db:"total_distance"` // km
	RideCount     int     `json:"ride_count" db:"ride_count"`
}
