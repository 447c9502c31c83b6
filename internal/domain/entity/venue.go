// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Venue is a discoverable point of interest such as a gym or an interest group meeting spot.
// Its coordinates are always present. Venues are never hard-deleted.
type Venue struct {
	ID          uuid.UUID  `json:"id"`
	Kind        EntityKind `json:"kind"` // gym or group
	Name        string     `json:"name"`
	Location    Location   `json:"location"`
	Amenities   []string   `json:"amenities"`
	Chain       string     `json:"chain,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"` // Profile that created the venue.
	IsActive    bool       `json:"is_active"`
	IsVerified  bool       `json:"is_verified"`
	MemberCount int        `json:"member_count"`
	Rating      float64    `json:"rating"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NearbyVenue pairs a venue with its distance from a query point.
type NearbyVenue struct {
	Venue         *Venue  `json:"venue"`
	DistanceMiles float64 `json:"distance_miles"`
}

// NormalizeVenueName folds case, drops punctuation and collapses whitespace so that
// "Gold's Gym" and "golds  gym" compare equal during de-duplication.
func NormalizeVenueName(name string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case unicode.IsSpace(r):
			if !space && b.Len() > 0 {
				b.WriteRune(' ')
				space = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}
