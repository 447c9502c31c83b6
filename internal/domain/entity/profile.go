// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the subject being discovered and ranked. A profile is owned either by
// an authenticated user (OwnerUserID set) or, before being claimed, by a guest phone.
// Once OwnerUserID is set it never changes.
type Profile struct {
	ID          uuid.UUID  `json:"id"`
	OwnerUserID *uuid.UUID `json:"owner_user_id,omitempty"` // Authenticated owner, nil while the profile is guest-owned.
	GuestPhone  string     `json:"guest_phone,omitempty"`   // E.164 phone the guest token was issued for.
	DisplayName string     `json:"display_name,omitempty"`
	Location    *Location  `json:"location,omitempty"`
	LastActive  time.Time  `json:"last_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsClaimed reports whether an authenticated identity owns the profile.
func (p *Profile) IsClaimed() bool {
	return p.OwnerUserID != nil && *p.OwnerUserID != uuid.Nil
}

// OwnedBy reports whether userID is the authenticated owner.
func (p *Profile) OwnedBy(userID uuid.UUID) bool {
	return p.IsClaimed() && *p.OwnerUserID == userID
}
