// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// GuestIdentity is what a verified guest token yields.
type GuestIdentity struct {
	Phone     string     `json:"phone"`
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
}

// Identity is the caller of an inbound request. Either or both fields may be set.
type Identity struct {
	UserID *uuid.UUID
	Guest  *GuestIdentity
}

// IsAnonymous reports whether the request carries no identity at all.
func (i Identity) IsAnonymous() bool {
	return i.UserID == nil && i.Guest == nil
}

// Subject is the canonical profile every ledger keys on.
type Subject struct {
	SubjectID uuid.UUID  `json:"subject_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"` // Authenticated user, nil for guests.
	IsGuest   bool       `json:"is_guest"`
	Created   bool       `json:"-"` // The profile was created while resolving.
}
