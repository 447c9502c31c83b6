// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate is a WGS84 point in degrees. Lat must be in [-90,90] and Lng in [-180,180].
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EntityKind distinguishes the kinds of entities kept in the geo index.
type EntityKind string

const (
	EntityKindProfile EntityKind = "profile"
	EntityKindGym     EntityKind = "gym"
	EntityKindGroup   EntityKind = "group"
)

// LocationSource records how a location was obtained.
type LocationSource string

const (
	LocationSourceGPS       LocationSource = "gps"
	LocationSourceManual    LocationSource = "manual"
	LocationSourceGeocoded  LocationSource = "geocoded"
	LocationSourceCityLevel LocationSource = "city_level"
)

// Location is a coordinate plus descriptive fields. It is overwritten, never deleted.
type Location struct {
	Coordinate  Coordinate     `json:"coordinate"`
	Address     string         `json:"address,omitempty"`
	City        string         `json:"city,omitempty"`
	State       string         `json:"state,omitempty"`
	Country     string         `json:"country,omitempty"`
	ZipCode     string         `json:"zip_code,omitempty"`
	Source      LocationSource `json:"source"`
	Accuracy    float64        `json:"accuracy,omitempty"` // Reported accuracy in meters, 0 when unknown.
	LastUpdated time.Time      `json:"last_updated"`
}

// IndexedLocation is one row of the geo index: the last known location of an entity.
type IndexedLocation struct {
	EntityID   uuid.UUID  `json:"entity_id"`
	EntityKind EntityKind `json:"entity_kind"`
	Location   Location   `json:"location"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	LastActive time.Time  `json:"last_active"`
}

// GeoFilter restricts geo index queries.
type GeoFilter struct {
	Kinds        []EntityKind // Empty means every kind.
	ActiveOnly   bool
	VerifiedOnly bool
	ExcludeIDs   []uuid.UUID
	BoostedAt    *time.Time // Only entities with a boost effective at this instant.
	Limit        int        // 0 means the repository default.
}

// Candidate is a geo index hit with its exact distance from the query origin.
type Candidate struct {
	EntityID      uuid.UUID  `json:"entity_id"`
	EntityKind    EntityKind `json:"entity_kind"`
	Location      Location   `json:"location"`
	DistanceMiles float64    `json:"distance_miles"`
	LastActive    time.Time  `json:"last_active"`
}
