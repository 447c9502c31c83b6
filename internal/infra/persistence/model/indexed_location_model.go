package model

import (
	"time"

	"github.com/google/uuid"
)

// IndexedLocationModel is the GORM-specific struct for the 'indexed_locations' table.
// Geog is derived from longitude/latitude by the database and carries the GiST index
// used by radius and bounding box queries.
type IndexedLocationModel struct {
	EntityID   uuid.UUID `gorm:"type:uuid;primary_key"`
	EntityKind string    `gorm:"type:varchar(20);not null;index:idx_indexed_locations_kind_active"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Geog       string    `gorm:"->;type:geography(Point,4326) GENERATED ALWAYS AS (ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography) STORED;index:idx_indexed_locations_geog,type:gist"`
	Address    string    `gorm:"type:text;not null;default:''"`
	City       string    `gorm:"type:varchar(100);not null;default:''"`
	State      string    `gorm:"type:varchar(100);not null;default:''"`
	Country    string    `gorm:"type:varchar(100);not null;default:''"`
	ZipCode    string    `gorm:"type:varchar(20);not null;default:''"`
	Source     string    `gorm:"type:varchar(20);not null"`
	Accuracy   float64   `gorm:"not null;default:0"`
	IsActive   bool      `gorm:"not null;default:true;index:idx_indexed_locations_kind_active"`
	IsVerified bool      `gorm:"not null;default:false"`
	LastActive time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndexedLocationModel) TableName() string {
	return "indexed_locations"
}
