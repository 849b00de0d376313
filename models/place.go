package models

import (
	"time"

	"gorm.io/datatypes"
)

// AmenityType is the fixed set of amenity kinds a place can advertise.
type AmenityType string

const (
	AmenitySleeps AmenityType = "sleeps"
	AmenityHeated AmenityType = "heated"
)

// Amenity is a type plus an optional untyped value, e.g. {sleeps, 4}.
type Amenity struct {
	Type  AmenityType `json:"type"`
	Value any         `json:"value,omitempty"`
}

// Place is the aggregate root: a listable lodging unit owned by a user,
// with its bookings attached. Bookings have no life of their own outside
// their place.
type Place struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Owner string `gorm:"column:owner;index;size:191" json:"owner"`
	Name  string `gorm:"column:name;size:191" json:"name"`
	Photo string `gorm:"column:photo;size:512" json:"photo,omitempty"`

	Amenities datatypes.JSONSlice[Amenity] `gorm:"column:amenities" json:"amenities"`

	Bookings []Booking `gorm:"foreignKey:PlaceID;references:ID" json:"bookings"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
