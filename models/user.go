package models

import (
	"time"
)

// User is a host or guest account. Only the seeded host uses the password
// column for now; guests are referenced by email from bookings.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"column:email;uniqueIndex;size:191" json:"email"`
	FullName string `gorm:"column:full_name;size:191" json:"fullName"`
	Password string `gorm:"column:password;size:191" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
