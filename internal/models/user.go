package models

import "time"

// User is the owner account of this installation. Brood is single-user: the
// first registered account owns the store and no further registrations are
// accepted.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
