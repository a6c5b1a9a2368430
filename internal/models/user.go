// Package models contains data models for the vacancy service.
package models

import "time"

// User represents a registered account. The username is immutable after
// creation and unique at the application level.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
