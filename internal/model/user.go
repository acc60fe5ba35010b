package model

import "time"

// User represents an account holder. TotalExp is the gamification counter
// that task rewards feed into; the update-exp endpoint overwrites it.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	TotalExp     int       `json:"totalExp" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	Avatar       string    `json:"avatar" gorm:"type:text"`
}

// UserUpdate carries the mutable profile fields; nil means leave untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Avatar   *string
}

// Apply overwrites the fields present in the update.
func (u *UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
}
