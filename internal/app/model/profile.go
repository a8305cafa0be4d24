package model

import (
	"time"
)

// Profile carries the phone verification state for a user. It is created in
// the same transaction as the user, so every user always has exactly one.
type Profile struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone            string    `gorm:"size:30" json:"phone"`
	IsPhoneVerified  bool      `gorm:"default:false" json:"is_phone_verified"`
	VerificationCode *string   `gorm:"size:10" json:"-"` // cleared after successful verification
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
