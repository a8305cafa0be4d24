package model

import (
	"time"
)

type CustomRequestStatus string

const (
	CustomRequestPending  CustomRequestStatus = "pending"
	CustomRequestInReview CustomRequestStatus = "in_review"
	CustomRequestApproved CustomRequestStatus = "approved"
	CustomRequestRejected CustomRequestStatus = "rejected"
)

// ValidCustomRequestStatus reports whether s is a known request state
func ValidCustomRequestStatus(s CustomRequestStatus) bool {
	switch s {
	case CustomRequestPending, CustomRequestInReview,
		CustomRequestApproved, CustomRequestRejected:
		return true
	}
	return false
}

// CustomRequest is a direct quote request for a custom-made piece.
type CustomRequest struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	UserID         uint                `gorm:"not null;index" json:"user_id"`
	Description    string              `gorm:"type:text;not null" json:"description"`
	ReferenceImage string              `json:"reference_image"` // customer-supplied reference photo URL
	Status         CustomRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt      time.Time           `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CustomRequest) TableName() string {
	return "custom_requests"
}
