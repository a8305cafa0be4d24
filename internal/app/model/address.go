package model

import (
	"time"
)

type Address struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Name           string    `gorm:"size:100;not null" json:"name"` // label, e.g. "Home"
	ZipCode        string    `gorm:"size:10;not null" json:"zip_code"`
	Street         string    `gorm:"size:255;not null" json:"street"`
	Neighborhood   string    `gorm:"size:100;not null" json:"neighborhood"`
	City           string    `gorm:"size:100;not null" json:"city"`
	State          string    `gorm:"size:2;not null" json:"state"`
	Number         string    `gorm:"size:20;not null" json:"number"`
	Complement     string    `gorm:"size:100" json:"complement"`
	ReferencePoint string    `gorm:"size:255" json:"reference_point"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}
