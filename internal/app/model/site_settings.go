package model

import (
	"time"
)

// SiteSettings is the single administrator-edited configuration record.
// The service layer guarantees at most one row ever exists.
type SiteSettings struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	SiteName       string    `gorm:"size:100;default:'Minha Joalheria'" json:"site_name"`
	Logo           string    `json:"logo"`
	PrimaryColor   string    `gorm:"size:7;default:'#000000'" json:"primary_color"`
	SecondaryColor string    `gorm:"size:7;default:'#D4AF37'" json:"secondary_color"`
	InstagramURL   string    `json:"instagram_url"`
	FacebookURL    string    `json:"facebook_url"`
	WhatsappNumber string    `gorm:"size:20" json:"whatsapp_number"`
	TermsOfUse     string    `gorm:"type:text" json:"terms_of_use"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
