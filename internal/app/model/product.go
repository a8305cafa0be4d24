package model

import (
	"time"
)

type Product struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"size:200;not null" json:"name"`
	Slug             string    `gorm:"uniqueIndex;size:210;not null" json:"slug"`
	Description      string    `gorm:"type:text" json:"description"`
	BasePrice        float64   `gorm:"not null" json:"base_price"`
	PromotionalPrice *float64  `json:"promotional_price"`
	CategoryID       uint      `gorm:"not null;index" json:"category"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	IsFeatured       bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Category deletion is blocked while products reference it
	Category   Category         `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Images     []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Attributes []AttributeValue `gorm:"many2many:product_attribute_values" json:"attributes"`
}

func (Product) TableName() string {
	return "products"
}

// Price returns the effective selling price: the promotional price when set,
// the base price otherwise.
func (p *Product) Price() float64 {
	if p.PromotionalPrice != nil {
		return *p.PromotionalPrice
	}
	return p.BasePrice
}

// ProductImage is one photo of a product; at most one should be the cover.
type ProductImage struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Image     string `gorm:"not null" json:"image"` // media storage URL
	IsCover   bool   `gorm:"default:false" json:"is_cover"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
