package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order states
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CustomerID *uint          `gorm:"index" json:"customer"` // cleared if the customer account is deleted
	GuestName  string         `gorm:"size:100" json:"guest_name"`
	GuestEmail string         `gorm:"size:255" json:"guest_email"`
	Address    string         `gorm:"type:text" json:"address"` // frozen shipping text, never a reference
	Status     OrderStatus    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Total      float64        `gorm:"default:0" json:"total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Customer *User       `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"` // snapshot at purchase time, never recomputed

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product_detail,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
