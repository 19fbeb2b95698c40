package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryFailed         DeliveryStatus = "failed" // terminal, set when payment fails
	DeliveryOrdered        DeliveryStatus = "ordered"
	DeliveryShipped        DeliveryStatus = "shipped"
	DeliveryOutForDelivery DeliveryStatus = "out for delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
)

// ValidDeliveryStatus reports whether s is one of the fixed delivery states.
func ValidDeliveryStatus(s string) bool {
	switch DeliveryStatus(s) {
	case DeliveryFailed, DeliveryOrdered, DeliveryShipped, DeliveryOutForDelivery, DeliveryDelivered:
		return true
	}
	return false
}

// Payment statuses. "created" and everything gateway-reported are stored
// verbatim; a captured payment is recorded as "successful".
const (
	PaymentCreated    = "created"
	PaymentSuccessful = "successful"
)

type Order struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	GatewayOrderID string         `gorm:"index;not null" json:"order_id"` // payment gateway's order id
	UserID         string         `gorm:"index;not null" json:"userId"`
	Address        Address        `gorm:"embedded" json:"address"`
	Products       []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalAmount    float64        `gorm:"not null" json:"total_amount"`
	Currency       string         `gorm:"not null" json:"currency"`
	Status         string         `gorm:"not null;default:created" json:"status"`
	DeliveryStatus DeliveryStatus `gorm:"type:VARCHAR(20);default:ordered" json:"deliveryStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderID   string `gorm:"index" json:"-"`
	ProductID string `gorm:"not null" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
