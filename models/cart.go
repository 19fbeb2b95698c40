package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	CartID    uint   `gorm:"index:idx_cart_product,unique" json:"-"`
	ProductID string `gorm:"index:idx_cart_product,unique;not null" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}
