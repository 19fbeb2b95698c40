package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultProductImage = "https://www.tiffincurry.ca/wp-content/uploads/2021/02/default-product.png"

type Product struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Quantity    int        `gorm:"not null" json:"quantity"` // stock on hand
	Categories  StringList `gorm:"serializer:json" json:"categories"`
	Brand       string     `gorm:"not null" json:"brand"`
	Images      StringList `gorm:"serializer:json" json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// StringList is stored as a JSON array in a single text column, which keeps
// category names usable as plain string references (see Category rename).
type StringList []string

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if len(p.Images) == 0 {
		p.Images = StringList{defaultProductImage}
	}
	return nil
}
