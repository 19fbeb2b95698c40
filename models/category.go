package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category names are referenced by Product.Categories as plain strings, so a
// rename has to be cascaded into every product that carries the old name.
type Category struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
