package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultProfilePicture = "https://www.pngall.com/wp-content/uploads/5/Profile-PNG-File.png"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `gorm:"default:false" json:"isAdmin"`
	Address        Address   `gorm:"embedded" json:"address"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Address is embedded in User and snapshotted onto each Order.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	Pincode      int    `json:"pincode"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.ProfilePicture == "" {
		u.ProfilePicture = defaultProfilePicture
	}
	return nil
}
