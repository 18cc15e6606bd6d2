package entity

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"` // owner, set once
	User   User `json:"-"`

	Name        string `gorm:"not null" json:"restaurantName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Pincode     string `json:"pincode"`
	PhoneNumber string `json:"phoneNumber"`

	// minor units (x100 of the entered value)
	DeliveryPriceMinor           int64 `json:"deliveryPrice"`
	EstimatedDeliveryTimeMinutes int   `json:"estimatedDeliveryTime"`

	Cuisines  []string   `gorm:"serializer:json" json:"cuisines"`
	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menuItems"`

	ImageURL    string    `json:"imageUrl"`
	LastUpdated time.Time `json:"lastUpdated"`

	Orders []Order `json:"-"`
}
