package entity

import (
	"gorm.io/gorm"
)

// DeliveryDetails and CartItems are snapshots taken at checkout and never rewritten.
type DeliveryDetails struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Pincode      string `json:"pincode"`
}

type CartItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type Order struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	UserID uint `gorm:"index;not null" json:"userId"` // customer
	User   User `json:"-"`

	DeliveryDetails  DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryDetails"`
	CartItems        []CartItem      `gorm:"serializer:json" json:"cartItems"`
	TotalAmountMinor int64           `json:"totalAmount"`

	Status OrderStatus `gorm:"type:varchar(32);not null;default:placed" json:"status"`
}
