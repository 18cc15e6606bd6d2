package entity

type MenuItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"index;not null" json:"-"`
	Position     int    `json:"-"` // submission order
	Name         string `gorm:"not null" json:"name"`
	PriceMinor   int64  `json:"price"`
}
