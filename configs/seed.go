package configs

import (
	"errors"
	"fmt"
	"log"
	"time"

	"eatery/entity"

	"gorm.io/gorm"
)

// DemoImageURL is the placeholder image of the seeded restaurant.
const DemoImageURL = "https://placehold.co/600x400.png"

// DemoAccounts are the users SeedDemo guarantees.
type DemoAccounts struct {
	Owner    entity.User
	Customer entity.User
}

// SeedDemo creates a demo owner with a restaurant, a customer and a few
// placed orders. Running it again only fills in what is missing.
func SeedDemo(database *gorm.DB) (*DemoAccounts, error) {
	var out DemoAccounts
	err := database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(entity.User{Email: "owner@demo.local"}).
			Attrs(entity.User{Name: "Demo Owner", Role: "owner", City: "Pune", Country: "India"}).
			FirstOrCreate(&out.Owner).Error; err != nil {
			return fmt.Errorf("seed owner: %w", err)
		}
		if err := tx.Where(entity.User{Email: "customer@demo.local"}).
			Attrs(entity.User{Name: "Demo Customer", Role: "customer", City: "Pune", Country: "India"}).
			FirstOrCreate(&out.Customer).Error; err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}

		var rest entity.Restaurant
		err := tx.Where("user_id = ?", out.Owner.ID).First(&rest).Error
		if err == nil {
			log.Println("ℹ️ demo restaurant already exists:", rest.Name)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rest = entity.Restaurant{
			UserID:                       out.Owner.ID,
			Name:                         "Demo Kitchen",
			Address:                      "1 Demo Street",
			City:                         "Pune",
			State:                        "MH",
			Country:                      "India",
			Pincode:                      "411001",
			PhoneNumber:                  "0000000000",
			DeliveryPriceMinor:           4900,
			EstimatedDeliveryTimeMinutes: 30,
			Cuisines:                     []string{"Indian", "Chinese"},
			MenuItems: []entity.MenuItem{
				{Position: 0, Name: "Paneer Tikka", PriceMinor: 24900},
				{Position: 1, Name: "Veg Hakka Noodles", PriceMinor: 19900},
			},
			ImageURL:                     DemoImageURL,
			LastUpdated:                  time.Now(),
		}
		if err := tx.Create(&rest).Error; err != nil {
			return fmt.Errorf("seed restaurant: %w", err)
		}

		for i, status := range []entity.OrderStatus{entity.OrderStatusPlaced, entity.OrderStatusPaid} {
			item := rest.MenuItems[i]
			o := entity.Order{
				RestaurantID: rest.ID,
				UserID:       out.Customer.ID,
				DeliveryDetails: entity.DeliveryDetails{
					Name: out.Customer.Name, AddressLine1: "2 Demo Lane", City: "Pune", Country: "India", Pincode: "411001",
				},
				CartItems:        []entity.CartItem{{MenuItemID: item.ID, Name: item.Name, Quantity: 2}},
				TotalAmountMinor: 2*item.PriceMinor + rest.DeliveryPriceMinor,
				Status:           status,
			}
			if err := tx.Create(&o).Error; err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
		}
		log.Println("✅ seeded demo restaurant:", rest.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
