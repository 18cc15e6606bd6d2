package services

import (
	"context"
	"errors"

	"eatery/entity"
	"eatery/pkg/apperr"

	"gorm.io/gorm"
)

// RestaurantStore is the record store for restaurant profiles.
type RestaurantStore interface {
	FindByOwner(ctx context.Context, ownerID uint) (*entity.Restaurant, error)
	Upsert(ctx context.Context, rest *entity.Restaurant) (*entity.Restaurant, error)
	IsOwnedBy(ctx context.Context, restID, ownerID uint) (bool, error)
}

// OrderStore is the record store for orders.
type OrderStore interface {
	FindOrder(ctx context.Context, orderID uint) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error)
	ListForRestaurant(ctx context.Context, restID uint) ([]entity.Order, error)
	ListForUser(ctx context.Context, userID uint) ([]entity.Order, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, p entity.User) (*entity.User, error)
}

// storeErr maps record-store failures onto the error taxonomy.
func storeErr(err error, notFound string) error {
	if notFound == "" {
		notFound = "record not found"
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFound)
	}
	return apperr.Persistence("record store unavailable", err)
}
