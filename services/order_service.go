package services

import (
	"context"

	"eatery/entity"
	"eatery/pkg/apperr"
)

// OrderService serves read-only order listings.
type OrderService struct {
	Orders      OrderStore
	Restaurants RestaurantStore
}

func NewOrderService(orders OrderStore, restaurants RestaurantStore) *OrderService {
	return &OrderService{Orders: orders, Restaurants: restaurants}
}

// ListForOwner returns the orders of the owner's restaurant, newest first.
func (s *OrderService) ListForOwner(ctx context.Context, ownerID uint) ([]entity.Order, error) {
	rest, err := s.Restaurants.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	orders, err := s.Orders.ListForRestaurant(ctx, rest.ID)
	if err != nil {
		return nil, storeErr(err, "orders not found")
	}
	return orders, nil
}

// ListForCustomer returns the orders a customer placed.
func (s *OrderService) ListForCustomer(ctx context.Context, userID uint) ([]entity.Order, error) {
	orders, err := s.Orders.ListForUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "orders not found")
	}
	return orders, nil
}

// Viewable returns the order if userID placed it or owns its restaurant.
func (s *OrderService) Viewable(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, "order not found")
	}
	if o.UserID == userID {
		return o, nil
	}
	owned, err := s.Restaurants.IsOwnedBy(ctx, o.RestaurantID, userID)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	if !owned {
		return nil, apperr.Forbidden("not allowed to view this order")
	}
	return o, nil
}
