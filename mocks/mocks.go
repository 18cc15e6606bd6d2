// Package mocks holds testify mocks for the record and image stores.
package mocks

import (
	"context"

	"eatery/entity"
	"eatery/storage"

	"github.com/stretchr/testify/mock"
)

type RestaurantStore struct {
	mock.Mock
}

func (m *RestaurantStore) FindByOwner(ctx context.Context, ownerID uint) (*entity.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	rest, _ := args.Get(0).(*entity.Restaurant)
	return rest, args.Error(1)
}

func (m *RestaurantStore) Upsert(ctx context.Context, rest *entity.Restaurant) (*entity.Restaurant, error) {
	args := m.Called(ctx, rest)
	if fn, ok := args.Get(0).(func(context.Context, *entity.Restaurant) (*entity.Restaurant, error)); ok {
		return fn(ctx, rest)
	}
	saved, _ := args.Get(0).(*entity.Restaurant)
	return saved, args.Error(1)
}

func (m *RestaurantStore) IsOwnedBy(ctx context.Context, restID, ownerID uint) (bool, error) {
	args := m.Called(ctx, restID, ownerID)
	return args.Bool(0), args.Error(1)
}

type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) FindOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *OrderStore) UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *OrderStore) ListForRestaurant(ctx context.Context, restID uint) ([]entity.Order, error) {
	args := m.Called(ctx, restID)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

func (m *OrderStore) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

type UserStore struct {
	mock.Mock
}

func (m *UserStore) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserStore) UpdateProfile(ctx context.Context, userID uint, p entity.User) (*entity.User, error) {
	args := m.Called(ctx, userID, p)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type ImageStore struct {
	mock.Mock
}

func (m *ImageStore) Store(ctx context.Context, img storage.Image) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}
