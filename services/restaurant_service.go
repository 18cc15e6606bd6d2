// services/restaurant_service.go
package services

import (
	"context"

	"eatery/entity"
)

type RestaurantService struct {
	Repo RestaurantStore
}

func NewRestaurantService(repo RestaurantStore) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// ร้านของ owner ที่ login อยู่
func (s *RestaurantService) GetMine(ctx context.Context, ownerID uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	return rest, nil
}
