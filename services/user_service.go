package services

import (
	"context"

	"eatery/entity"
	"eatery/validation"
)

type UserService struct {
	Repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	return u, nil
}

// UpdateProfile validates fields with UserProfileRules before writing.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, fields validation.Fields) (*entity.User, error) {
	if err := validation.UserProfileRules.Err(fields); err != nil {
		return nil, err
	}
	u, err := s.Repo.UpdateProfile(ctx, userID, entity.User{
		Name:          fields["name"].(string),
		ContactNumber: fields["contactNumber"].(string),
		AddressLine1:  fields["addressLine1"].(string),
		City:          fields["city"].(string),
		State:         fields["state"].(string),
		Country:       fields["country"].(string),
		Pincode:       fields["pincode"].(string),
	})
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	return u, nil
}
