package repository

import (
	"context"

	"eatery/entity"

	"gorm.io/gorm"
)

// UserRepository only talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes the editable profile fields and returns the stored user.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint, p entity.User) (*entity.User, error) {
	res := r.DB.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"name":           p.Name,
			"contact_number": p.ContactNumber,
			"address_line1":  p.AddressLine1,
			"city":           p.City,
			"state":          p.State,
			"country":        p.Country,
			"pincode":        p.Pincode,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, userID)
}
