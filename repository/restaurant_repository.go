// repository/restaurant_repository.go
package repository

import (
	"context"
	"errors"

	"eatery/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func preloadMenu(db *gorm.DB) *gorm.DB {
	return db.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// ร้านของ owner คนนี้ (มีได้ร้านเดียว)
func (r *RestaurantRepository) FindByOwner(ctx context.Context, ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := preloadMenu(r.DB.WithContext(ctx)).
		Where("user_id = ?", ownerID).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := preloadMenu(r.DB.WithContext(ctx)).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Upsert creates or replaces the owner's profile, keyed by UserID. Menu items
// are replaced as a whole and keep the order of rest.MenuItems.
func (r *RestaurantRepository) Upsert(ctx context.Context, rest *entity.Restaurant) (*entity.Restaurant, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Restaurant
		err := tx.Select("id", "created_at").Where("user_id = ?", rest.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rest.ID = 0
			if err := tx.Omit(clause.Associations).Create(rest).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			rest.ID = existing.ID
			rest.CreatedAt = existing.CreatedAt
			if err := tx.Omit(clause.Associations).Save(rest).Error; err != nil {
				return err
			}
			if err := tx.Where("restaurant_id = ?", rest.ID).Delete(&entity.MenuItem{}).Error; err != nil {
				return err
			}
		}

		for i := range rest.MenuItems {
			rest.MenuItems[i].ID = 0
			rest.MenuItems[i].RestaurantID = rest.ID
			rest.MenuItems[i].Position = i
		}
		if len(rest.MenuItems) > 0 {
			if err := tx.Create(&rest.MenuItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, rest.ID)
}

// เช็คว่าร้านนี้เป็นของ user นี้จริงไหม
func (r *RestaurantRepository) IsOwnedBy(ctx context.Context, restID, ownerID uint) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, ownerID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
