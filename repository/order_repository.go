package repository

import (
	"context"

	"eatery/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// orders are created by checkout; new orders always start as placed
func (r *OrderRepository) CreateOrder(ctx context.Context, o *entity.Order) error {
	if o.Status == "" {
		o.Status = entity.OrderStatusPlaced
	}
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) FindOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus overwrites the status unconditionally (last write wins)
// and returns the stored order.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindOrder(ctx, orderID)
}

// รายการ order ของร้าน (ใหม่สุดก่อน)
func (r *OrderRepository) ListForRestaurant(ctx context.Context, restID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// รายการ order ของลูกค้า
func (r *OrderRepository) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
