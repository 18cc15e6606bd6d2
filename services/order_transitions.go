// services/order_transitions.go
package services

import (
	"context"
	"fmt"
	"strings"

	"eatery/entity"
	"eatery/pkg/apperr"
)

// TransitionPolicy decides which status changes an owner may make.
type TransitionPolicy string

const (
	// PolicyPermissive allows any status in the set to follow any other.
	PolicyPermissive TransitionPolicy = "permissive"
	// PolicyForward only allows moving later in the lifecycle.
	PolicyForward TransitionPolicy = "forward"
)

func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch TransitionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyPermissive:
		return PolicyPermissive, nil
	case PolicyForward:
		return PolicyForward, nil
	}
	return "", fmt.Errorf("unknown order status policy %q", s)
}

// Allows reports whether from -> to is permitted. Both must be valid statuses.
func (p TransitionPolicy) Allows(from, to entity.OrderStatus) bool {
	if !to.Valid() {
		return false
	}
	if p == PolicyForward {
		return from.Rank() < to.Rank()
	}
	return true
}

type OrderStatusService struct {
	Orders      OrderStore
	Restaurants RestaurantStore
	Policy      TransitionPolicy
}

func NewOrderStatusService(orders OrderStore, restaurants RestaurantStore, policy TransitionPolicy) *OrderStatusService {
	return &OrderStatusService{Orders: orders, Restaurants: restaurants, Policy: policy}
}

// AdvanceStatus sets the order's status on behalf of the restaurant owner.
// Concurrent calls for the same order are not serialized: the last write wins.
func (s *OrderStatusService) AdvanceStatus(ctx context.Context, ownerID, orderID uint, newStatus string) (*entity.Order, error) {
	status, ok := entity.ParseOrderStatus(newStatus)
	if !ok {
		return nil, apperr.InvalidArgument(fmt.Sprintf("invalid order status %q", newStatus))
	}

	o, err := s.Orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, "order not found")
	}

	// auth middleware already checked the role; ownership is re-checked against the store
	owned, err := s.Restaurants.IsOwnedBy(ctx, o.RestaurantID, ownerID)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	if !owned {
		return nil, apperr.Forbidden("order does not belong to your restaurant")
	}

	if !s.Policy.Allows(o.Status, status) {
		return nil, apperr.InvalidArgument(fmt.Sprintf("cannot move order from %s to %s", o.Status, status))
	}

	updated, err := s.Orders.UpdateOrderStatus(ctx, o.ID, status)
	if err != nil {
		return nil, storeErr(err, "order not found")
	}
	return updated, nil
}
