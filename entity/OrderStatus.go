package entity

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "placed"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusInProgress     OrderStatus = "inProgress"
	OrderStatusOutForDelivery OrderStatus = "outForDelivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// StatusOption is one entry of the status configuration the owner UI renders.
type StatusOption struct {
	Value         OrderStatus `json:"value"`
	Label         string      `json:"label"`
	ProgressValue int         `json:"progressValue"`
}

// lifecycle order, Placed first, Delivered last
var orderStatuses = []StatusOption{
	{Value: OrderStatusPlaced, Label: "Placed", ProgressValue: 0},
	{Value: OrderStatusPaid, Label: "Awaiting Restaurant Confirmation", ProgressValue: 25},
	{Value: OrderStatusInProgress, Label: "In Progress", ProgressValue: 50},
	{Value: OrderStatusOutForDelivery, Label: "Out for Delivery", ProgressValue: 75},
	{Value: OrderStatusDelivered, Label: "Delivered", ProgressValue: 100},
}

// OrderStatuses returns a copy of the status configuration in lifecycle order.
func OrderStatuses() []StatusOption {
	out := make([]StatusOption, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// ParseOrderStatus matches the exact wire value.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, o := range orderStatuses {
		if string(o.Value) == s {
			return o.Value, true
		}
	}
	return "", false
}

func (s OrderStatus) Valid() bool {
	_, ok := ParseOrderStatus(string(s))
	return ok
}

// Rank is the position in the lifecycle, -1 for values outside the set.
func (s OrderStatus) Rank() int {
	for i, o := range orderStatuses {
		if o.Value == s {
			return i
		}
	}
	return -1
}

// Option returns the display configuration for s.
func (s OrderStatus) Option() (StatusOption, bool) {
	if i := s.Rank(); i >= 0 {
		return orderStatuses[i], true
	}
	return StatusOption{}, false
}
