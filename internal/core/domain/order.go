package domain

import (
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// orderTransitions lists the statuses reachable from each status.
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusProcessing: true, OrderStatusCancelled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {OrderStatusRefunded: true},
	OrderStatusCancelled:  {OrderStatusRefunded: true},
	OrderStatusRefunded:   {},
}

// ParseOrderStatus accepts any letter case, so "Delivered" and "DELIVERED" are equal.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order in status s may be moved to next.
// Staying in the same status is not a transition and reports false.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return orderTransitions[s][next]
}

type Order struct {
	ID        string
	Number    string
	Status    OrderStatus
	Items     []*OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	VendorID  string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// VendorTotals sums line totals per vendor, in order of first appearance.
func (o *Order) VendorTotals() ([]string, map[string]decimal.Decimal, error) {
	vendors := make([]string, 0)
	totals := make(map[string]decimal.Decimal)
	for _, item := range o.Items {
		cur, ok := totals[item.VendorID]
		if !ok {
			vendors = append(vendors, item.VendorID)
			cur = decimal.Zero
		}
		sum, err := cur.Add(item.LineTotal)
		if err != nil {
			return nil, nil, err
		}
		totals[item.VendorID] = sum
	}
	return vendors, totals, nil
}
