package domain_test

import (
	"testing"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
		want bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusProcessing, true},
		{domain.OrderStatusPending, domain.OrderStatusDelivered, false},
		{domain.OrderStatusProcessing, domain.OrderStatusShipped, true},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled, false},
		{domain.OrderStatusDelivered, domain.OrderStatusPending, false},
		{domain.OrderStatusDelivered, domain.OrderStatusRefunded, true},
		{domain.OrderStatusDelivered, domain.OrderStatusDelivered, false},
		{domain.OrderStatusCancelled, domain.OrderStatusRefunded, true},
		{domain.OrderStatusRefunded, domain.OrderStatusPending, false},
	}

	for _, test := range tests {
		t.Run(string(test.from)+"->"+string(test.to), func(t *testing.T) {
			assert.Equal(t, test.want, test.from.CanTransition(test.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, err := domain.ParseOrderStatus("Delivered")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, s)

	s, err = domain.ParseOrderStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, s)

	_, err = domain.ParseOrderStatus("LOST")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = domain.ParseOrderStatus("")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrder_VendorTotals(t *testing.T) {
	order := domain.Order{Items: []*domain.OrderItem{
		{VendorID: "V1", LineTotal: decimal.MustParse("40.00")},
		{VendorID: "V2", LineTotal: decimal.MustParse("250.50")},
		{VendorID: "V1", LineTotal: decimal.MustParse("60.00")},
	}}

	vendors, totals, err := order.VendorTotals()
	require.NoError(t, err)
	assert.Equal(t, []string{"V1", "V2"}, vendors)
	assert.Equal(t, "100.00", totals["V1"].String())
	assert.Equal(t, "250.50", totals["V2"].String())
}
