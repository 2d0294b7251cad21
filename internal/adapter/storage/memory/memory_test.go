package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*Repository, *domain.Order) {
	t.Helper()
	ctx := context.Background()
	r := NewRepository()
	_, err := r.CreateVendor(ctx, &domain.Vendor{ID: "v1", UserID: "u1", WalletBalance: decimal.Zero, PendingBalance: decimal.Zero})
	require.NoError(t, err)

	order := &domain.Order{
		ID:     "o1",
		Number: "ORD-1",
		Status: domain.OrderStatusPending,
		Items: []*domain.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", VendorID: "v1", Quantity: 1,
				UnitPrice: decimal.MustParse("4.00"), LineTotal: decimal.MustParse("4.00")},
		},
	}
	_, err = r.CreateOrder(ctx, order, []*domain.WalletTransaction{
		{ID: "t1", VendorID: "v1", ReferenceID: "o1", Amount: decimal.MustParse("4.00"), Status: domain.TransactionStatusPending},
	})
	require.NoError(t, err)
	return r, order
}

func TestRepository_CreateOrder(t *testing.T) {
	r, order := seed(t)
	ctx := context.Background()

	v, err := r.ReadVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "4.00", v.PendingBalance.String())

	_, err = r.CreateOrder(ctx, &domain.Order{ID: "o2", Number: order.Number}, nil)
	assert.ErrorIs(t, err, domain.ErrConflictingData)

	_, err = r.CreateOrder(ctx, &domain.Order{ID: "o3", Number: "ORD-3"}, []*domain.WalletTransaction{
		{ID: "t3", VendorID: "nobody", ReferenceID: "o3", Amount: decimal.MustParse("1.00")},
	})
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
	_, err = r.ReadOrder(ctx, "o3")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)

	// returned orders are copies
	read, err := r.ReadOrder(ctx, "o1")
	require.NoError(t, err)
	read.Items[0].Quantity = 100
	again, err := r.ReadOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestRepository_UpdateOrderStatus(t *testing.T) {
	r, _ := seed(t)
	ctx := context.Background()

	o, err := r.UpdateOrderStatus(ctx, "o1", domain.OrderStatusPending, domain.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, o.Status)

	_, err = r.UpdateOrderStatus(ctx, "o1", domain.OrderStatusPending, domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrConflictingData)

	_, err = r.UpdateOrderStatus(ctx, "missing", domain.OrderStatusPending, domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestRepository_LedgerTxRollback(t *testing.T) {
	r, _ := seed(t)
	ctx := context.Background()
	errStop := errors.New("stop")

	err := r.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		ok, err := tx.MarkCompleted(ctx, "t1")
		require.NoError(t, err)
		require.True(t, ok)
		_, err = tx.AdjustBalances(ctx, "v1", decimal.MustParse("-4.00"), decimal.MustParse("4.00"))
		require.NoError(t, err)
		return errStop
	})
	assert.ErrorIs(t, err, errStop)

	v, err := r.ReadVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "4.00", v.PendingBalance.String())
	assert.Equal(t, "0", v.WalletBalance.String())

	pending, err := r.FindPendingByOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestRepository_LedgerTx(t *testing.T) {
	r, _ := seed(t)
	ctx := context.Background()

	err := r.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		_, err := tx.AdjustBalances(ctx, "v1", decimal.MustParse("-5.00"), decimal.MustParse("5.00"))
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = r.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		ok, err := tx.MarkCompleted(ctx, "t1")
		if err != nil || !ok {
			return domain.ErrAlreadyReleased
		}
		_, err = tx.AdjustBalances(ctx, "v1", decimal.MustParse("-4.00"), decimal.MustParse("4.00"))
		return err
	})
	require.NoError(t, err)

	err = r.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		ok, err := tx.MarkCompleted(ctx, "t1")
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)

	list, err := r.ListTransactionsByVendor(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.TransactionStatusCompleted, list[0].Status)

	v, err := r.ReadVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "4.00", v.WalletBalance.String())
	assert.Equal(t, "0.00", v.PendingBalance.String())
}

func TestRepository_Notifications(t *testing.T) {
	r := NewRepository()
	ctx := context.Background()

	first, err := r.CreateNotification(ctx, &domain.Notification{UserID: "u1", Title: "a",
		CreatedAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	second, err := r.CreateNotification(ctx, &domain.Notification{UserID: "u1", Title: "b"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, r.RecordNotificationAttempt(ctx, first.ID, "boom"))
	n, err := r.ReadNotification(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Attempts)
	assert.Equal(t, "boom", n.LastError)

	list, err := r.ListUndispatchedNotifications(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	require.NoError(t, r.MarkNotificationDispatched(ctx, first.ID, time.Now()))
	list, err = r.ListUndispatchedNotifications(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	assert.ErrorIs(t, r.MarkNotificationDispatched(ctx, "missing", time.Now()), domain.ErrDataNotFound)

	// attempts cap
	require.NoError(t, r.RecordNotificationAttempt(ctx, second.ID, "boom"))
	list, err = r.ListUndispatchedNotifications(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = r.ListUndispatchedNotifications(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
