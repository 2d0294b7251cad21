package port

import (
	"context"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order, entries []*domain.WalletTransaction) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string,
		from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error)

	// Vendor
	CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	ReadVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// Ledger
	FindPendingByOrder(ctx context.Context, orderID string) ([]*domain.WalletTransaction, error)
	ListTransactionsByVendor(ctx context.Context, vendorID string) ([]*domain.WalletTransaction, error)
	WithinLedgerTx(ctx context.Context, fn LedgerTxFn) error

	// Notification
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ReadNotification(ctx context.Context, id string) (*domain.Notification, error)
	// ListUndispatchedNotifications skips notifications with maxAttempts or
	// more failed attempts; maxAttempts <= 0 means no cap.
	ListUndispatchedNotifications(ctx context.Context, maxAttempts int, limit int) ([]*domain.Notification, error)
	MarkNotificationDispatched(ctx context.Context, id string, at time.Time) error
	RecordNotificationAttempt(ctx context.Context, id string, lastError string) error
}

// LedgerTx is a unit of work over wallet transactions and vendor balances.
// Everything done through it commits together or not at all.
type LedgerTx interface {
	// MarkCompleted moves a transaction from PENDING to COMPLETED and reports
	// false when the transaction was not PENDING.
	MarkCompleted(ctx context.Context, transactionID string) (bool, error)
	// AdjustBalances adds both deltas to the vendor's balances in one step.
	AdjustBalances(ctx context.Context, vendorID string,
		deltaPending decimal.Decimal, deltaWallet decimal.Decimal) (*domain.Vendor, error)
}

type LedgerTxFn func(tx LedgerTx) error
