package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

var _ port.Repository = (*Repository)(nil)

// Repository keeps everything in process memory. All ledger work runs under
// one mutex, so a LedgerTx sees no interleaving writes.
type Repository struct {
	mu            sync.Mutex
	orders        map[string]*domain.Order
	numbers       map[string]string
	vendors       map[string]*domain.Vendor
	transactions  map[string]*domain.WalletTransaction
	txOrder       []string
	notifications map[string]*domain.Notification
	notifyOrder   []string
}

func NewRepository() *Repository {
	return &Repository{
		orders:        make(map[string]*domain.Order),
		numbers:       make(map[string]string),
		vendors:       make(map[string]*domain.Vendor),
		transactions:  make(map[string]*domain.WalletTransaction),
		notifications: make(map[string]*domain.Notification),
	}
}

func copyOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = make([]*domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		i := *item
		c.Items = append(c.Items, &i)
	}
	return &c
}

func copyVendor(v *domain.Vendor) *domain.Vendor {
	c := *v
	return &c
}

func copyTransaction(t *domain.WalletTransaction) *domain.WalletTransaction {
	c := *t
	return &c
}

func copyNotification(n *domain.Notification) *domain.Notification {
	c := *n
	if n.DispatchedAt != nil {
		at := *n.DispatchedAt
		c.DispatchedAt = &at
	}
	return &c
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order,
	entries []*domain.WalletTransaction) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	if _, ok := r.numbers[order.Number]; ok {
		return nil, domain.ErrConflictingData
	}

	credits := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		v, ok := r.vendors[e.VendorID]
		if !ok {
			return nil, domain.ErrDataNotFound
		}
		if _, ok := r.transactions[e.ID]; ok {
			return nil, domain.ErrConflictingData
		}
		cur, ok := credits[e.VendorID]
		if !ok {
			cur = v.PendingBalance
		}
		sum, err := cur.Add(e.Amount)
		if err != nil {
			return nil, err
		}
		credits[e.VendorID] = sum
	}

	for vendorID, pending := range credits {
		r.vendors[vendorID].PendingBalance = pending
	}
	for _, e := range entries {
		r.transactions[e.ID] = copyTransaction(e)
		r.txOrder = append(r.txOrder, e.ID)
	}
	r.orders[order.ID] = copyOrder(order)
	r.numbers[order.Number] = order.ID

	return copyOrder(order), nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return copyOrder(o), nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID string,
	from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	if o.Status != from {
		return nil, domain.ErrConflictingData
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	return copyOrder(o), nil
}

func (r *Repository) CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vendors[vendor.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	r.vendors[vendor.ID] = copyVendor(vendor)
	return copyVendor(vendor), nil
}

func (r *Repository) ReadVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vendors[vendorID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return copyVendor(v), nil
}

func (r *Repository) FindPendingByOrder(ctx context.Context, orderID string) ([]*domain.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.WalletTransaction, 0)
	for _, id := range r.txOrder {
		t := r.transactions[id]
		if t.ReferenceID == orderID && t.Status == domain.TransactionStatusPending {
			list = append(list, copyTransaction(t))
		}
	}
	return list, nil
}

func (r *Repository) ListTransactionsByVendor(ctx context.Context, vendorID string) ([]*domain.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.WalletTransaction, 0)
	for _, id := range r.txOrder {
		t := r.transactions[id]
		if t.VendorID == vendorID {
			list = append(list, copyTransaction(t))
		}
	}
	return list, nil
}

// WithinLedgerTx runs fn under the repository lock and reverts every change
// fn made when it returns an error.
func (r *Repository) WithinLedgerTx(ctx context.Context, fn port.LedgerTxFn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &ledgerTx{repo: r}
	err := fn(tx)
	if err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

type ledgerTx struct {
	repo *Repository
	undo []func()
}

func (tx *ledgerTx) MarkCompleted(ctx context.Context, transactionID string) (bool, error) {
	t, ok := tx.repo.transactions[transactionID]
	if !ok || t.Status != domain.TransactionStatusPending {
		return false, nil
	}

	prevStatus, prevUpdated := t.Status, t.UpdatedAt
	t.Status = domain.TransactionStatusCompleted
	t.UpdatedAt = time.Now()
	tx.undo = append(tx.undo, func() {
		t.Status = prevStatus
		t.UpdatedAt = prevUpdated
	})
	return true, nil
}

func (tx *ledgerTx) AdjustBalances(ctx context.Context, vendorID string,
	deltaPending decimal.Decimal, deltaWallet decimal.Decimal) (*domain.Vendor, error) {
	v, ok := tx.repo.vendors[vendorID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	pending, err := v.PendingBalance.Add(deltaPending)
	if err != nil {
		return nil, err
	}
	wallet, err := v.WalletBalance.Add(deltaWallet)
	if err != nil {
		return nil, err
	}
	if pending.Sign() < 0 || wallet.Sign() < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	prev := *v
	v.PendingBalance = pending
	v.WalletBalance = wallet
	tx.undo = append(tx.undo, func() {
		v.PendingBalance = prev.PendingBalance
		v.WalletBalance = prev.WalletBalance
	})
	return copyVendor(v), nil
}

func (r *Repository) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := copyNotification(n)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if _, ok := r.notifications[c.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	r.notifications[c.ID] = c
	r.notifyOrder = append(r.notifyOrder, c.ID)
	return copyNotification(c), nil
}

func (r *Repository) ReadNotification(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return copyNotification(n), nil
}

func (r *Repository) ListUndispatchedNotifications(ctx context.Context, maxAttempts int, limit int) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.Notification, 0)
	for _, id := range r.notifyOrder {
		n := r.notifications[id]
		if n.DispatchedAt != nil || (maxAttempts > 0 && n.Attempts >= maxAttempts) {
			continue
		}
		list = append(list, copyNotification(n))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *Repository) MarkNotificationDispatched(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return domain.ErrDataNotFound
	}
	n.DispatchedAt = &at
	n.LastError = ""
	return nil
}

func (r *Repository) RecordNotificationAttempt(ctx context.Context, id string, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return domain.ErrDataNotFound
	}
	n.Attempts++
	n.LastError = lastError
	return nil
}
