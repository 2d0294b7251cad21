package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MikeRez0/ypmarket/internal/adapter/lock"
	"github.com/MikeRez0/ypmarket/internal/adapter/storage/memory"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/MikeRez0/ypmarket/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*domain.Notification
	err  error
}

func (r *recordingNotifier) Notify(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		list = append(list, n.UserID+": "+n.Message)
	}
	return list
}

// faultyRepo fails balance adjustments of one vendor.
type faultyRepo struct {
	*memory.Repository
	failVendor string
}

func (r *faultyRepo) WithinLedgerTx(ctx context.Context, fn port.LedgerTxFn) error {
	return r.Repository.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		return fn(&faultyTx{LedgerTx: tx, failVendor: r.failVendor})
	})
}

type faultyTx struct {
	port.LedgerTx
	failVendor string
}

var errWrite = errors.New("write failed")

func (tx *faultyTx) AdjustBalances(ctx context.Context, vendorID string,
	deltaPending decimal.Decimal, deltaWallet decimal.Decimal) (*domain.Vendor, error) {
	if vendorID == tx.failVendor {
		return nil, errWrite
	}
	return tx.LedgerTx.AdjustBalances(ctx, vendorID, deltaPending, deltaWallet)
}

type fixture struct {
	repo     *memory.Repository
	notifier *recordingNotifier
	svc      *service.Service
}

func newFixture(t *testing.T, wrap func(*memory.Repository) port.Repository) *fixture {
	t.Helper()
	repo := memory.NewRepository()
	var r port.Repository = repo
	if wrap != nil {
		r = wrap(repo)
	}
	notifier := &recordingNotifier{}
	svc, err := service.NewService(r, notifier, lock.NewLocalLocker(), zap.NewNop())
	require.NoError(t, err)
	return &fixture{repo: repo, notifier: notifier, svc: svc}
}

func (f *fixture) vendor(t *testing.T, id string, wallet string) {
	t.Helper()
	_, err := f.repo.CreateVendor(context.Background(), &domain.Vendor{
		ID:             id,
		UserID:         "user-" + id,
		Name:           id,
		WalletBalance:  decimal.MustParse(wallet),
		PendingBalance: decimal.Zero,
	})
	require.NoError(t, err)
}

func (f *fixture) order(t *testing.T, number string, items ...*domain.OrderItem) *domain.Order {
	t.Helper()
	order, err := f.svc.PlaceOrder(context.Background(), &domain.Order{Number: number, Items: items})
	require.NoError(t, err)
	return order
}

func (f *fixture) advance(t *testing.T, orderID string, statuses ...domain.OrderStatus) *domain.ReleaseReport {
	t.Helper()
	var report *domain.ReleaseReport
	for _, s := range statuses {
		var err error
		_, report, err = f.svc.SetStatus(context.Background(), orderID, s)
		require.NoError(t, err)
	}
	return report
}

func (f *fixture) balances(t *testing.T, vendorID string) (string, string) {
	t.Helper()
	v, err := f.repo.ReadVendor(context.Background(), vendorID)
	require.NoError(t, err)
	return v.WalletBalance.String(), v.PendingBalance.String()
}

func item(vendor string, qty int, price string) *domain.OrderItem {
	return &domain.OrderItem{
		ProductID: "product-" + vendor,
		VendorID:  vendor,
		Quantity:  qty,
		UnitPrice: decimal.MustParse(price),
	}
}

var toDelivered = []domain.OrderStatus{
	domain.OrderStatusProcessing,
	domain.OrderStatusShipped,
	domain.OrderStatusDelivered,
}

func TestEscrow_DeliveredReleasesEveryVendor(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "0")
	f.vendor(t, "V2", "900.00")

	order := f.order(t, "ORD-1001", item("V1", 1, "100.00"), item("V2", 2, "125.25"))

	wallet, pending := f.balances(t, "V2")
	assert.Equal(t, "900.00", wallet)
	assert.Equal(t, "250.50", pending)

	report := f.advance(t, order.ID, toDelivered...)
	require.NotNil(t, report)
	assert.NoError(t, report.Err())
	released, err := report.Released()
	require.NoError(t, err)
	assert.Equal(t, "350.50", released.String())

	wallet, pending = f.balances(t, "V1")
	assert.Equal(t, "100.00", wallet)
	assert.Equal(t, "0.00", pending)
	wallet, pending = f.balances(t, "V2")
	assert.Equal(t, "1150.50", wallet)
	assert.Equal(t, "0.00", pending)

	assert.ElementsMatch(t, []string{
		"user-V1: Order #ORD-1001 delivered. 100.00 has been added to your available balance.",
		"user-V2: Order #ORD-1001 delivered. 250.50 has been added to your available balance.",
	}, f.notifier.messages())

	pendingEntries, err := f.repo.FindPendingByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, pendingEntries)
}

func TestEscrow_RepeatedDeliveryIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "0")
	order := f.order(t, "ORD-1002", item("V1", 3, "10.00"))
	f.advance(t, order.ID, toDelivered...)

	report := f.advance(t, order.ID, domain.OrderStatusDelivered)
	require.NotNil(t, report)
	assert.Empty(t, report.Outcomes)

	report, err := f.svc.ReleaseForOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)

	wallet, pending := f.balances(t, "V1")
	assert.Equal(t, "30.00", wallet)
	assert.Equal(t, "0.00", pending)
	assert.Len(t, f.notifier.messages(), 1)
}

func TestEscrow_ConcurrentReleaseOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "0")
	order := f.order(t, "ORD-1003", item("V1", 1, "50.00"))
	f.advance(t, order.ID, domain.OrderStatusProcessing, domain.OrderStatusShipped)

	const callers = 16
	var wg sync.WaitGroup
	reports := make([]*domain.ReleaseReport, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, reports[i], errs[i] = f.svc.SetStatus(context.Background(), order.ID, domain.OrderStatusDelivered)
				return
			}
			reports[i], errs[i] = f.svc.ReleaseForOrder(context.Background(), order.ID)
		}()
	}
	wg.Wait()

	total := decimal.Zero
	for i := range callers {
		if errs[i] != nil {
			// losing the status race is the only acceptable failure
			assert.ErrorIs(t, errs[i], domain.ErrConflictingData)
			continue
		}
		if reports[i] == nil {
			continue
		}
		released, err := reports[i].Released()
		require.NoError(t, err)
		total, err = total.Add(released)
		require.NoError(t, err)
	}
	assert.Equal(t, "50.00", total.String())

	wallet, pending := f.balances(t, "V1")
	assert.Equal(t, "50.00", wallet)
	assert.Equal(t, "0.00", pending)
	assert.Len(t, f.notifier.messages(), 1)
}

func TestEscrow_FailedEntryDoesNotBlockOthers(t *testing.T) {
	var faulty *faultyRepo
	f := newFixture(t, func(r *memory.Repository) port.Repository {
		faulty = &faultyRepo{Repository: r, failVendor: "V2"}
		return faulty
	})
	f.vendor(t, "V1", "0")
	f.vendor(t, "V2", "5.00")
	order := f.order(t, "ORD-1004", item("V1", 1, "12.00"), item("V2", 1, "8.00"))

	report := f.advance(t, order.ID, toDelivered...)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, domain.ReleaseStatusReleased, report.Outcomes[0].Status)
	assert.Equal(t, domain.ReleaseStatusFailed, report.Outcomes[1].Status)
	assert.ErrorIs(t, report.Err(), errWrite)

	// the failed entry is rolled back and stays pending
	wallet, pending := f.balances(t, "V2")
	assert.Equal(t, "5.00", wallet)
	assert.Equal(t, "8.00", pending)
	wallet, pending = f.balances(t, "V1")
	assert.Equal(t, "12.00", wallet)
	assert.Equal(t, "0.00", pending)

	faulty.failVendor = ""
	report = f.advance(t, order.ID, domain.OrderStatusDelivered)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, "V2", report.Outcomes[0].VendorID)
	assert.Equal(t, domain.ReleaseStatusReleased, report.Outcomes[0].Status)

	wallet, pending = f.balances(t, "V2")
	assert.Equal(t, "13.00", wallet)
	assert.Equal(t, "0.00", pending)
	wallet, _ = f.balances(t, "V1")
	assert.Equal(t, "12.00", wallet)
	assert.Len(t, f.notifier.messages(), 2)
}

func TestEscrow_NotificationFailureKeepsRelease(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "0")
	f.notifier.err = errors.New("sink down")
	order := f.order(t, "ORD-1005", item("V1", 1, "7.25"))

	report := f.advance(t, order.ID, toDelivered...)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ReleaseStatusReleased, report.Outcomes[0].Status)
	assert.False(t, report.Outcomes[0].Notified)
	assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrNotification)
	assert.NoError(t, report.Err())

	wallet, pending := f.balances(t, "V1")
	assert.Equal(t, "7.25", wallet)
	assert.Equal(t, "0.00", pending)
}

func TestEscrow_ConservesTotals(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "1.00")
	f.vendor(t, "V2", "0")
	f.vendor(t, "V3", "0")

	orders := []*domain.Order{
		f.order(t, "", item("V1", 1, "3.10"), item("V2", 4, "0.25")),
		f.order(t, "", item("V2", 1, "9.99"), item("V3", 2, "4.50")),
		f.order(t, "", item("V1", 2, "1.05"), item("V3", 1, "0.01")),
	}

	sum := func() string {
		total := decimal.Zero
		for _, id := range []string{"V1", "V2", "V3"} {
			v, err := f.repo.ReadVendor(context.Background(), id)
			require.NoError(t, err)
			total, err = total.Add(v.WalletBalance)
			require.NoError(t, err)
			total, err = total.Add(v.PendingBalance)
			require.NoError(t, err)
		}
		return total.String()
	}

	before := sum()
	f.advance(t, orders[0].ID, toDelivered...)
	f.advance(t, orders[1].ID, domain.OrderStatusCancelled)
	f.advance(t, orders[2].ID, toDelivered...)
	assert.Equal(t, before, sum())

	// the cancelled order keeps its funds pending
	wallet, pending := f.balances(t, "V3")
	assert.Equal(t, "0.01", wallet)
	assert.Equal(t, "9.00", pending)
}

func TestEscrow_IllegalTransitionLeavesFunds(t *testing.T) {
	f := newFixture(t, nil)
	f.vendor(t, "V1", "0")
	order := f.order(t, "ORD-1006", item("V1", 1, "2.00"))

	_, report, err := f.svc.SetStatus(context.Background(), order.ID, domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Nil(t, report)

	stored, err := f.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
	wallet, pending := f.balances(t, "V1")
	assert.Equal(t, "0", wallet)
	assert.Equal(t, "2.00", pending)
}
