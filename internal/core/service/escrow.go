package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"go.uber.org/zap"
)

func escrowLockKey(orderID string) string {
	return "escrow:order:" + orderID
}

// ReleaseForOrder moves the pending funds of every vendor on the order to
// their wallet balances. Entries are released one by one; a failed entry is
// reported in its outcome and does not stop the rest.
func (s *Service) ReleaseForOrder(ctx context.Context, orderID string) (*domain.ReleaseReport, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, escrowLockKey(order.ID))
	if err != nil {
		s.logger.Error("Lock order for release", zap.String("order", order.ID), zap.Error(err))
		return nil, fmt.Errorf("lock order %s: %w", order.ID, err)
	}
	defer unlock()

	entries, err := s.repo.FindPendingByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("Find pending transactions", zap.String("order", order.ID), zap.Error(err))
		return nil, fmt.Errorf("find pending transactions: %w", err)
	}

	report := &domain.ReleaseReport{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Outcomes:    make([]domain.ReleaseOutcome, 0, len(entries)),
	}
	for _, entry := range entries {
		report.Outcomes = append(report.Outcomes, s.releaseEntry(ctx, order, entry))
	}

	s.logger.Debug("Escrow release finished",
		zap.String("order", order.Number),
		zap.Int("entries", len(entries)))

	return report, nil
}

func (s *Service) releaseEntry(ctx context.Context, order *domain.Order,
	entry *domain.WalletTransaction) domain.ReleaseOutcome {
	outcome := domain.ReleaseOutcome{
		TransactionID: entry.ID,
		VendorID:      entry.VendorID,
		Amount:        entry.Amount,
		Status:        domain.ReleaseStatusFailed,
	}
	log := s.logger.With(
		zap.String("order", order.Number),
		zap.String("transaction", entry.ID),
		zap.String("vendor", entry.VendorID))

	if entry.Amount.Sign() < 0 {
		log.Error("Negative wallet transaction amount", zap.String("amount", entry.Amount.String()))
		outcome.Err = domain.ErrInvalidAmount
		return outcome
	}

	var vendor *domain.Vendor
	err := s.repo.WithinLedgerTx(ctx, func(tx port.LedgerTx) error {
		ok, err := tx.MarkCompleted(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		if !ok {
			return domain.ErrAlreadyReleased
		}

		vendor, err = tx.AdjustBalances(ctx, entry.VendorID, entry.Amount.Neg(), entry.Amount)
		if err != nil {
			return fmt.Errorf("adjust balances: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReleased) {
			log.Debug("Wallet transaction released concurrently")
			outcome.Status = domain.ReleaseStatusSkipped
			return outcome
		}
		log.Error("Release wallet transaction", zap.Error(err))
		outcome.Err = err
		return outcome
	}

	outcome.Status = domain.ReleaseStatusReleased
	log.Info("Funds released", zap.String("amount", entry.Amount.String()))

	n := domain.ReleaseNotification(order.Number, vendor.UserID, entry.Amount)
	if err := s.notifier.Notify(ctx, n); err != nil {
		log.Error("Notify vendor", zap.String("user", vendor.UserID), zap.Error(err))
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrNotification, err)
		return outcome
	}
	outcome.Notified = true

	return outcome
}
