package domain

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

type ReleaseStatus string

const (
	// ReleaseStatusReleased: funds moved from pending to wallet balance.
	ReleaseStatusReleased ReleaseStatus = "RELEASED"
	// ReleaseStatusSkipped: the entry was completed by a concurrent release.
	ReleaseStatusSkipped ReleaseStatus = "SKIPPED"
	// ReleaseStatusFailed: nothing was written for the entry.
	ReleaseStatusFailed ReleaseStatus = "FAILED"
)

// ReleaseOutcome is the result of releasing a single ledger entry.
type ReleaseOutcome struct {
	TransactionID string
	VendorID      string
	Amount        decimal.Decimal
	Status        ReleaseStatus
	Notified      bool
	Err           error
}

type ReleaseReport struct {
	OrderID     string
	OrderNumber string
	Outcomes    []ReleaseOutcome
}

// Released returns the total amount moved to wallet balances.
func (r *ReleaseReport) Released() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range r.Outcomes {
		if o.Status != ReleaseStatusReleased {
			continue
		}
		sum, err := total.Add(o.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		total = sum
	}
	return total, nil
}

// Err joins the errors of all failed entries. Notification errors on
// released entries are not included.
func (r *ReleaseReport) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Status == ReleaseStatusFailed {
			errs = append(errs, fmt.Errorf("transaction %s: %w", o.TransactionID, o.Err))
		}
	}
	return errors.Join(errs...)
}

// Message for the vendor's owning user once an entry is released.
func ReleaseNotification(orderNumber string, userID string, amount decimal.Decimal) *Notification {
	return &Notification{
		UserID:  userID,
		Title:   "Funds released",
		Message: fmt.Sprintf("Order #%s delivered. %s has been added to your available balance.", orderNumber, amount.String()),
		Type:    NotificationTypeWallet,
		Link:    "/vendor/wallet",
	}
}
