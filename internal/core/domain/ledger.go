package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// MoneyScale is the number of decimal places kept for amounts and balances.
const MoneyScale = 2

// ValidAmount reports whether a is positive and has no fraction below
// MoneyScale, i.e. it is stored without rounding.
func ValidAmount(a decimal.Decimal) bool {
	return a.Sign() > 0 && a.Trim(0).Scale() <= MoneyScale
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// WalletTransaction is one ledger entry: the earnings of one vendor from one order.
type WalletTransaction struct {
	ID          string
	VendorID    string
	ReferenceID string
	Amount      decimal.Decimal
	Status      TransactionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
