package domain

import "github.com/govalues/decimal"

type Vendor struct {
	ID             string
	UserID         string
	Name           string
	WalletBalance  decimal.Decimal
	PendingBalance decimal.Decimal
}
