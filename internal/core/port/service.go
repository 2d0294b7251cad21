package port

import (
	"context"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
)

type Service interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, *domain.ReleaseReport, error)
	ReleaseForOrder(ctx context.Context, orderID string) (*domain.ReleaseReport, error)

	CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	GetVendorTransactions(ctx context.Context, vendorID string) ([]*domain.WalletTransaction, error)
}
