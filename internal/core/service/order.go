package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// PlaceOrder stores a new order and holds each vendor's share of it as a
// pending wallet transaction.
func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if len(order.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Number == "" {
		order.Number = newOrderNumber()
	}

	for _, item := range order.Items {
		if item.VendorID == "" || item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}
		if !domain.ValidAmount(item.UnitPrice) {
			return nil, domain.ErrInvalidAmount
		}
		item.UnitPrice = item.UnitPrice.Trim(domain.MoneyScale)
		total, err := item.UnitPrice.Mul(decimal.MustNew(int64(item.Quantity), 0))
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		item.ID = uuid.NewString()
		item.OrderID = order.ID
		item.LineTotal = total
	}

	now := time.Now()
	order.Status = domain.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	vendors, totals, err := order.VendorTotals()
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}
	entries := make([]*domain.WalletTransaction, 0, len(vendors))
	for _, vendorID := range vendors {
		entries = append(entries, &domain.WalletTransaction{
			ID:          uuid.NewString(),
			VendorID:    vendorID,
			ReferenceID: order.ID,
			Amount:      totals[vendorID],
			Status:      domain.TransactionStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	newOrder, err := s.repo.CreateOrder(ctx, order, entries)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) || errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create order", zap.String("order", order.Number), zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, domain.ErrBadRequest
	}
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, fmt.Errorf("read order: %w", err)
	}
	return order, nil
}

// SetStatus moves an order along its fulfillment lifecycle. Reaching
// DELIVERED releases the order's escrowed funds before returning; repeating
// DELIVERED only releases entries that are still pending.
func (s *Service) SetStatus(ctx context.Context, orderID string,
	status domain.OrderStatus) (*domain.Order, *domain.ReleaseReport, error) {
	if orderID == "" {
		return nil, nil, domain.ErrBadRequest
	}
	if !status.Valid() {
		return nil, nil, domain.ErrInvalidStatus
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if order.Status != status {
		if !order.Status.CanTransition(status) {
			return nil, nil, domain.ErrIllegalTransition
		}

		order, err = s.repo.UpdateOrderStatus(ctx, orderID, order.Status, status)
		if err != nil {
			if errors.Is(err, domain.ErrConflictingData) || errors.Is(err, domain.ErrDataNotFound) {
				return nil, nil, err
			}
			s.logger.Error("Update order status", zap.String("order", orderID), zap.Error(err))
			return nil, nil, fmt.Errorf("update order status: %w", err)
		}
		s.logger.Info("Order status changed",
			zap.String("order", order.Number), zap.String("status", string(status)))
	}

	if status != domain.OrderStatusDelivered {
		return order, nil, nil
	}

	report, err := s.ReleaseForOrder(ctx, order.ID)
	if err != nil {
		return order, nil, err
	}

	return order, report, nil
}

func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(id[:10])
}
