package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (s *Service) CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	if vendor.UserID == "" {
		return nil, domain.ErrBadRequest
	}
	if vendor.ID == "" {
		vendor.ID = uuid.NewString()
	}
	vendor.WalletBalance = decimal.Zero
	vendor.PendingBalance = decimal.Zero

	newVendor, err := s.repo.CreateVendor(ctx, vendor)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create vendor", zap.Error(err))
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return newVendor, nil
}

func (s *Service) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.repo.ReadVendor(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read vendor", zap.String("vendor", vendorID), zap.Error(err))
		return nil, fmt.Errorf("read vendor: %w", err)
	}
	return vendor, nil
}

func (s *Service) GetVendorTransactions(ctx context.Context, vendorID string) ([]*domain.WalletTransaction, error) {
	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListTransactionsByVendor(ctx, vendorID)
	if err != nil {
		s.logger.Error("List vendor transactions", zap.String("vendor", vendorID), zap.Error(err))
		return nil, fmt.Errorf("list vendor transactions: %w", err)
	}
	return list, nil
}
