package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VendorHandler struct {
	Handler
	service port.Service
}

func NewVendorHandler(service port.Service, logger *zap.Logger) (*VendorHandler, error) {
	return &VendorHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type vendorRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name"`
}

type balanceResponse struct {
	VendorID       string      `json:"vendorId"`
	WalletBalance  jsonDecimal `json:"walletBalance"`
	PendingBalance jsonDecimal `json:"pendingBalance"`
}

func newBalanceResponse(v *domain.Vendor) balanceResponse {
	return balanceResponse{
		VendorID:       v.ID,
		WalletBalance:  jsonDecimal(v.WalletBalance),
		PendingBalance: jsonDecimal(v.PendingBalance),
	}
}

func (vh *VendorHandler) CreateVendor(ctx *gin.Context) {
	req := vendorRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		vh.handleValidationError(ctx, err)
		return
	}

	vendor, err := vh.service.CreateVendor(ctx.Request.Context(), &domain.Vendor{UserID: req.UserID, Name: req.Name})
	if err != nil {
		vh.handleError(ctx, err)
		return
	}
	vh.handleSuccessWithStatus(ctx, newBalanceResponse(vendor), http.StatusCreated)
}

// vendorForCaller loads the vendor and checks that the caller is an admin
// or the vendor's owner.
func (vh *VendorHandler) vendorForCaller(ctx *gin.Context) (*domain.Vendor, bool) {
	vendor, err := vh.service.GetVendor(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		vh.handleError(ctx, err)
		return nil, false
	}

	payload := getAuthPayload(ctx)
	if payload.Role != domain.RoleAdmin && payload.UserID != vendor.UserID {
		vh.handleError(ctx, domain.ErrForbidden)
		return nil, false
	}
	return vendor, true
}

func (vh *VendorHandler) Balance(ctx *gin.Context) {
	vendor, ok := vh.vendorForCaller(ctx)
	if !ok {
		return
	}
	vh.handleSuccess(ctx, newBalanceResponse(vendor))
}

type transactionResponse struct {
	ID          string      `json:"id"`
	ReferenceID string      `json:"referenceId"`
	Amount      jsonDecimal `json:"amount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (vh *VendorHandler) Transactions(ctx *gin.Context) {
	vendor, ok := vh.vendorForCaller(ctx)
	if !ok {
		return
	}

	list, err := vh.service.GetVendorTransactions(ctx.Request.Context(), vendor.ID)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	result := make([]transactionResponse, 0, len(list))
	for _, t := range list {
		result = append(result, transactionResponse{
			ID:          t.ID,
			ReferenceID: t.ReferenceID,
			Amount:      jsonDecimal(t.Amount),
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	vh.handleSuccess(ctx, result)
}
