package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemResponse struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	VendorID  string      `json:"vendorId"`
	Quantity  int         `json:"quantity"`
	UnitPrice jsonDecimal `json:"unitPrice"`
	LineTotal jsonDecimal `json:"lineTotal"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"orderNumber"`
	Status    string              `json:"status"`
	Items     []orderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	r := orderResponse{
		ID:        o.ID,
		Number:    o.Number,
		Status:    string(o.Status),
		Items:     make([]orderItemResponse, 0, len(o.Items)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, i := range o.Items {
		r.Items = append(r.Items, orderItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			VendorID:  i.VendorID,
			Quantity:  i.Quantity,
			UnitPrice: jsonDecimal(i.UnitPrice),
			LineTotal: jsonDecimal(i.LineTotal),
		})
	}
	return r
}

type releaseOutcomeResponse struct {
	TransactionID string      `json:"transactionId"`
	VendorID      string      `json:"vendorId"`
	Amount        jsonDecimal `json:"amount"`
	Status        string      `json:"status"`
	Notified      bool        `json:"notified"`
	Error         string      `json:"error,omitempty"`
}

type releaseResponse struct {
	OrderID     string                   `json:"orderId"`
	OrderNumber string                   `json:"orderNumber"`
	Released    jsonDecimal              `json:"released"`
	Failed      int                      `json:"failed"`
	Outcomes    []releaseOutcomeResponse `json:"outcomes"`
}

func newReleaseResponse(r *domain.ReleaseReport) (*releaseResponse, error) {
	if r == nil {
		return nil, nil
	}
	released, err := r.Released()
	if err != nil {
		return nil, err
	}

	resp := releaseResponse{
		OrderID:     r.OrderID,
		OrderNumber: r.OrderNumber,
		Released:    jsonDecimal(released),
		Outcomes:    make([]releaseOutcomeResponse, 0, len(r.Outcomes)),
	}
	for _, o := range r.Outcomes {
		if o.Status == domain.ReleaseStatusFailed {
			resp.Failed++
		}
		item := releaseOutcomeResponse{
			TransactionID: o.TransactionID,
			VendorID:      o.VendorID,
			Amount:        jsonDecimal(o.Amount),
			Status:        string(o.Status),
			Notified:      o.Notified,
		}
		if o.Err != nil {
			item.Error = o.Err.Error()
		}
		resp.Outcomes = append(resp.Outcomes, item)
	}
	return &resp, nil
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type statusResponse struct {
	Order  orderResponse    `json:"order"`
	Escrow *releaseResponse `json:"escrow,omitempty"`
}

func (oh *OrderHandler) SetStatus(ctx *gin.Context) {
	req := statusRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, report, err := oh.service.SetStatus(ctx.Request.Context(), ctx.Param("id"), status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	escrow, err := newReleaseResponse(report)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, statusResponse{Order: newOrderResponse(order), Escrow: escrow})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}

// Release re-runs the escrow release of a delivered order, e.g. after a
// partial failure reported by SetStatus.
func (oh *OrderHandler) Release(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if order.Status != domain.OrderStatusDelivered {
		oh.handleError(ctx, domain.ErrIllegalTransition)
		return
	}

	report, err := oh.service.ReleaseForOrder(ctx.Request.Context(), order.ID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	resp, err := newReleaseResponse(report)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, resp)
}

type placeOrderItem struct {
	ProductID string      `json:"productId" binding:"required"`
	VendorID  string      `json:"vendorId" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,gt=0"`
	UnitPrice json.Number `json:"unitPrice" binding:"required"`
}

type placeOrderRequest struct {
	Number string           `json:"orderNumber"`
	Items  []placeOrderItem `json:"items" binding:"required,min=1,dive"`
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	req := placeOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{Number: req.Number, Items: make([]*domain.OrderItem, 0, len(req.Items))}
	for _, i := range req.Items {
		price, err := decimal.Parse(i.UnitPrice.String())
		if err != nil {
			oh.handleValidationError(ctx, domain.ErrInvalidAmount)
			return
		}
		order.Items = append(order.Items, &domain.OrderItem{
			ProductID: i.ProductID,
			VendorID:  i.VendorID,
			Quantity:  i.Quantity,
			UnitPrice: price,
		})
	}

	newOrder, err := oh.service.PlaceOrder(ctx.Request.Context(), order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(newOrder), http.StatusCreated)
}
