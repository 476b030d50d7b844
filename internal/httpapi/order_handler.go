package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

type createOrderRequest struct {
	ShippingAddress domain.Address `json:"shippingAddress"`
	BillingAddress  domain.Address `json:"billingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	Notes           string         `json:"notes"`
}

type updateOrderRequest struct {
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"paymentStatus"`
	TrackingNumber *string `json:"trackingNumber"`
}

// toDomain leaves enum membership to the order service.
func (r updateOrderRequest) toDomain() domain.OrderUpdate {
	var u domain.OrderUpdate

	if r.Status != nil {
		u.Status = lo.ToPtr(domain.OrderStatus(*r.Status))
	}
	if r.PaymentStatus != nil {
		u.PaymentStatus = lo.ToPtr(domain.PaymentStatus(*r.PaymentStatus))
	}
	u.TrackingNumber = r.TrackingNumber

	return u
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), principalFrom(c), service.CheckoutRequest{
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.log, fmt.Errorf("orders.Checkout: %w", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order created successfully",
		"order":      toOrderResponse(order),
		"orderItems": toOrderItemResponses(order.Items),
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	result, err := h.orders.ListOrders(c.Request.Context(), principalFrom(c), page)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("orders.ListOrders: %w", err))
		return
	}

	c.JSON(http.StatusOK, orderPageResponse{
		Total: result.Total,
		Page:  result.Page.Number,
		Pages: result.Page.Pages(result.Total),
		Orders: lo.Map(result.Orders, func(o domain.Order, _ int) orderResponse {
			return toOrderResponse(o)
		}),
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), principalFrom(c), orderID)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("orders.GetOrder: %w", err))
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	order, err := h.orders.Cancel(c.Request.Context(), principalFrom(c), orderID)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("orders.Cancel: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   toOrderResponse(order),
	})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), principalFrom(c), orderID, req.toDomain())
	if err != nil {
		respondError(c, h.log, fmt.Errorf("orders.UpdateStatus: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   toOrderResponse(order),
	})
}
