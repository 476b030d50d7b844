package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.carts.GetCart(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("carts.GetCart: %w", err))
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("%w: productId is not a valid id", domain.ErrValidation))
		return
	}

	line, err := h.carts.AddLine(c.Request.Context(), principalFrom(c), productID, req.Quantity)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("carts.AddLine: %w", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Product added to cart",
		"cartItem": toCartLineResponse(line),
	})
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	lineID, err := uuidParam(c, "cartItemId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	line, err := h.carts.UpdateLine(c.Request.Context(), principalFrom(c), lineID, req.Quantity)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("carts.UpdateLine: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Cart item updated",
		"cartItem": toCartLineResponse(line),
	})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	lineID, err := uuidParam(c, "cartItemId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.carts.RemoveLine(c.Request.Context(), principalFrom(c), lineID); err != nil {
		respondError(c, h.log, fmt.Errorf("carts.RemoveLine: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), principalFrom(c)); err != nil {
		respondError(c, h.log, fmt.Errorf("carts.Clear: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
