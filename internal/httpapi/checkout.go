package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/merchhub/internal/domain"
)

func (h *Handler) GetCheckout(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toCheckout(s.Checkout.State()))
}

// UpdateCheckout applies the fields present in the body. Payment and delivery
// method go first so that leaving "deliver" cannot wipe details sent alongside it.
func (h *Handler) UpdateCheckout(c *gin.Context) {
	var req updateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}
	flow := s.Checkout

	if req.PaymentMethod != nil {
		flow.SelectPaymentMethod(domain.PaymentMethod(*req.PaymentMethod))
	}
	if req.DeliveryMethod != nil {
		flow.SelectDeliveryMethod(domain.DeliveryMethod(*req.DeliveryMethod))
	}
	if req.DeliveryLocation != nil {
		if err := flow.SetDeliveryLocation(*req.DeliveryLocation); err != nil {
			h.abortWithError(c, err)
			return
		}
	}
	if req.DeliveryDate != nil {
		if err := flow.SetDeliveryDate(*req.DeliveryDate); err != nil {
			h.abortWithError(c, err)
			return
		}
	}
	if req.DeliveryTime != nil {
		if err := flow.SetDeliveryTime(*req.DeliveryTime); err != nil {
			h.abortWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, h.toCheckout(flow.State()))
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	receipt, err := s.Checkout.PlaceOrder(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toReceipt(receipt))
}
