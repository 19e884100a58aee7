package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/merchhub/internal/cart"
	"github.com/nikolayk812/merchhub/internal/catalog"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/nikolayk812/merchhub/internal/session"
	"go.uber.org/zap"
)

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Get(c.Request.Context(), c.GetString(sessionIDKey))
	if err != nil {
		h.abortWithError(c, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) writeCart(c *gin.Context, store *cart.Store) {
	// one snapshot so items and totals agree
	current := store.Cart()
	c.JSON(http.StatusOK, h.toCart(current.Items, current.ItemCount(), current.Subtotal(store.Currency())))
}

func (h *Handler) GetCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.writeCart(c, s.Cart)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	size, ok := catalog.ParseSize(req.Size)
	if !ok {
		abortWithMessage(c, http.StatusUnprocessableEntity, msgInvalidSize)
		return
	}

	product, err := h.catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, port.ErrProductNotFound) {
			abortWithMessage(c, http.StatusNotFound, msgProductNotFound)
			return
		}
		h.abortWithError(c, err)
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	item := catalog.LineItem(product, size)
	s.Cart.AddItem(c.Request.Context(), item, qty)

	h.logger.Debug("item added", zap.String("session_id", s.ID), zap.String("item_id", item.ID), zap.Int("qty", qty))

	h.writeCart(c, s.Cart)
}

func (h *Handler) SetCartItemQty(c *gin.Context) {
	var req setQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.SetQty(c.Request.Context(), c.Param("id"), *req.Qty)
	h.writeCart(c, s.Cart)
}

func (h *Handler) IncCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.Inc(c.Request.Context(), c.Param("id"))
	h.writeCart(c, s.Cart)
}

func (h *Handler) DecCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.Dec(c.Request.Context(), c.Param("id"))
	h.writeCart(c, s.Cart)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.RemoveItem(c.Request.Context(), c.Param("id"))
	h.writeCart(c, s.Cart)
}

func (h *Handler) ClearCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.Clear(c.Request.Context())
	h.writeCart(c, s.Cart)
}
