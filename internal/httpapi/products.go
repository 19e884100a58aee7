package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
)

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, port.ErrProductNotFound) {
			abortWithMessage(c, http.StatusNotFound, msgProductNotFound)
			return
		}
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toProduct(product))
}

// GetMe reports the caller. Anonymous callers get 200 with authenticated=false.
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.identity.CurrentUser(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, meResponse{DisplayName: domain.DefaultDisplayName})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		Authenticated: true,
		ID:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName(),
		AvatarURL:     user.Avatar(),
	})
}
