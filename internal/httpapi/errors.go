package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/merchhub/internal/checkout"
	"go.uber.org/zap"
)

const (
	msgInvalidBody     = "Invalid request body."
	msgProductNotFound = "Product not found."
	msgInvalidSize     = "Please choose a valid size."
	msgInternal        = "Something went wrong. Please try again."
)

func statusFor(k checkout.Kind) int {
	switch k {
	case checkout.KindValidation:
		return http.StatusUnprocessableEntity
	case checkout.KindAuthRequired:
		return http.StatusUnauthorized
	case checkout.KindBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	var cerr *checkout.Error
	if errors.As(err, &cerr) {
		status := statusFor(cerr.Kind)
		if status == http.StatusInternalServerError {
			h.logger.Error("checkout failed", zap.Error(cerr.Err), zap.String("kind", cerr.Kind.String()))
		}
		c.AbortWithStatusJSON(status, errorResponse{Error: cerr.Message})
		return
	}

	h.logger.Error("request failed", zap.String("route", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: msgInternal})
}

func abortWithMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
