// Package httpapi exposes carts, checkout and the catalog over HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/nikolayk812/merchhub/internal/session"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const endpointPrefix = "/api/v1"

type Deps struct {
	Sessions *session.Manager
	Catalog  port.ProductCatalog
	Identity port.IdentityProvider
	Logger   *zap.Logger

	// ImagePlaceholder is served for items without an image.
	ImagePlaceholder string
	// Language drives the localized money display.
	Language language.Tag
}

type Handler struct {
	sessions    *session.Manager
	catalog     port.ProductCatalog
	identity    port.IdentityProvider
	logger      *zap.Logger
	placeholder string
	lang        language.Tag
}

func NewHandler(d Deps) *Handler {
	lang := d.Language
	if lang == language.Und {
		lang = language.English
	}

	return &Handler{
		sessions:    d.Sessions,
		catalog:     d.Catalog,
		identity:    d.Identity,
		logger:      d.Logger,
		placeholder: d.ImagePlaceholder,
		lang:        lang,
	}
}

// API builds the gin engine. The gin mode is left to the caller.
func API(d Deps) *gin.Engine {
	h := NewHandler(d)

	r := gin.New()
	r.Use(RequestLogger(d.Logger), gin.Recovery())
	r.GET("/ping", healthCheck)

	v1 := r.Group(endpointPrefix)
	v1.Use(BearerToken())
	{
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/me", h.GetMe)

		s := v1.Group("", SessionID())
		s.GET("/cart", h.GetCart)
		s.DELETE("/cart", h.ClearCart)
		s.POST("/cart/items", h.AddCartItem)
		s.PUT("/cart/items/:id", h.SetCartItemQty)
		s.DELETE("/cart/items/:id", h.RemoveCartItem)
		s.POST("/cart/items/:id/inc", h.IncCartItem)
		s.POST("/cart/items/:id/dec", h.DecCartItem)

		s.GET("/checkout", h.GetCheckout)
		s.PUT("/checkout", h.UpdateCheckout)
		s.POST("/checkout/orders", h.PlaceOrder)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
