package httpapi

import (
	"time"

	"github.com/nikolayk812/merchhub/internal/catalog"
	"github.com/nikolayk812/merchhub/internal/checkout"
	"github.com/nikolayk812/merchhub/internal/domain"
	"golang.org/x/text/language"
)

type errorResponse struct {
	Error string `json:"error"`
}

type moneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

type cartItemResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	OrgName   string        `json:"orgName,omitempty"`
	Variant   string        `json:"variant,omitempty"`
	Subtitle  string        `json:"subtitle"`
	ImageURL  string        `json:"imageUrl"`
	Price     moneyResponse `json:"price"`
	Qty       int           `json:"qty"`
	LineTotal moneyResponse `json:"lineTotal"`
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Subtotal  moneyResponse      `json:"subtotal"`
}

type checkoutResponse struct {
	PaymentMethod    string `json:"paymentMethod"`
	DeliveryMethod   string `json:"deliveryMethod"`
	DeliveryLocation string `json:"deliveryLocation"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryTime     string `json:"deliveryTime"`

	ItemCount   int           `json:"itemCount"`
	Subtotal    moneyResponse `json:"subtotal"`
	DeliveryFee moneyResponse `json:"deliveryFee"`
	Total       moneyResponse `json:"total"`

	DeliveryLocations []string `json:"deliveryLocations"`
	DeliveryTimes     []string `json:"deliveryTimes"`
	MinDeliveryDate   string   `json:"minDeliveryDate"`

	Placing       bool   `json:"placing"`
	CanPlaceOrder bool   `json:"canPlaceOrder"`
	Error         string `json:"error,omitempty"`
	Success       string `json:"success,omitempty"`
}

type receiptResponse struct {
	ID               string             `json:"id"`
	UserID           string             `json:"userId"`
	PlacedBy         string             `json:"placedBy"`
	Items            []cartItemResponse `json:"items"`
	Subtotal         moneyResponse      `json:"subtotal"`
	DeliveryFee      moneyResponse      `json:"deliveryFee"`
	Total            moneyResponse      `json:"total"`
	PaymentMethod    string             `json:"paymentMethod"`
	DeliveryMethod   string             `json:"deliveryMethod"`
	DeliveryLocation string             `json:"deliveryLocation,omitempty"`
	DeliveryDate     string             `json:"deliveryDate,omitempty"`
	DeliveryTime     string             `json:"deliveryTime,omitempty"`
	PlacedAt         time.Time          `json:"placedAt"`
	Message          string             `json:"message"`
}

type productResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	OrgName     string        `json:"orgName"`
	Category    string        `json:"category"`
	Price       moneyResponse `json:"price"`
	ImageURL    string        `json:"imageUrl"`
	Description string        `json:"description"`
	Features    []string      `json:"features"`
	AboutOrg    string        `json:"aboutOrg"`
	Sizes       []string      `json:"sizes"`
	DefaultSize string        `json:"defaultSize"`
}

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Qty       *int   `json:"qty" binding:"omitempty,min=1,max=2147483647"`
}

type setQtyRequest struct {
	Qty *float64 `json:"qty" binding:"required"`
}

// updateCheckoutRequest is a partial update; absent fields are left alone.
type updateCheckoutRequest struct {
	PaymentMethod    *string `json:"paymentMethod"`
	DeliveryMethod   *string `json:"deliveryMethod"`
	DeliveryLocation *string `json:"deliveryLocation"`
	DeliveryDate     *string `json:"deliveryDate"`
	DeliveryTime     *string `json:"deliveryTime"`
}

func toMoney(m domain.Money, lang language.Tag) moneyResponse {
	return moneyResponse{
		Amount:   m.Amount.StringFixed(2),
		Currency: m.Currency.String(),
		Display:  m.Format(lang),
	}
}

func (h *Handler) toItems(items []domain.CartItem) []cartItemResponse {
	out := make([]cartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, cartItemResponse{
			ID:        it.ID,
			Title:     it.Title,
			OrgName:   it.OrgName,
			Variant:   it.Variant,
			Subtitle:  it.Subtitle(),
			ImageURL:  it.ImageOr(h.placeholder),
			Price:     toMoney(it.Price, h.lang),
			Qty:       it.Qty,
			LineTotal: toMoney(it.LineTotal(), h.lang),
		})
	}
	return out
}

func (h *Handler) toCart(items []domain.CartItem, itemCount int, subtotal domain.Money) cartResponse {
	return cartResponse{
		Items:     h.toItems(items),
		ItemCount: itemCount,
		Subtotal:  toMoney(subtotal, h.lang),
	}
}

func (h *Handler) toCheckout(s checkout.State) checkoutResponse {
	return checkoutResponse{
		PaymentMethod:     string(s.PaymentMethod),
		DeliveryMethod:    string(s.DeliveryMethod),
		DeliveryLocation:  s.DeliveryLocation,
		DeliveryDate:      s.DeliveryDate,
		DeliveryTime:      s.DeliveryTime,
		ItemCount:         s.ItemCount,
		Subtotal:          toMoney(s.Subtotal, h.lang),
		DeliveryFee:       toMoney(s.DeliveryFee, h.lang),
		Total:             toMoney(s.Total, h.lang),
		DeliveryLocations: s.DeliveryLocations,
		DeliveryTimes:     s.DeliveryTimes,
		MinDeliveryDate:   s.MinDeliveryDate,
		Placing:           s.Placing,
		CanPlaceOrder:     s.CanPlaceOrder,
		Error:             s.Error,
		Success:           s.Success,
	}
}

func (h *Handler) toReceipt(r domain.Receipt) receiptResponse {
	return receiptResponse{
		ID:               r.ID.String(),
		UserID:           r.UserID,
		PlacedBy:         r.PlacedBy,
		Items:            h.toItems(r.Items),
		Subtotal:         toMoney(r.Subtotal, h.lang),
		DeliveryFee:      toMoney(r.DeliveryFee, h.lang),
		Total:            toMoney(r.Total, h.lang),
		PaymentMethod:    string(r.PaymentMethod),
		DeliveryMethod:   string(r.DeliveryMethod),
		DeliveryLocation: r.DeliveryLocation,
		DeliveryDate:     r.DeliveryDate,
		DeliveryTime:     r.DeliveryTime,
		PlacedAt:         r.PlacedAt,
		Message:          checkout.MsgOrderPlaced,
	}
}

func (h *Handler) toProduct(p domain.Product) productResponse {
	sizes := make([]string, 0, len(catalog.Sizes))
	for _, s := range catalog.Sizes {
		sizes = append(sizes, string(s))
	}

	image := p.ImageURL
	if image == "" {
		image = h.placeholder
	}

	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		OrgName:     p.OrgName,
		Category:    p.Category,
		Price:       toMoney(p.Price, h.lang),
		ImageURL:    image,
		Description: p.Description,
		Features:    p.Features,
		AboutOrg:    p.AboutOrg,
		Sizes:       sizes,
		DefaultSize: string(catalog.DefaultSize),
	}
}
