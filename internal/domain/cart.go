package domain

import (
	"math"

	"golang.org/x/text/currency"
)

const (
	// MinQty is the smallest quantity a line item can hold.
	MinQty = 1
	// MaxQty caps a line item so that quantity arithmetic never wraps.
	MaxQty = math.MaxInt32
)

type Cart struct {
	Items []CartItem
}

// CartItem is one distinct product+variant entry in the cart.
// ID already encodes the variant, so two sizes of one product are two items.
type CartItem struct {
	ID       string
	Title    string
	OrgName  string
	ImageURL string
	Price    Money
	Qty      int
	Variant  string
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Qty)
}

// ImageOr returns the item's image URL, or placeholder when the item has none.
func (i CartItem) ImageOr(placeholder string) string {
	if i.ImageURL == "" {
		return placeholder
	}
	return i.ImageURL
}

// Subtitle joins organization name and variant the way a cart row shows them.
func (i CartItem) Subtitle() string {
	switch {
	case i.OrgName != "" && i.Variant != "":
		return i.OrgName + " • " + i.Variant
	case i.OrgName != "":
		return i.OrgName
	default:
		return i.Variant
	}
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Qty
	}
	return count
}

func (c Cart) Subtotal(cur currency.Unit) Money {
	total := ZeroMoney(cur)
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// NormalizeQty coerces raw quantity input to max(1, floor(q)).
// Zero and NaN count as missing input and become 1.
func NormalizeQty(q float64) int {
	if math.IsNaN(q) || q == 0 {
		return MinQty
	}

	f := math.Floor(q)
	if f < MinQty {
		return MinQty
	}
	if f > MaxQty {
		return MaxQty
	}

	return int(f)
}

// ClampQty bounds n to [MinQty, MaxQty].
func ClampQty(n int) int {
	return min(max(n, MinQty), MaxQty)
}

// AddQty adds two quantities, saturating at MaxQty.
func AddQty(a, b int) int {
	a, b = ClampQty(a), ClampQty(b)
	if a > MaxQty-b {
		return MaxQty
	}
	return a + b
}
