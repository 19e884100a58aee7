package catalog

import (
	"slices"

	"github.com/nikolayk812/merchhub/internal/domain"
)

type Size string

const DefaultSize Size = "M"

var Sizes = []Size{"XS", "S", "M", "L", "XL", "XXL"}

// ParseSize returns DefaultSize for empty input and false for unknown sizes.
func ParseSize(s string) (Size, bool) {
	if s == "" {
		return DefaultSize, true
	}

	size := Size(s)
	return size, slices.Contains(Sizes, size)
}

// LineItem builds the cart line for a product in a given size.
// Each size of a product is its own line.
func LineItem(p domain.Product, size Size) domain.CartItem {
	return domain.CartItem{
		ID:       p.ID + "-" + string(size),
		Title:    p.Title,
		OrgName:  p.OrgName,
		ImageURL: p.ImageURL,
		Price:    p.Price,
		Variant:  "Size: " + string(size),
	}
}
