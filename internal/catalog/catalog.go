// Package catalog serves the storefront's fixed product list.
package catalog

import (
	"context"
	"fmt"
	"regexp"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var productIDPattern = regexp.MustCompile(`^(eng|comp|edu)-product([1-3])$`)

type college struct {
	name        string
	titlePrefix string
	category    string
}

var colleges = map[string]college{
	"eng": {
		name:        "Faculty of Engineering",
		titlePrefix: "VSU Faculty of Engineering",
		category:    "Clothing",
	},
	"comp": {
		name:        "Faculty of Computing",
		titlePrefix: "VSU Faculty of Computing",
		category:    "Clothing",
	},
	"edu": {
		name:        "Faculty of Education",
		titlePrefix: "VSU Faculty of Education",
		category:    "Clothing",
	},
}

const description = "High-quality Product with the official design. " +
	"Perfect for everyday wear or representing your college pride."

var features = []string{
	"100% premium cotton fabric",
	"Official design print",
	"Available in multiple sizes",
}

var basePrice = decimal.NewFromInt(450)

type static struct {
	currency currency.Unit
}

func NewStatic(cur currency.Unit) port.ProductCatalog {
	return &static{currency: cur}
}

func (c *static) GetProductByID(_ context.Context, id string) (domain.Product, error) {
	match := productIDPattern.FindStringSubmatch(id)
	if match == nil {
		return domain.Product{}, port.ErrProductNotFound
	}

	meta, ok := colleges[match[1]]
	if !ok {
		return domain.Product{}, port.ErrProductNotFound
	}

	return domain.Product{
		ID:          id,
		Title:       fmt.Sprintf("%s Product %s", meta.titlePrefix, match[2]),
		OrgName:     meta.name,
		Category:    meta.category,
		Price:       domain.NewMoney(basePrice, c.currency),
		ImageURL:    "/" + id + ".jpg",
		Description: description,
		Features:    append([]string(nil), features...),
		AboutOrg: fmt.Sprintf("Official merchandise from %s. "+
			"All proceeds support student activities and organization initiatives.", meta.name),
	}, nil
}
