package catalog_test

import (
	"testing"

	"github.com/nikolayk812/merchhub/internal/catalog"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var php = currency.MustParseISO("PHP")

func TestStatic_GetProductByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantTitle string
		wantOrg   string
		wantError error
	}{
		{
			name:      "engineering product: ok",
			id:        "eng-product2",
			wantTitle: "VSU Faculty of Engineering Product 2",
			wantOrg:   "Faculty of Engineering",
		},
		{
			name:      "computing product: ok",
			id:        "comp-product1",
			wantTitle: "VSU Faculty of Computing Product 1",
			wantOrg:   "Faculty of Computing",
		},
		{
			name:      "education product: ok",
			id:        "edu-product3",
			wantTitle: "VSU Faculty of Education Product 3",
			wantOrg:   "Faculty of Education",
		},
		{name: "unknown college: not found", id: "law-product1", wantError: port.ErrProductNotFound},
		{name: "product number out of range: not found", id: "eng-product4", wantError: port.ErrProductNotFound},
		{name: "variant id is not a product: not found", id: "eng-product1-M", wantError: port.ErrProductNotFound},
		{name: "empty id: not found", id: "", wantError: port.ErrProductNotFound},
	}

	c := catalog.NewStatic(php)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.GetProductByID(t.Context(), tt.id)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.id, p.ID)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantOrg, p.OrgName)
			assert.Equal(t, "Clothing", p.Category)
			assert.Equal(t, "/"+tt.id+".jpg", p.ImageURL)
			assert.True(t, p.Price.Amount.Equal(decimal.NewFromInt(450)))
			assert.Equal(t, php, p.Price.Currency)
			assert.Len(t, p.Features, 3)
			assert.Contains(t, p.AboutOrg, tt.wantOrg)
		})
	}
}

func TestLineItem(t *testing.T) {
	p, err := catalog.NewStatic(php).GetProductByID(t.Context(), "comp-product1")
	require.NoError(t, err)

	m := catalog.LineItem(p, catalog.DefaultSize)
	xl := catalog.LineItem(p, "XL")

	assert.Equal(t, "comp-product1-M", m.ID)
	assert.Equal(t, "Size: M", m.Variant)
	assert.Equal(t, p.Title, m.Title)
	assert.Equal(t, p.OrgName, m.OrgName)
	assert.Equal(t, p.ImageURL, m.ImageURL)
	assert.True(t, p.Price.Equal(m.Price))
	assert.NotEqual(t, m.ID, xl.ID)
}

func TestParseSize(t *testing.T) {
	for _, s := range catalog.Sizes {
		got, ok := catalog.ParseSize(string(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	got, ok := catalog.ParseSize("")
	assert.True(t, ok)
	assert.Equal(t, catalog.DefaultSize, got)

	_, ok = catalog.ParseSize("XXXL")
	assert.False(t, ok)
}
