package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// storedItem is the persisted shape of one line item. Price is a bare JSON
// number; the store currency is applied on decode. Qty is read leniently:
// fractions floor and quoted numbers are accepted.
type storedItem struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	OrgName  string      `json:"orgName,omitempty"`
	ImageURL string      `json:"imageUrl"`
	Price    json.Number `json:"price"`
	Qty      json.Number `json:"qty"`
	Variant  string      `json:"variant,omitempty"`
}

func encodeItems(items []domain.CartItem) (string, error) {
	stored := make([]storedItem, 0, len(items))
	for _, item := range items {
		stored = append(stored, storedItem{
			ID:       item.ID,
			Title:    item.Title,
			OrgName:  item.OrgName,
			ImageURL: item.ImageURL,
			Price:    json.Number(item.Price.Amount.String()),
			Qty:      json.Number(strconv.Itoa(item.Qty)),
			Variant:  item.Variant,
		})
	}

	data, err := codec.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("codec.Marshal: %w", err)
	}

	return string(data), nil
}

// decodeItems parses a payload and repairs what it can: entries without an id
// or with a bad price are dropped, quantities are normalized and repeated ids
// are merged in first-seen order.
func decodeItems(payload string, cur currency.Unit) ([]domain.CartItem, int, error) {
	var stored []storedItem
	if err := codec.UnmarshalFromString(payload, &stored); err != nil {
		return nil, 0, fmt.Errorf("codec.UnmarshalFromString: %w", err)
	}

	var (
		items   []domain.CartItem
		index   = make(map[string]int, len(stored))
		dropped int
	)

	for _, s := range stored {
		price, err := decimal.NewFromString(s.Price.String())
		if s.ID == "" || err != nil || price.IsNegative() {
			dropped++
			continue
		}

		qty := storedQty(s.Qty)

		if i, ok := index[s.ID]; ok {
			items[i].Qty = domain.AddQty(items[i].Qty, qty)
			continue
		}

		index[s.ID] = len(items)
		items = append(items, domain.CartItem{
			ID:       s.ID,
			Title:    s.Title,
			OrgName:  s.OrgName,
			ImageURL: s.ImageURL,
			Price:    domain.NewMoney(price, cur),
			Qty:      qty,
			Variant:  s.Variant,
		})
	}

	return items, dropped, nil
}

// storedQty treats a missing or unparsable quantity as 1.
func storedQty(n json.Number) int {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return domain.MinQty
	}
	return domain.NormalizeQty(f)
}
