// Package receipt freezes a basket into a priced receipt and renders it as text.
package receipt

import (
	"fmt"
	"slices"

	"github.com/Veraticus/salestax/internal/basket"
	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/shopspring/decimal"
)

// Entry is one receipt line: an item and its tax-inclusive price.
type Entry struct {
	Item         model.Item
	PriceWithTax decimal.Decimal
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Item, e.PriceWithTax.StringFixed(2))
}

// Receipt is an immutable snapshot of a basket.
type Receipt struct {
	totalTax   decimal.Decimal
	totalPrice decimal.Decimal
	entries    []Entry
}

// New prices every item currently in b. Items added to b afterwards do not
// affect the receipt. Entries and totals come from the same snapshot.
func New(b *basket.Basket) (*Receipt, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: basket is required", common.ErrInvalidArgument)
	}

	items := b.Items()
	r := &Receipt{
		entries:    make([]Entry, 0, len(items)),
		totalTax:   decimal.Zero,
		totalPrice: decimal.Zero,
	}

	for _, item := range items {
		tax, err := b.TaxFor(item)
		if err != nil {
			return nil, fmt.Errorf("pricing %s: %w", item, err)
		}
		price, err := b.PriceWithTax(item)
		if err != nil {
			return nil, fmt.Errorf("pricing %s: %w", item, err)
		}

		r.entries = append(r.entries, Entry{Item: item, PriceWithTax: price.Round(2)})
		r.totalTax = r.totalTax.Add(tax)
		r.totalPrice = r.totalPrice.Add(price)
	}

	r.totalTax = r.totalTax.Round(2)
	r.totalPrice = r.totalPrice.Round(2)

	return r, nil
}

// Entries returns the receipt lines in basket order.
func (r *Receipt) Entries() []Entry {
	return slices.Clone(r.entries)
}

// TotalTax is the sum of sales taxes on the receipt.
func (r *Receipt) TotalTax() decimal.Decimal {
	return r.totalTax
}

// TotalPrice is the amount due, taxes included.
func (r *Receipt) TotalPrice() decimal.Decimal {
	return r.totalPrice
}

// IsEmpty reports whether the receipt has no lines.
func (r *Receipt) IsEmpty() bool {
	return len(r.entries) == 0
}

// Size returns the number of lines.
func (r *Receipt) Size() int {
	return len(r.entries)
}
