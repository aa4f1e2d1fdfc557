// Package basket holds an ordered collection of purchase items and totals
// them through a Pricer.
package basket

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/Veraticus/salestax/internal/tax"
	"github.com/shopspring/decimal"
)

// Pricer computes tax and tax-inclusive price for a single item.
type Pricer interface {
	TaxFor(item model.Item) (decimal.Decimal, error)
	PriceWithTax(item model.Item) (decimal.Decimal, error)
}

// Basket is an append-only list of items, safe for concurrent use.
// Totals are recomputed from the current contents on every call.
// The zero Basket is ready to use and prices with the standard tax engine.
type Basket struct {
	pricer Pricer
	items  []model.Item
	mu     sync.Mutex
}

// New creates an empty basket. A nil pricer selects the standard tax engine.
func New(pricer Pricer) *Basket {
	return &Basket{pricer: pricer}
}

// Add appends item to the end of the basket.
func (b *Basket) Add(item model.Item) error {
	if !item.Valid() {
		return fmt.Errorf("%w: item was not constructed with model.NewItem", common.ErrInvalidArgument)
	}

	b.mu.Lock()
	b.items = append(b.items, item)
	b.mu.Unlock()

	return nil
}

// AddAll appends items in order, stopping at the first invalid one.
func (b *Basket) AddAll(items []model.Item) error {
	for i, item := range items {
		if err := b.Add(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Clear removes every item.
func (b *Basket) Clear() {
	b.mu.Lock()
	b.items = nil
	b.mu.Unlock()
}

// IsEmpty reports whether the basket has no items.
func (b *Basket) IsEmpty() bool {
	return b.Size() == 0
}

// Size returns the number of items.
func (b *Basket) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a copy of the current contents in insertion order.
func (b *Basket) Items() []model.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.items)
}

// All returns an iterator over a snapshot taken when All is called.
// The sequence can be ranged over more than once.
func (b *Basket) All() iter.Seq[model.Item] {
	return slices.Values(b.Items())
}

// TaxFor returns the tax owed on a single item.
func (b *Basket) TaxFor(item model.Item) (decimal.Decimal, error) {
	return b.pricerOrDefault().TaxFor(item)
}

// PriceWithTax returns the tax-inclusive price of a single item.
func (b *Basket) PriceWithTax(item model.Item) (decimal.Decimal, error) {
	return b.pricerOrDefault().PriceWithTax(item)
}

// TotalTax sums the tax owed on every item.
func (b *Basket) TotalTax() (decimal.Decimal, error) {
	return sum(b.Items(), b.pricerOrDefault().TaxFor)
}

// TotalPrice sums the tax-inclusive price of every item.
func (b *Basket) TotalPrice() (decimal.Decimal, error) {
	return sum(b.Items(), b.pricerOrDefault().PriceWithTax)
}

var defaultPricer Pricer = tax.NewEngine()

func (b *Basket) pricerOrDefault() Pricer {
	if b.pricer == nil {
		return defaultPricer
	}
	return b.pricer
}

func sum(items []model.Item, price func(model.Item) (decimal.Decimal, error)) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		amount, err := price(item)
		if err != nil {
			return decimal.Zero, fmt.Errorf("pricing %s: %w", item, err)
		}
		total = total.Add(amount)
	}
	return total.Round(2), nil
}
