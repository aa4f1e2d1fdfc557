package baskets

import (
	"testing"

	"github.com/Veraticus/salestax/internal/model"
	"github.com/shopspring/decimal"
)

// Item builds a valid item or fails the test.
func Item(tb testing.TB, name, price string, quantity int) model.Item {
	tb.Helper()

	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		tb.Fatalf("invalid price %q: %v", price, err)
	}

	item, err := model.NewItem(name, unitPrice, quantity)
	if err != nil {
		tb.Fatalf("failed to build item %q: %v", name, err)
	}
	return item
}

// Builder accumulates items in insertion order.
type Builder struct {
	tb    testing.TB
	items []model.Item
}

// NewBuilder creates an empty builder bound to tb.
func NewBuilder(tb testing.TB) *Builder {
	return &Builder{tb: tb}
}

// With appends a single item.
func (b *Builder) With(name, price string, quantity int) *Builder {
	b.tb.Helper()
	b.items = append(b.items, Item(b.tb, name, price, quantity))
	return b
}

// WithFixture appends every line of f.
func (b *Builder) WithFixture(f Fixture) *Builder {
	b.tb.Helper()
	for _, line := range f.Lines {
		b.With(line.Name, line.Price, line.Quantity)
	}
	return b
}

// Items returns a copy of the accumulated items.
func (b *Builder) Items() []model.Item {
	out := make([]model.Item, len(b.items))
	copy(out, b.items)
	return out
}
