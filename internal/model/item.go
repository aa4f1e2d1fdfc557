// Package model defines the value types shared by the pricing pipeline.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/shopspring/decimal"
)

const importedMarker = "imported"

// Item is a single purchase line: quantity units of a named product at a unit price.
// Items are immutable; build them with NewItem.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
	imported  bool
}

// NewItem validates its inputs and returns an Item. The unit price is rounded
// to two places before validation, so sub-cent prices are rejected. The
// imported flag is derived from the name.
func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("%w: name is required", common.ErrInvalidArgument)
	}
	unitPrice = unitPrice.Round(2)
	if !unitPrice.IsPositive() {
		return Item{}, fmt.Errorf("%w: price must be positive", common.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: quantity must be positive", common.ErrInvalidArgument)
	}

	return Item{
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		imported:  strings.Contains(strings.ToLower(name), importedMarker),
	}, nil
}

// Name returns the display name, case preserved.
func (i Item) Name() string { return i.name }

// UnitPrice returns the price of one unit.
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Quantity returns the number of units.
func (i Item) Quantity() int { return i.quantity }

// Imported reports whether the item attracts import duty.
func (i Item) Imported() bool { return i.imported }

// Valid reports whether the item was built by NewItem. The zero Item is not valid.
func (i Item) Valid() bool {
	return i.quantity > 0 && i.unitPrice.IsPositive() && i.name != ""
}

// TotalBasePrice is the untaxed extended price.
func (i Item) TotalBasePrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i Item) String() string {
	return fmt.Sprintf("%d %s", i.quantity, i.name)
}
