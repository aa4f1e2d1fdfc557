// Package tax implements the sales tax rules: a basic rate on non-exempt
// goods, an import duty on imported goods, and per-unit rounding up to the
// nearest five cents.
package tax

import (
	"fmt"
	"strings"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/shopspring/decimal"
)

var (
	// BasicRate applies to every item that is not exempt.
	BasicRate = decimal.RequireFromString("0.10")
	// ImportDutyRate applies to every imported item, exempt or not.
	ImportDutyRate = decimal.RequireFromString("0.05")
	// RoundingIncrement is the denomination per-unit tax is rounded up to.
	RoundingIncrement = decimal.RequireFromString("0.05")
)

// ExemptCategories are matched as case-insensitive substrings of the item
// name. "pillow" matches "pill".
var ExemptCategories = []string{"book", "food", "medical", "chocolate", "pill"}

// IsExempt reports whether a product name falls in an exempt category.
func IsExempt(name string) bool {
	lower := strings.ToLower(name)
	for _, category := range ExemptCategories {
		if strings.Contains(lower, category) {
			return true
		}
	}
	return false
}

// RoundUpToNickel rounds amount up to the next multiple of RoundingIncrement.
// Exact multiples are returned unchanged.
func RoundUpToNickel(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(RoundingIncrement).Ceil().Mul(RoundingIncrement).Round(2)
}

// Engine computes tax and tax-inclusive prices. It holds no state and is
// safe for concurrent use.
type Engine struct{}

// NewEngine creates a new tax engine.
func NewEngine() *Engine {
	return &Engine{}
}

// TaxFor returns the tax owed on item: the rounded per-unit tax times quantity.
func (e *Engine) TaxFor(item model.Item) (decimal.Decimal, error) {
	if !item.Valid() {
		return decimal.Zero, fmt.Errorf("%w: item was not constructed with model.NewItem", common.ErrInvalidArgument)
	}

	perUnit := RoundUpToNickel(basicTax(item).Add(importTax(item)))
	return perUnit.Mul(decimal.NewFromInt(int64(item.Quantity()))).Round(2), nil
}

// PriceWithTax returns the extended price of item including its tax.
func (e *Engine) PriceWithTax(item model.Item) (decimal.Decimal, error) {
	tax, err := e.TaxFor(item)
	if err != nil {
		return decimal.Zero, err
	}
	return item.TotalBasePrice().Add(tax).Round(2), nil
}

func basicTax(item model.Item) decimal.Decimal {
	if IsExempt(item.Name()) {
		return decimal.Zero
	}
	return item.UnitPrice().Mul(BasicRate)
}

func importTax(item model.Item) decimal.Decimal {
	if !item.Imported() {
		return decimal.Zero
	}
	return item.UnitPrice().Mul(ImportDutyRate)
}
