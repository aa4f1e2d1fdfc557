package receipt

import (
	"fmt"
	"strings"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/shopspring/decimal"
)

const emptyReceipt = "Receipt is empty.\nSales Taxes: 0.00\nTotal: 0.00"

// Formatter renders receipts in the plain text layout:
//
//	2 book: 24.98
//	Sales Taxes: 1.50
//	Total: 42.32
type Formatter struct{}

// NewFormatter creates a new receipt formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders r. Lines are joined with "\n" and there is no trailing newline.
func (f *Formatter) Format(r *Receipt) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: receipt is required", common.ErrInvalidArgument)
	}

	if r.IsEmpty() {
		return emptyReceipt, nil
	}

	lines := make([]string, 0, r.Size()+2)
	for _, entry := range r.entries {
		lines = append(lines, entry.String())
	}
	lines = append(lines,
		"Sales Taxes: "+formatCurrency(r.totalTax),
		"Total: "+formatCurrency(r.totalPrice),
	)

	return strings.Join(lines, "\n"), nil
}

func formatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
