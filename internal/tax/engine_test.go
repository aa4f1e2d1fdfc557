package tax

import (
	"sync"
	"testing"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/Veraticus/salestax/internal/testutil/baskets"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_TaxFor(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name      string
		itemName  string
		price     string
		quantity  int
		wantTax   string
		wantPrice string
	}{
		{
			name:      "basic rate rounds up",
			itemName:  "music CD",
			price:     "14.99",
			quantity:  1,
			wantTax:   "1.50",
			wantPrice: "16.49",
		},
		{
			name:      "imported and taxable",
			itemName:  "imported bottle of perfume",
			price:     "47.50",
			quantity:  1,
			wantTax:   "7.15",
			wantPrice: "54.65",
		},
		{
			name:      "imported exempt rounds per unit before quantity",
			itemName:  "imported boxes of chocolates",
			price:     "11.25",
			quantity:  3,
			wantTax:   "1.80",
			wantPrice: "35.55",
		},
		{
			name:      "exempt domestic",
			itemName:  "book",
			price:     "12.49",
			quantity:  2,
			wantTax:   "0.00",
			wantPrice: "24.98",
		},
		{
			name:      "exact multiple is a fixed point",
			itemName:  "bottle of perfume",
			price:     "5.00",
			quantity:  1,
			wantTax:   "0.50",
			wantPrice: "5.50",
		},
		{
			name:      "imported exempt at exact multiple",
			itemName:  "imported box of chocolates",
			price:     "10.00",
			quantity:  1,
			wantTax:   "0.50",
			wantPrice: "10.50",
		},
		{
			name:      "imported perfume",
			itemName:  "imported bottle of perfume",
			price:     "27.99",
			quantity:  1,
			wantTax:   "4.20",
			wantPrice: "32.19",
		},
		{
			name:      "pills exempt",
			itemName:  "packet of headache pills",
			price:     "9.75",
			quantity:  1,
			wantTax:   "0.00",
			wantPrice: "9.75",
		},
		{
			name:      "substring false positive stays exempt",
			itemName:  "pillow",
			price:     "20.00",
			quantity:  1,
			wantTax:   "0.00",
			wantPrice: "20.00",
		},
		{
			name:      "smallest imported price still owes a nickel",
			itemName:  "imported food",
			price:     "0.01",
			quantity:  1,
			wantTax:   "0.05",
			wantPrice: "0.06",
		},
		{
			name:      "large quantity",
			itemName:  "music CD",
			price:     "14.99",
			quantity:  1000,
			wantTax:   "1500.00",
			wantPrice: "16490.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := baskets.Item(t, tt.itemName, tt.price, tt.quantity)

			tax, err := engine.TaxFor(item)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTax, tax.StringFixed(2))

			price, err := engine.PriceWithTax(item)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, price.StringFixed(2))
		})
	}
}

func TestEngine_RejectsZeroItem(t *testing.T) {
	engine := NewEngine()

	_, err := engine.TaxFor(model.Item{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = engine.PriceWithTax(model.Item{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestRoundUpToNickel(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0.00"},
		{"0.01", "0.05"},
		{"0.05", "0.05"},
		{"0.0500001", "0.10"},
		{"0.5", "0.50"},
		{"0.5625", "0.60"},
		{"1.499", "1.50"},
		{"7.125", "7.15"},
		{"4.1985", "4.20"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := RoundUpToNickel(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestIsExempt(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"book", true},
		{"Book of Poems", true},
		{"notebook", true},
		{"frozen FOOD", true},
		{"medical kit", true},
		{"chocolate bar", true},
		{"packet of headache pills", true},
		{"pillow", true},
		{"music CD", false},
		{"bottle of perfume", false},
		{"imported bottle of perfume", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExempt(tt.name))
		})
	}
}

func TestEngine_Properties(t *testing.T) {
	engine := NewEngine()
	names := []string{"music CD", "book", "imported perfume", "imported chocolates"}

	for cents := int64(1); cents <= 2500; cents += 7 {
		price := decimal.New(cents, -2)
		for _, name := range names {
			for _, quantity := range []int{1, 2, 5} {
				item, err := model.NewItem(name, price, quantity)
				require.NoError(t, err)

				tax, err := engine.TaxFor(item)
				require.NoError(t, err)
				assert.False(t, tax.IsNegative(), "tax for %s", item)
				assert.True(t, tax.Mod(RoundingIncrement).IsZero(), "tax %s for %s is not a multiple of 0.05", tax, item)

				total, err := engine.PriceWithTax(item)
				require.NoError(t, err)
				assert.True(t, item.TotalBasePrice().Add(tax).Round(2).Equal(total))
			}
		}
	}
}

func TestEngine_ImportDutyIndependentOfExemption(t *testing.T) {
	engine := NewEngine()

	for cents := int64(1); cents <= 2000; cents += 13 {
		price := decimal.New(cents, -2)
		domestic, err := model.NewItem("book", price, 3)
		require.NoError(t, err)
		imported, err := model.NewItem("imported book", price, 3)
		require.NoError(t, err)

		domesticTax, err := engine.TaxFor(domestic)
		require.NoError(t, err)
		importedTax, err := engine.TaxFor(imported)
		require.NoError(t, err)

		duty := RoundUpToNickel(price.Mul(ImportDutyRate)).Mul(decimal.NewFromInt(3))
		assert.True(t, domesticTax.IsZero())
		assert.True(t, importedTax.GreaterThan(domesticTax))
		assert.True(t, importedTax.Sub(domesticTax).Equal(duty))
	}
}

func TestEngine_ExemptionIsPositionIndependent(t *testing.T) {
	engine := NewEngine()

	for _, name := range []string{"book music CD", "music book CD", "music CD book", "music CDbook"} {
		tax, err := engine.TaxFor(baskets.Item(t, name, "14.99", 1))
		require.NoError(t, err)
		assert.True(t, tax.IsZero(), name)
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := NewEngine()
	item := baskets.Item(t, "imported bottle of perfume", "47.50", 1)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tax, err := engine.TaxFor(item)
			assert.NoError(t, err)
			assert.Equal(t, "7.15", tax.StringFixed(2))
		}()
	}
	wg.Wait()
}
