package receipt

import (
	"testing"

	"github.com/Veraticus/salestax/internal/basket"
	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/testutil/baskets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formatCase struct {
	name  string
	input string
	want  string
}

func TestFormatter_Format(t *testing.T) {
	tests := []formatCase{
		{
			name:  "whole amounts keep two decimals",
			input: "1 book at 10\n1 music CD at 10",
			want:  "1 book: 10.00\n1 music CD: 11.00\nSales Taxes: 1.00\nTotal: 21.00",
		},
		{
			name:  "no thousands separator",
			input: "100 music CD at 14.99",
			want:  "100 music CD: 1649.00\nSales Taxes: 150.00\nTotal: 1649.00",
		},
	}

	for _, fixture := range baskets.All() {
		tests = append(tests, formatCase{name: fixture.Name, input: fixture.Input(), want: fixture.Receipt})
	}

	f := NewFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(basketFrom(t, tt.input))
			require.NoError(t, err)

			got, err := f.Format(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_EmptyBasket(t *testing.T) {
	r, err := New(basket.New(nil))
	require.NoError(t, err)

	got, err := NewFormatter().Format(r)
	require.NoError(t, err)
	assert.Equal(t, "Receipt is empty.\nSales Taxes: 0.00\nTotal: 0.00", got)
}

func TestFormatter_RequiresReceipt(t *testing.T) {
	got, err := NewFormatter().Format(nil)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
