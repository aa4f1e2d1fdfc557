package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/Veraticus/salestax/internal/testutil/baskets"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	ctx := context.Background()
	p := NewProcessor()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "domestic goods",
			input: "2 book at 12.49\n1 music CD at 14.99\n1 chocolate bar at 0.85",
			want:  "2 book: 24.98\n1 music CD: 16.49\n1 chocolate bar: 0.85\nSales Taxes: 1.50\nTotal: 42.32",
		},
		{
			name:  "imported goods",
			input: "1 imported box of chocolates at 10.00\n1 imported bottle of perfume at 47.50",
			want:  "1 imported box of chocolates: 10.50\n1 imported bottle of perfume: 54.65\nSales Taxes: 7.65\nTotal: 65.15",
		},
		{
			name:  "empty input",
			input: "",
			want:  "Receipt is empty.\nSales Taxes: 0.00\nTotal: 0.00",
		},
		{
			name:    "invalid input",
			input:   "invalid input",
			wantErr: common.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Process(ctx, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "'invalid input'")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessor_ProcessLines(t *testing.T) {
	got, err := NewProcessor().ProcessLines(context.Background(), []string{"", "1 music CD at 14.99", "   "})
	require.NoError(t, err)
	assert.Equal(t, "1 music CD: 16.49\nSales Taxes: 1.50\nTotal: 16.49", got)
}

type flatPricer struct{}

func (flatPricer) TaxFor(model.Item) (decimal.Decimal, error) {
	return decimal.NewFromInt(1), nil
}

func (flatPricer) PriceWithTax(item model.Item) (decimal.Decimal, error) {
	return item.TotalBasePrice().Add(decimal.NewFromInt(1)), nil
}

func TestProcessor_WithPricer(t *testing.T) {
	got, err := NewProcessor(WithPricer(flatPricer{})).Process(context.Background(), "1 book at 2.00")
	require.NoError(t, err)
	assert.Equal(t, "1 book: 3.00\nSales Taxes: 1.00\nTotal: 3.00", got)
}

type brokenPricer struct{ flatPricer }

var errBroken = errors.New("broken")

func (brokenPricer) TaxFor(model.Item) (decimal.Decimal, error) {
	return decimal.Zero, errBroken
}

func TestProcessor_PricerFailure(t *testing.T) {
	_, err := NewProcessor(WithPricer(brokenPricer{})).Process(context.Background(), "1 book at 2.00")
	assert.ErrorIs(t, err, errBroken)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger, err := common.NewLogger(&buf, slog.LevelDebug, "console")
	require.NoError(t, err)

	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestProcessor_LogsFailuresWithBatchID(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		input   string
		wantMsg string
	}{
		{
			name:    "parse failure",
			input:   "invalid input",
			wantMsg: "Failed to parse basket",
		},
		{
			name:    "pricing failure",
			opts:    []Option{WithPricer(brokenPricer{})},
			input:   "1 book at 2.00",
			wantMsg: "Failed to price basket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			_, err := NewProcessor(tt.opts...).Process(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, logs.String(), "level=ERROR")
			assert.Contains(t, logs.String(), tt.wantMsg)
			assert.Contains(t, logs.String(), "batch_id=")
		})
	}
}

func TestProcessor_Fixtures(t *testing.T) {
	p := NewProcessor()
	for _, fixture := range baskets.All() {
		t.Run(fixture.Name, func(t *testing.T) {
			got, err := p.Process(context.Background(), fixture.Input())
			require.NoError(t, err)
			assert.Equal(t, fixture.Receipt, got)
		})
	}
}

func TestSampleInputs(t *testing.T) {
	samples := SampleInputs()
	fixtures := []baskets.Fixture{baskets.FixtureDomestic, baskets.FixtureImported, baskets.FixtureMixed}

	require.Len(t, samples, len(fixtures))
	for i, sample := range samples {
		assert.Equal(t, fixtures[i].Input(), sample.Input, sample.Name)
	}
}
