// Package app wires the parser, tax engine, basket, and formatter into the
// text-in, receipt-out pipeline used by the command line.
package app

import (
	"context"
	"strings"

	"github.com/Veraticus/salestax/internal/basket"
	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/parser"
	"github.com/Veraticus/salestax/internal/receipt"
	"github.com/Veraticus/salestax/internal/tax"
	"github.com/google/uuid"
)

// Processor turns a block of purchase lines into receipt text.
type Processor struct {
	parser    *parser.Parser
	pricer    basket.Pricer
	formatter *receipt.Formatter
}

// Option configures a Processor.
type Option func(*Processor)

// WithPricer replaces the standard tax engine.
func WithPricer(pricer basket.Pricer) Option {
	return func(p *Processor) {
		p.pricer = pricer
	}
}

// NewProcessor creates a processor using the standard tax rules.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		parser:    parser.NewParser(),
		pricer:    tax.NewEngine(),
		formatter: receipt.NewFormatter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process prices one basket described by text, one item per line.
func (p *Processor) Process(ctx context.Context, text string) (string, error) {
	return p.ProcessLines(ctx, strings.Split(text, "\n"))
}

// ProcessLines prices one basket from pre-split lines. Blank lines are skipped.
func (p *Processor) ProcessLines(ctx context.Context, lines []string) (string, error) {
	batchID := uuid.NewString()

	items, err := p.parser.ParseLines(lines)
	if err != nil {
		common.LogError(ctx, err, "Failed to parse basket", common.Fields{"batch_id": batchID})
		return "", err
	}

	b := basket.New(p.pricer)
	if err := b.AddAll(items); err != nil {
		common.LogError(ctx, err, "Failed to fill basket", common.Fields{"batch_id": batchID})
		return "", err
	}

	r, err := receipt.New(b)
	if err != nil {
		common.LogError(ctx, err, "Failed to price basket", common.Fields{"batch_id": batchID})
		return "", err
	}

	common.LogDebug(ctx, "Priced basket", common.Fields{
		"batch_id":    batchID,
		"items":       r.Size(),
		"total_tax":   r.TotalTax().StringFixed(2),
		"total_price": r.TotalPrice().StringFixed(2),
	})

	return p.formatter.Format(r)
}
