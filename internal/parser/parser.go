// Package parser turns free-text purchase lines into model.Items.
//
// A line has the form "<quantity> <name> at <price>", for example
// "3 imported boxes of chocolates at 11.25". The name may itself contain
// the word "at"; the separator is always the last " at " before the price.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/Veraticus/salestax/internal/model"
	"github.com/shopspring/decimal"
)

// linePattern anchors the price to the end of the line, so the lazy name
// group can only stop at the final " at " separator.
var linePattern = regexp.MustCompile(`^(\d+)\s+(.+?)\s+at\s+(\d+\.?\d*)$`)

// Parser parses purchase lines.
type Parser struct{}

// NewParser creates a new line parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine parses a single record. Blank lines are rejected.
func (p *Parser) ParseLine(line string) (model.Item, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return model.Item{}, &common.EmptyInputError{Line: trimmed}
	}

	match := linePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return model.Item{}, &common.FormatError{Line: trimmed}
	}

	quantity, err := strconv.Atoi(match[1])
	if err != nil {
		return model.Item{}, fmt.Errorf("%w: quantity %q", &common.FormatError{Line: trimmed}, match[1])
	}

	price, err := decimal.NewFromString(strings.TrimSuffix(match[3], "."))
	if err != nil {
		return model.Item{}, fmt.Errorf("%w: price %q", &common.FormatError{Line: trimmed}, match[3])
	}

	item, err := model.NewItem(strings.TrimSpace(match[2]), price, quantity)
	if err != nil {
		return model.Item{}, fmt.Errorf("line '%s': %w", trimmed, err)
	}

	return item, nil
}

// Parse splits text on newlines and parses every non-blank line.
func (p *Parser) Parse(text string) ([]model.Item, error) {
	return p.ParseLines(strings.Split(text, "\n"))
}

// ParseLines parses already-split lines, skipping blank ones. The first
// malformed line aborts the whole batch.
func (p *Parser) ParseLines(lines []string) ([]model.Item, error) {
	items := make([]model.Item, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := p.ParseLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
