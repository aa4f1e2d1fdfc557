package baskets

import (
	"strconv"
	"strings"
)

// Line is one purchase line in a fixture.
type Line struct {
	Name     string
	Price    string
	Quantity int
}

// Fixture is a reference basket with its expected receipt.
type Fixture struct {
	Name       string
	Lines      []Line
	Receipt    string
	TotalTax   string
	TotalPrice string
}

// Input renders the fixture as parser input, one line per item.
func (f Fixture) Input() string {
	lines := make([]string, 0, len(f.Lines))
	for _, l := range f.Lines {
		lines = append(lines, strconv.Itoa(l.Quantity)+" "+l.Name+" at "+l.Price)
	}
	return strings.Join(lines, "\n")
}

// Reference baskets.
var (
	FixtureDomestic = Fixture{
		Name: "domestic",
		Lines: []Line{
			{Name: "book", Price: "12.49", Quantity: 2},
			{Name: "music CD", Price: "14.99", Quantity: 1},
			{Name: "chocolate bar", Price: "0.85", Quantity: 1},
		},
		Receipt:    "2 book: 24.98\n1 music CD: 16.49\n1 chocolate bar: 0.85\nSales Taxes: 1.50\nTotal: 42.32",
		TotalTax:   "1.50",
		TotalPrice: "42.32",
	}

	FixtureImported = Fixture{
		Name: "imported",
		Lines: []Line{
			{Name: "imported box of chocolates", Price: "10.00", Quantity: 1},
			{Name: "imported bottle of perfume", Price: "47.50", Quantity: 1},
		},
		Receipt:    "1 imported box of chocolates: 10.50\n1 imported bottle of perfume: 54.65\nSales Taxes: 7.65\nTotal: 65.15",
		TotalTax:   "7.65",
		TotalPrice: "65.15",
	}

	FixtureMixed = Fixture{
		Name: "mixed",
		Lines: []Line{
			{Name: "imported bottle of perfume", Price: "27.99", Quantity: 1},
			{Name: "bottle of perfume", Price: "18.99", Quantity: 1},
			{Name: "packet of headache pills", Price: "9.75", Quantity: 1},
			{Name: "imported boxes of chocolates", Price: "11.25", Quantity: 3},
		},
		Receipt:    "1 imported bottle of perfume: 32.19\n1 bottle of perfume: 20.89\n1 packet of headache pills: 9.75\n3 imported boxes of chocolates: 35.55\nSales Taxes: 7.90\nTotal: 98.38",
		TotalTax:   "7.90",
		TotalPrice: "98.38",
	}

	FixtureEmpty = Fixture{
		Name:       "empty",
		Receipt:    "Receipt is empty.\nSales Taxes: 0.00\nTotal: 0.00",
		TotalTax:   "0.00",
		TotalPrice: "0.00",
	}
)

// All returns every reference basket.
func All() []Fixture {
	return []Fixture{FixtureEmpty, FixtureDomestic, FixtureImported, FixtureMixed}
}
