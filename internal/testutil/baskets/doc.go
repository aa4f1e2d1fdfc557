// Package baskets provides test fixtures for pricing tests: a fluent builder
// for model.Items and the reference baskets with their expected receipts.
//
// Example usage:
//
//	items := baskets.NewBuilder(t).
//		WithFixture(baskets.FixtureImported).
//		With("music CD", "14.99", 1).
//		Items()
//
// Builder methods fail the test immediately on invalid input, so tests never
// need to check construction errors themselves.
package baskets
