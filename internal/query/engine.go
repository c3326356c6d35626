// Package query implements the read-only comparisons over a loaded catalog:
// best discounts, unit value ranking, cross-store comparison, price and
// discount history, and basket pricing. Results are stable with respect to
// catalog load order.
package query

import (
	"pricecomparator/internal/model"
	"time"
)

type Catalog interface {
	ProductCount() int
	DiscountCount() int
	AllProducts() []model.Product
	AllDiscounts() []model.Discount
	ProductsByStoreAndDate(store string, date time.Time) []model.Product
	ProductsByStore(store string) []model.Product
	ProductsByCategory(category string) []model.Product
	DiscountsByStore(store string) []model.Discount
	LatestDates() map[string]time.Time
}

type Engine struct {
	Catalog Catalog
}
