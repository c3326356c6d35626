// Package catalog holds the product and discount snapshots loaded at startup.
// A Store is immutable once built, so it is safe for concurrent readers.
package catalog

import (
	"pricecomparator/internal/model"
	"strings"
	"time"
)

type storeDateKey struct {
	store string
	date  string
}

func newStoreDateKey(store string, date time.Time) storeDateKey {
	return storeDateKey{store: strings.ToLower(store), date: date.Format(model.DateLayout)}
}

type Store struct {
	products             []model.Product
	discounts            []model.Discount
	productsByStoreDate  map[storeDateKey][]int
	discountsByStoreDate map[storeDateKey][]int
}

// New indexes products and discounts by store and snapshot date and attaches
// the best active discount to every product. The inputs are copied.
func New(products []model.Product, discounts []model.Discount) *Store {
	s := &Store{
		products:             cloneProducts(products),
		discounts:            append([]model.Discount(nil), discounts...),
		productsByStoreDate:  make(map[storeDateKey][]int),
		discountsByStoreDate: make(map[storeDateKey][]int),
	}
	for i, p := range s.products {
		k := newStoreDateKey(p.Store, p.Date)
		s.productsByStoreDate[k] = append(s.productsByStoreDate[k], i)
	}
	for i, d := range s.discounts {
		k := newStoreDateKey(d.Store, d.DiscountDate)
		s.discountsByStoreDate[k] = append(s.discountsByStoreDate[k], i)
	}
	s.applyDiscounts()
	return s
}

func (s *Store) ProductCount() int  { return len(s.products) }
func (s *Store) DiscountCount() int { return len(s.discounts) }

func (s *Store) AllProducts() []model.Product {
	return cloneProducts(s.products)
}

func (s *Store) AllDiscounts() []model.Discount {
	return append([]model.Discount{}, s.discounts...)
}

func (s *Store) ProductsByStoreAndDate(store string, date time.Time) []model.Product {
	idx := s.productsByStoreDate[newStoreDateKey(store, date)]
	ps := make([]model.Product, 0, len(idx))
	for _, i := range idx {
		ps = append(ps, s.products[i].Clone())
	}
	return ps
}

func (s *Store) ProductsByStore(store string) []model.Product {
	return s.filterProducts(func(p model.Product) bool {
		return strings.EqualFold(p.Store, store)
	})
}

func (s *Store) ProductsByCategory(category string) []model.Product {
	return s.filterProducts(func(p model.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *Store) DiscountsByStore(store string) []model.Discount {
	ds := []model.Discount{}
	for _, d := range s.discounts {
		if strings.EqualFold(d.Store, store) {
			ds = append(ds, d)
		}
	}
	return ds
}

// LatestDates maps every store name, as it appears in the snapshots, to its
// most recent snapshot date.
func (s *Store) LatestDates() map[string]time.Time {
	latest := make(map[string]time.Time)
	for _, p := range s.products {
		if d, ok := latest[p.Store]; !ok || p.Date.After(d) {
			latest[p.Store] = p.Date
		}
	}
	return latest
}

func (s *Store) filterProducts(keep func(model.Product) bool) []model.Product {
	ps := []model.Product{}
	for _, p := range s.products {
		if keep(p) {
			ps = append(ps, p.Clone())
		}
	}
	return ps
}

func cloneProducts(products []model.Product) []model.Product {
	ps := make([]model.Product, len(products))
	for i, p := range products {
		ps[i] = p.Clone()
	}
	return ps
}
