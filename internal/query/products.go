package query

import (
	"pricecomparator/internal/misc"
	"pricecomparator/internal/model"
	"sort"
	"strings"
	"time"
)

// Products lists the catalog, optionally narrowed to one store and/or category.
func (e Engine) Products(store, category string) []model.Product {
	var ps []model.Product
	if store != "" {
		ps = e.Catalog.ProductsByStore(store)
	} else {
		ps = e.Catalog.AllProducts()
	}
	if category == "" {
		return ps
	}
	filtered := []model.Product{}
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// BestDiscounts returns up to limit discounted products, highest percentage first.
func (e Engine) BestDiscounts(limit int) []model.Product {
	ps := []model.Product{}
	for _, p := range e.Catalog.AllProducts() {
		if p.HasDiscount() {
			ps = append(ps, p)
		}
	}
	sort.SliceStable(ps, func(i, j int) bool {
		return *ps[i].DiscountPercentage > *ps[j].DiscountPercentage
	})
	return misc.Head(ps, limit)
}

// BestValuePerUnit ranks products with a package quantity by price per unit,
// cheapest first.
func (e Engine) BestValuePerUnit(category string, limit int) []model.Product {
	var candidates []model.Product
	if strings.TrimSpace(category) != "" {
		candidates = e.Catalog.ProductsByCategory(category)
	} else {
		candidates = e.Catalog.AllProducts()
	}

	type ranked struct {
		p   model.Product
		ppu float64
	}
	var rs []ranked
	for _, p := range candidates {
		if ppu, ok := p.PricePerUnit(); ok {
			rs = append(rs, ranked{p: p, ppu: ppu})
		}
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].ppu < rs[j].ppu })

	ps := make([]model.Product, 0, len(rs))
	for _, r := range rs {
		ps = append(ps, r.p)
	}
	return misc.Head(ps, limit)
}

// CompareProductPrices finds a product by name in every store. With a zero
// date each store is compared on its own latest snapshot, so stores may be
// compared across different calendar days. At most one product per store is
// returned: the first name match in load order.
func (e Engine) CompareProductPrices(productName string, date time.Time) map[string]model.Product {
	byStore := make(map[string]model.Product)

	if date.IsZero() {
		latest := e.Catalog.LatestDates()
		for _, store := range misc.SortedKeys(latest) {
			for _, p := range e.Catalog.ProductsByStoreAndDate(store, latest[store]) {
				if strings.EqualFold(p.ProductName, productName) {
					byStore[store] = p
					break
				}
			}
		}
		return byStore
	}

	for _, p := range e.Catalog.AllProducts() {
		if !p.Date.Equal(date) || !strings.EqualFold(p.ProductName, productName) {
			continue
		}
		if _, ok := byStore[p.Store]; !ok {
			byStore[p.Store] = p
		}
	}
	return byStore
}

// PriceHistory maps each snapshot date to the effective price of productID.
// Without a store filter, rows from different stores on the same date
// overwrite each other in load order.
func (e Engine) PriceHistory(productID, store string) []model.PricePoint {
	var ps []model.Product
	if strings.TrimSpace(store) != "" {
		ps = e.Catalog.ProductsByStore(store)
	} else {
		ps = e.Catalog.AllProducts()
	}

	byDate := make(map[string]model.PricePoint)
	for _, p := range ps {
		if p.ProductID != productID {
			continue
		}
		byDate[p.Date.Format(model.DateLayout)] = model.PricePoint{Date: p.Date, Price: p.EffectivePrice()}
	}

	history := make([]model.PricePoint, 0, len(byDate))
	for _, k := range misc.SortedKeys(byDate) {
		history = append(history, byDate[k])
	}
	return history
}

// NewDiscountedProducts returns discounted products whose snapshot date is on
// or after since.
func (e Engine) NewDiscountedProducts(since time.Time) []model.Product {
	ps := []model.Product{}
	for _, p := range e.Catalog.AllProducts() {
		if p.HasDiscount() && !p.Date.Before(since) {
			ps = append(ps, p)
		}
	}
	return ps
}
