package query

import (
	"pricecomparator/internal/misc"
	"pricecomparator/internal/model"
	"sort"
	"strings"
	"time"
)

func (e Engine) AllDiscounts() []model.Discount {
	return e.Catalog.AllDiscounts()
}

func (e Engine) DiscountsByStore(store string) []model.Discount {
	return e.Catalog.DiscountsByStore(store)
}

func (e Engine) ActiveDiscounts(date time.Time) []model.Discount {
	return e.filterDiscounts(func(d model.Discount) bool { return d.IsActiveOn(date) })
}

// NewDiscounts returns discounts published on or after since.
func (e Engine) NewDiscounts(since time.Time) []model.Discount {
	return e.filterDiscounts(func(d model.Discount) bool { return !d.DiscountDate.Before(since) })
}

func (e Engine) DiscountsByCategory(category string) []model.Discount {
	return e.filterDiscounts(func(d model.Discount) bool { return strings.EqualFold(d.Category, category) })
}

func (e Engine) DiscountsForProduct(productID string) []model.Discount {
	return e.filterDiscounts(func(d model.Discount) bool { return d.ProductID == productID })
}

// BestDiscountOffers returns up to limit discount records, highest percentage first.
func (e Engine) BestDiscountOffers(limit int) []model.Discount {
	ds := e.Catalog.AllDiscounts()
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].PercentageDiscount > ds[j].PercentageDiscount
	})
	return misc.Head(ds, limit)
}

// ProductsWithBestDiscounts maps each product id among the top limit offers
// to its highest offer, then returns the catalog rows of the offer's store
// on which that offer is active, ordered by the offer percentage.
func (e Engine) ProductsWithBestDiscounts(limit int) []model.Product {
	best := make(map[string]model.Discount)
	for _, d := range e.BestDiscountOffers(limit) {
		if cur, ok := best[d.ProductID]; !ok || d.PercentageDiscount > cur.PercentageDiscount {
			best[d.ProductID] = d
		}
	}

	ps := []model.Product{}
	for _, p := range e.Catalog.AllProducts() {
		d, ok := best[p.ProductID]
		if !ok || !strings.EqualFold(p.Store, d.Store) || !d.IsActiveOn(p.Date) {
			continue
		}
		ps = append(ps, p)
	}
	sort.SliceStable(ps, func(i, j int) bool {
		return best[ps[i].ProductID].PercentageDiscount > best[ps[j].ProductID].PercentageDiscount
	})
	return misc.Head(ps, limit)
}

// ActiveDiscountForProduct returns the first loaded discount for productID in
// store that is active on date.
func (e Engine) ActiveDiscountForProduct(productID, store string, date time.Time) (model.Discount, bool) {
	for _, d := range e.Catalog.AllDiscounts() {
		if d.ProductID == productID && strings.EqualFold(d.Store, store) && d.IsActiveOn(date) {
			return d, true
		}
	}
	return model.Discount{}, false
}

// DiscountHistory expands every discount of productID into one entry per
// calendar day of its range. Overlapping discounts overwrite each other in
// load order; the last one wins, not the highest.
func (e Engine) DiscountHistory(productID, store string) []model.DiscountPoint {
	var ds []model.Discount
	if strings.TrimSpace(store) != "" {
		ds = e.Catalog.DiscountsByStore(store)
	} else {
		ds = e.Catalog.AllDiscounts()
	}

	byDate := make(map[string]model.DiscountPoint)
	for _, d := range ds {
		if d.ProductID != productID || d.FromDate.IsZero() || d.ToDate.IsZero() {
			continue
		}
		for day := d.FromDate; !day.After(d.ToDate); day = day.AddDate(0, 0, 1) {
			byDate[day.Format(model.DateLayout)] = model.DiscountPoint{Date: day, Percentage: d.PercentageDiscount}
		}
	}

	history := make([]model.DiscountPoint, 0, len(byDate))
	for _, k := range misc.SortedKeys(byDate) {
		history = append(history, byDate[k])
	}
	return history
}

func (e Engine) filterDiscounts(keep func(model.Discount) bool) []model.Discount {
	ds := []model.Discount{}
	for _, d := range e.Catalog.AllDiscounts() {
		if keep(d) {
			ds = append(ds, d)
		}
	}
	return ds
}
