package query

import (
	"pricecomparator/internal/model"
	"time"
)

// OptimizeBasket prices the basket in every store that carries all of
// productIDs. With a zero date each product's latest row per store is used,
// otherwise only rows from that exact date count. Stores missing any product
// are left out of the result.
func (e Engine) OptimizeBasket(productIDs []string, date time.Time) map[string]float64 {
	all := e.Catalog.AllProducts()

	stores := make(map[string]struct{})
	rows := make(map[string]map[string]model.Product, len(productIDs))
	for _, id := range productIDs {
		if _, seen := rows[id]; seen {
			continue
		}
		byStore := make(map[string]model.Product)
		for _, p := range all {
			if p.ProductID != id {
				continue
			}
			if !date.IsZero() && !p.Date.Equal(date) {
				continue
			}
			stores[p.Store] = struct{}{}
			if cur, ok := byStore[p.Store]; date.IsZero() && ok && !p.Date.After(cur.Date) {
				continue
			}
			byStore[p.Store] = p
		}
		rows[id] = byStore
	}

	totals := make(map[string]float64)
	for store := range stores {
		var (
			total    float64
			complete = true
		)
		for _, id := range productIDs {
			p, ok := rows[id][store]
			if !ok {
				complete = false
				break
			}
			total += p.EffectivePrice()
		}
		if complete {
			totals[store] = total
		}
	}
	return totals
}
