package catalog

import (
	"pricecomparator/internal/model"
	"time"
)

// applyDiscounts runs once during New. Only discounts published under the
// product's own store and snapshot date are candidates.
func (s *Store) applyDiscounts() {
	for i := range s.products {
		p := &s.products[i]
		candidates := s.discountsByStoreDate[newStoreDateKey(p.Store, p.Date)]
		best, ok := s.bestDiscount(candidates, p.ProductID, p.Date)
		if ok {
			p.ApplyDiscount(best.PercentageDiscount)
		}
	}
}

// bestDiscount picks the highest percentage among candidates matching
// productID and active on date. Ties keep the earliest loaded discount.
func (s *Store) bestDiscount(candidates []int, productID string, date time.Time) (model.Discount, bool) {
	var (
		best  model.Discount
		found bool
	)
	for _, i := range candidates {
		d := s.discounts[i]
		if d.ProductID != productID || !d.IsActiveOn(date) {
			continue
		}
		if !found || d.PercentageDiscount > best.PercentageDiscount {
			best = d
			found = true
		}
	}
	return best, found
}
