// Package alert keeps the registry of target-price watches. Alerts move one
// way, from active to triggered, and are only evaluated when asked to.
package alert

import (
	"github.com/pkg/errors"
	"pricecomparator/internal/misc"
	"pricecomparator/internal/model"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var ErrNotFound = errors.New("price alert not found")

type ProductSource interface {
	AllProducts() []model.Product
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
}

type Tracker struct {
	// lastID is accessed atomically and must stay first to be 64-bit
	// aligned on 32-bit platforms.
	lastID int64

	products ProductSource
	logger   logger
	now      func() time.Time

	mu     sync.RWMutex
	alerts map[int64]*model.PriceAlert
}

func NewTracker(products ProductSource, l logger) *Tracker {
	return &Tracker{
		products: products,
		logger:   l,
		now:      time.Now,
		alerts:   make(map[int64]*model.PriceAlert),
	}
}

// Create registers a watch and evaluates it once before it becomes visible.
// A nil store watches every store.
func (t *Tracker) Create(productID string, store *string, targetPrice float64, userID string) model.PriceAlert {
	products := t.products.AllProducts()

	productName := model.UnknownProductName
	for _, p := range products {
		if p.ProductID == productID {
			productName = p.ProductName
			break
		}
	}
	if userID == "" {
		userID = model.AnonymousUserID
	}

	a := &model.PriceAlert{
		ID:          atomic.AddInt64(&t.lastID, 1),
		ProductID:   productID,
		ProductName: productName,
		Store:       store,
		TargetPrice: targetPrice,
		UserID:      userID,
		IsActive:    true,
		CreatedAt:   t.now(),
	}
	if store != nil {
		s := *store
		a.Store = &s
	}
	t.logger.Infof("Create: Created price alert ID: %d, ProductID: %s, Product: %s, TargetPrice: %.2f, UserID: %s",
		a.ID, a.ProductID, misc.StringLimit(a.ProductName, 45), a.TargetPrice, a.UserID)
	t.evaluate(a, products)

	t.mu.Lock()
	t.alerts[a.ID] = a
	t.mu.Unlock()
	return a.Clone()
}

// List returns alerts ordered by id, optionally narrowed to one user and to
// active alerts only.
func (t *Tracker) List(userID string, activeOnly bool) []model.PriceAlert {
	t.mu.RLock()
	defer t.mu.RUnlock()

	as := []model.PriceAlert{}
	for _, id := range misc.SortedKeys(t.alerts) {
		a := t.alerts[id]
		if userID != "" && a.UserID != userID {
			continue
		}
		if activeOnly && !a.IsActive {
			continue
		}
		as = append(as, a.Clone())
	}
	return as
}

func (t *Tracker) Get(id int64) (model.PriceAlert, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, ok := t.alerts[id]
	if !ok {
		return model.PriceAlert{}, errors.Wrapf(ErrNotFound, "ID: %d", id)
	}
	return a.Clone(), nil
}

func (t *Tracker) Delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.alerts[id]; !ok {
		return errors.Wrapf(ErrNotFound, "ID: %d", id)
	}
	delete(t.alerts, id)
	t.logger.Debugf("Delete: Deleted price alert ID: %d", id)
	return nil
}

// CheckAll evaluates every active alert against the current catalog and
// returns the ones that triggered during this call.
func (t *Tracker) CheckAll() []model.PriceAlert {
	products := t.products.AllProducts()

	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int64, 0, len(t.alerts))
	for id, a := range t.alerts {
		if a.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	triggered := []model.PriceAlert{}
	for _, id := range ids {
		a := t.alerts[id]
		if t.evaluate(a, products) {
			triggered = append(triggered, a.Clone())
		}
	}
	t.logger.Debugf("CheckAll: Checked %d active alert(s), %d triggered", len(ids), len(triggered))
	return triggered
}

// evaluate triggers a on the first matching row priced at or below the
// target. Rows are scanned in catalog load order.
func (t *Tracker) evaluate(a *model.PriceAlert, products []model.Product) bool {
	if !a.IsActive {
		return false
	}
	for _, p := range products {
		if p.ProductID != a.ProductID {
			continue
		}
		if a.Store != nil && !strings.EqualFold(p.Store, *a.Store) {
			continue
		}
		price := p.EffectivePrice()
		if price <= a.TargetPrice {
			now := t.now()
			a.IsActive = false
			a.TriggeredAt = &now
			t.logger.Infof("evaluate: Alert triggered ID: %d, Product: %s is now %.2f at %s",
				a.ID, misc.StringLimit(p.ProductName, 45), price, p.Store)
			return true
		}
	}
	return false
}
