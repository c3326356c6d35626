package database

import (
	"context"
	"pricecomparator/internal/model"
	"time"
)

type snapshotKey struct {
	store string
	date  time.Time
}

// ImportSnapshots replaces every store snapshot present in products and
// discounts, keeping the given row order within each snapshot. Snapshots not
// mentioned are left untouched.
func (db Database) ImportSnapshots(ctx context.Context, products []model.Product, discounts []model.Discount) error {
	var pKeys []snapshotKey
	pGroups := make(map[snapshotKey][]model.Product)
	for _, p := range products {
		k := snapshotKey{store: p.Store, date: p.Date}
		if _, ok := pGroups[k]; !ok {
			pKeys = append(pKeys, k)
		}
		pGroups[k] = append(pGroups[k], p)
	}
	for _, k := range pKeys {
		if err := db.ProductsReplace(ctx, k.store, k.date, pGroups[k]); err != nil {
			return err
		}
	}

	var dKeys []snapshotKey
	dGroups := make(map[snapshotKey][]model.Discount)
	for _, d := range discounts {
		k := snapshotKey{store: d.Store, date: d.DiscountDate}
		if _, ok := dGroups[k]; !ok {
			dKeys = append(dKeys, k)
		}
		dGroups[k] = append(dGroups[k], d)
	}
	for _, k := range dKeys {
		if err := db.DiscountsReplace(ctx, k.store, k.date, dGroups[k]); err != nil {
			return err
		}
	}
	return nil
}
