package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"pricecomparator/internal/model"
	"time"
)

func (db Database) DiscountsFindAll(ctx context.Context) ([]model.Discount, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "store", Value: 1},
		{Key: "discount_date", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := db.Collection(CollectionDiscounts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Discounts")
	}
	ds := []model.Discount{}
	if err = cur.All(ctx, &ds); err != nil {
		return nil, errors.Wrap(err, "error getting all Discounts from cursor")
	}
	return ds, nil
}

func (db Database) DiscountsReplace(ctx context.Context, store string, date time.Time, ds []model.Discount) error {
	coll := db.Collection(CollectionDiscounts)
	if _, err := coll.DeleteMany(ctx, bson.M{"store": store, "discount_date": date}); err != nil {
		return errors.Wrapf(err, "error deleting Discounts for store: %s, date: %s", store, date.Format(model.DateLayout))
	}
	if len(ds) == 0 {
		return nil
	}
	docs := make([]any, len(ds))
	for i := range ds {
		docs[i] = ds[i]
	}
	_, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return errors.Wrapf(err, "error inserting %d Discounts for store: %s, date: %s",
		len(ds), store, date.Format(model.DateLayout))
}
