package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"pricecomparator/internal/model"
	"time"
)

// ProductsFindAll returns every stored catalog row ordered by store then
// snapshot date. Insertion order breaks ties.
func (db Database) ProductsFindAll(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "store", Value: 1},
		{Key: "date", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := db.Collection(CollectionProducts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Products")
	}
	ps := []model.Product{}
	if err = cur.All(ctx, &ps); err != nil {
		return nil, errors.Wrap(err, "error getting all Products from cursor")
	}
	return ps, nil
}

// ProductsReplace drops the snapshot stored for store and date and inserts ps
// in its place.
func (db Database) ProductsReplace(ctx context.Context, store string, date time.Time, ps []model.Product) error {
	coll := db.Collection(CollectionProducts)
	if _, err := coll.DeleteMany(ctx, bson.M{"store": store, "date": date}); err != nil {
		return errors.Wrapf(err, "error deleting Products for store: %s, date: %s", store, date.Format(model.DateLayout))
	}
	if len(ps) == 0 {
		return nil
	}
	docs := make([]any, len(ps))
	for i := range ps {
		docs[i] = ps[i]
	}
	_, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return errors.Wrapf(err, "error inserting %d Products for store: %s, date: %s",
		len(ps), store, date.Format(model.DateLayout))
}
