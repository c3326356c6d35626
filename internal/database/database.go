package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionProducts  = "products"
	CollectionDiscounts = "discounts"
)

type Database struct {
	*mongo.Database
}

var storeDateIndex = mongo.IndexModel{
	Keys: bson.D{
		{Key: "store", Value: 1},
		{Key: "date", Value: 1},
	},
}

func ConnectDB(ctx context.Context, dbURI string, name string) (*mongo.Client, Database, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURI))
	if err != nil {
		return nil, Database{}, errors.Wrapf(err, "error connecting to %s", dbURI)
	}
	if err = c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(ctx)
		return nil, Database{}, errors.Wrapf(err, "error pinging %s", dbURI)
	}

	db := Database{c.Database(name)}
	_, err = db.Collection(CollectionProducts).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			storeDateIndex,
			{Keys: bson.D{{Key: "product_id", Value: 1}}},
		},
	)
	if err != nil {
		_ = c.Disconnect(ctx)
		return nil, Database{}, errors.Wrapf(err, "error creating %s indexes", CollectionProducts)
	}

	_, err = db.Collection(CollectionDiscounts).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "store", Value: 1},
					{Key: "discount_date", Value: 1},
				},
			},
			{Keys: bson.D{{Key: "product_id", Value: 1}}},
		},
	)
	if err != nil {
		_ = c.Disconnect(ctx)
		return nil, Database{}, errors.Wrapf(err, "error creating %s indexes", CollectionDiscounts)
	}

	return c, db, nil
}
