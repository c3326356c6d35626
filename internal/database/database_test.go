package database

import (
	"context"
	"fmt"
	"os"
	"pricecomparator/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) Database {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	name := fmt.Sprintf("pricecomparator_test_%d", time.Now().UnixNano())
	c, db, err := ConnectDB(ctx, uri, name)
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", uri, err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = c.Disconnect(ctx)
	})
	return db
}

func day(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProductsReplaceAndFindAll(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.ProductsReplace(ctx, "profi", day("2024-01-01"), []model.Product{
		{ProductID: "P1", ProductName: "lapte", Price: 12, Store: "profi", Date: day("2024-01-01")},
	}))
	require.NoError(t, db.ProductsReplace(ctx, "lidl", day("2024-01-01"), []model.Product{
		{ProductID: "P1", ProductName: "lapte", Price: 10, Store: "lidl", Date: day("2024-01-01")},
		{ProductID: "P2", ProductName: "paine", Price: 5, Store: "lidl", Date: day("2024-01-01")},
	}))

	ps, err := db.ProductsFindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "lidl", ps[0].Store)
	assert.Equal(t, "P1", ps[0].ProductID)
	assert.Equal(t, "P2", ps[1].ProductID)
	assert.Equal(t, "profi", ps[2].Store)
	assert.True(t, ps[0].Date.Equal(day("2024-01-01")))
	assert.Nil(t, ps[0].DiscountPercentage)

	// Replacing a snapshot drops its previous rows.
	require.NoError(t, db.ProductsReplace(ctx, "lidl", day("2024-01-01"), []model.Product{
		{ProductID: "P3", ProductName: "oua", Price: 15, Store: "lidl", Date: day("2024-01-01")},
	}))
	ps, err = db.ProductsFindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "P3", ps[0].ProductID)
}

func TestDiscountsReplaceAndFindAll(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.DiscountsReplace(ctx, "lidl", day("2024-01-01"), []model.Discount{
		{
			ProductID: "P1", PercentageDiscount: 20, Store: "lidl",
			FromDate: day("2024-01-01"), ToDate: day("2024-01-03"), DiscountDate: day("2024-01-01"),
		},
	}))

	ds, err := db.DiscountsFindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 20, ds[0].PercentageDiscount)
	assert.True(t, ds[0].IsActiveOn(day("2024-01-02")))
}

func TestImportSnapshots(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	products := []model.Product{
		{ProductID: "P1", Price: 10, Store: "lidl", Date: day("2024-01-01")},
		{ProductID: "P1", Price: 12, Store: "profi", Date: day("2024-01-01")},
		{ProductID: "P2", Price: 5, Store: "lidl", Date: day("2024-01-01")},
		{ProductID: "P1", Price: 9, Store: "lidl", Date: day("2024-01-08")},
	}
	discounts := []model.Discount{
		{ProductID: "P1", PercentageDiscount: 10, Store: "lidl", DiscountDate: day("2024-01-01")},
	}
	require.NoError(t, db.ImportSnapshots(ctx, products, discounts))
	// A second import of the same snapshots does not duplicate rows.
	require.NoError(t, db.ImportSnapshots(ctx, products, discounts))

	ps, err := db.ProductsFindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, []float64{10, 5, 9, 12}, []float64{ps[0].Price, ps[1].Price, ps[2].Price, ps[3].Price})

	ds, err := db.DiscountsFindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ds, 1)
}
