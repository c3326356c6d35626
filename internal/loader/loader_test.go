package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	applog "pricecomparator/internal/logger"
	"pricecomparator/internal/model"
)

const productsCSV = `product_id;product_name;product_category;brand;package_quantity;package_unit;price;currency
P001;lapte zuzu;lactate;Zuzu;1;l;9.90;RON
P002;ouă mărimea M;ouă;Ferma Veche;10;buc;13.50;RON
P003;pâine albă;panificație;Vel Pitar;;buc;4.20;RON
`

const discountsCSV = `product_id;product_name;brand;package_quantity;package_unit;product_category;from_date;to_date;percentage_of_discount
P001;lapte zuzu;Zuzu;1;l;lactate;2025-05-01;2025-05-07;10
P002;ouă mărimea M;Ferma Veche;10;buc;ouă;2025-05-01;2025-05-07;25
`

func testLoader() Loader {
	return Loader{Logger: applog.NewLogger(applog.LevelOff, io.Discard), Workers: 2}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseProducts(t *testing.T) {
	ps, err := parseProducts(strings.NewReader(productsCSV), "lidl", mustDate(t, "2025-05-01"))
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, "P001", ps[0].ProductID)
	assert.Equal(t, "lapte zuzu", ps[0].ProductName)
	assert.Equal(t, "lactate", ps[0].Category)
	assert.Equal(t, 1.0, ps[0].PackageQuantity)
	assert.Equal(t, 9.90, ps[0].Price)
	assert.Equal(t, "RON", ps[0].Currency)
	assert.Equal(t, "lidl", ps[0].Store)
	assert.Equal(t, mustDate(t, "2025-05-01"), ps[0].Date)
	assert.Nil(t, ps[0].DiscountPercentage)
	assert.Zero(t, ps[2].PackageQuantity)
}

func TestParseProductsErrors(t *testing.T) {
	_, err := parseProducts(strings.NewReader("product_id;price\nP1;abc\n"), "lidl", mustDate(t, "2025-05-01"))
	assert.Error(t, err)

	_, err = parseProducts(strings.NewReader("product_id;name\nP1;x\n"), "lidl", mustDate(t, "2025-05-01"))
	assert.Error(t, err)

	_, err = parseProducts(strings.NewReader(""), "lidl", mustDate(t, "2025-05-01"))
	assert.Error(t, err)
}

func TestParseProductsRejectsInvalidNumbers(t *testing.T) {
	for _, cells := range []string{"NaN;1", "Inf;1", "-1;1", "1;NaN", "1;-4.5", "1;+Inf"} {
		in := "product_id;package_quantity;price\nP1;" + cells + "\n"
		_, err := parseProducts(strings.NewReader(in), "lidl", mustDate(t, "2025-05-01"))
		assert.Error(t, err, cells)
	}
}

func TestLoadSkipsFileWithInvalidQuantity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lidl_2025-05-01.csv", productsCSV)
	writeFile(t, dir, "profi_2025-05-01.csv",
		"product_id;package_quantity;price\nA;1;5\nB;NaN;2\nC;-1;4\n")

	products, _, err := testLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "lidl", p.Store)
	}
}

func TestParseDiscounts(t *testing.T) {
	ds, err := parseDiscounts(strings.NewReader(discountsCSV), "lidl", mustDate(t, "2025-05-01"))
	require.NoError(t, err)
	require.Len(t, ds, 2)

	assert.Equal(t, "P002", ds[1].ProductID)
	assert.Equal(t, 25, ds[1].PercentageDiscount)
	assert.Equal(t, mustDate(t, "2025-05-01"), ds[1].FromDate)
	assert.Equal(t, mustDate(t, "2025-05-07"), ds[1].ToDate)
	assert.Equal(t, "lidl", ds[1].Store)
	assert.Equal(t, mustDate(t, "2025-05-01"), ds[1].DiscountDate)
}

func TestParseDiscountsRejectsOutOfRangePercentage(t *testing.T) {
	in := "product_id;from_date;to_date;percentage_of_discount\nP1;2025-05-01;2025-05-02;120\n"
	_, err := parseDiscounts(strings.NewReader(in), "lidl", mustDate(t, "2025-05-01"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lidl_2025-05-01.csv", productsCSV)
	writeFile(t, dir, "lidl_discounts_2025-05-01.csv", discountsCSV)
	writeFile(t, dir, "nested/profi_2025-05-08.csv", productsCSV)
	writeFile(t, dir, "broken_2025-05-01.csv", "product_id;price\nP1;not-a-number\n")
	writeFile(t, dir, "notes.csv", productsCSV)
	writeFile(t, dir, "readme.txt", "ignored")

	products, discounts, err := testLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Len(t, products, 6)
	assert.Len(t, discounts, 2)

	// lexical walk order: lidl_2025-05-01.csv before nested/profi_2025-05-08.csv
	assert.Equal(t, "lidl", products[0].Store)
	assert.Equal(t, "profi", products[5].Store)
	assert.Equal(t, mustDate(t, "2025-05-08"), products[5].Date)
}

func TestLoadMissingDirectory(t *testing.T) {
	products, discounts, err := testLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, discounts)
}

func TestLoadSkipsUnreadableDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lidl_2025-05-01.csv", productsCSV)
	writeFile(t, dir, "zz_locked/profi_2025-05-01.csv", productsCSV)
	locked := filepath.Join(dir, "zz_locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	products, _, err := testLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "lidl", products[0].Store)
	if os.Geteuid() != 0 {
		// root ignores the directory mode
		assert.Len(t, products, 3)
	}
}

func TestLoadCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lidl_2025-05-01.csv", productsCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := testLoader().Load(ctx, dir)
	assert.Error(t, err)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return d
}
