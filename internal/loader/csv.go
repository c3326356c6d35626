package loader

import (
	"encoding/csv"
	"github.com/pkg/errors"
	"io"
	"math"
	"pricecomparator/internal/model"
	"strconv"
	"strings"
	"time"
)

const csvSeparator = ';'

// csvRows binds every record of r to the header row by column name.
func csvRows(r io.Reader, required ...string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = csvSeparator
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "error reading csv header")
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range required {
		if _, ok := columns[c]; !ok {
			return nil, errors.Errorf("missing csv column: %s", c)
		}
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "error reading csv record")
		}
		row := make(map[string]string, len(columns))
		for c, i := range columns {
			if i < len(record) {
				row[c] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
}

func parseProducts(r io.Reader, store string, date time.Time) ([]model.Product, error) {
	rows, err := csvRows(r, "product_id", "price")
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(rows))
	for i, row := range rows {
		quantity, err := parseOptionalFloat(row["package_quantity"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: package_quantity", i+1)
		}
		price, err := parseOptionalFloat(row["price"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: price", i+1)
		}
		products = append(products, model.Product{
			ProductID:       row["product_id"],
			ProductName:     row["product_name"],
			Category:        row["product_category"],
			Brand:           row["brand"],
			PackageQuantity: quantity,
			PackageUnit:     row["package_unit"],
			Price:           price,
			Currency:        row["currency"],
			Store:           store,
			Date:            date,
		})
	}
	return products, nil
}

func parseDiscounts(r io.Reader, store string, date time.Time) ([]model.Discount, error) {
	rows, err := csvRows(r, "product_id", "from_date", "to_date", "percentage_of_discount")
	if err != nil {
		return nil, err
	}
	discounts := make([]model.Discount, 0, len(rows))
	for i, row := range rows {
		quantity, err := parseOptionalFloat(row["package_quantity"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: package_quantity", i+1)
		}
		from, err := parseOptionalDate(row["from_date"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: from_date", i+1)
		}
		to, err := parseOptionalDate(row["to_date"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: to_date", i+1)
		}
		percentage, err := parseOptionalInt(row["percentage_of_discount"])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: percentage_of_discount", i+1)
		}
		if percentage < 0 || percentage > 100 {
			return nil, errors.Errorf("row %d: percentage_of_discount out of range: %d", i+1, percentage)
		}
		discounts = append(discounts, model.Discount{
			ProductID:          row["product_id"],
			ProductName:        row["product_name"],
			Brand:              row["brand"],
			PackageQuantity:    quantity,
			PackageUnit:        row["package_unit"],
			Category:           row["product_category"],
			FromDate:           from,
			ToDate:             to,
			PercentageDiscount: percentage,
			Store:              store,
			DiscountDate:       date,
		})
	}
	return discounts, nil
}

// parseOptionalFloat accepts an empty cell as zero. Prices and quantities
// must be finite and not negative.
func parseOptionalFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.Errorf("invalid value: %s", s)
	}
	return v, nil
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(model.DateLayout, s)
}
