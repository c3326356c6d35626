package model

import "time"

type Discount struct {
	ProductID          string    `bson:"product_id" json:"product_id"`
	ProductName        string    `bson:"product_name" json:"product_name"`
	Brand              string    `bson:"brand" json:"brand"`
	PackageQuantity    float64   `bson:"package_quantity" json:"package_quantity"`
	PackageUnit        string    `bson:"package_unit" json:"package_unit"`
	Category           string    `bson:"product_category" json:"product_category"`
	FromDate           time.Time `bson:"from_date" json:"from_date"`
	ToDate             time.Time `bson:"to_date" json:"to_date"`
	PercentageDiscount int       `bson:"percentage_of_discount" json:"percentage_of_discount"`
	Store              string    `bson:"store" json:"store"`
	DiscountDate       time.Time `bson:"discount_date" json:"discount_date"`
}

// IsActiveOn reports whether date lies within [FromDate, ToDate]. A discount
// missing either bound is never active.
func (d Discount) IsActiveOn(date time.Time) bool {
	if date.IsZero() || d.FromDate.IsZero() || d.ToDate.IsZero() {
		return false
	}
	return !date.Before(d.FromDate) && !date.After(d.ToDate)
}
