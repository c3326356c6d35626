package model

import "time"

const DateLayout = "2006-01-02"

type Product struct {
	ProductID          string    `bson:"product_id" json:"product_id"`
	ProductName        string    `bson:"product_name" json:"product_name"`
	Category           string    `bson:"product_category" json:"product_category"`
	Brand              string    `bson:"brand" json:"brand"`
	PackageQuantity    float64   `bson:"package_quantity" json:"package_quantity"`
	PackageUnit        string    `bson:"package_unit" json:"package_unit"`
	Price              float64   `bson:"price" json:"price"`
	Currency           string    `bson:"currency" json:"currency"`
	Store              string    `bson:"store" json:"store"`
	Date               time.Time `bson:"date" json:"date"`
	DiscountPercentage *int      `bson:"-" json:"discount_percentage"`
	DiscountedPrice    *float64  `bson:"-" json:"discounted_price"`
}

// PricePerUnit is undefined for a missing or zero package quantity.
func (p Product) PricePerUnit() (float64, bool) {
	if p.PackageQuantity == 0 {
		return 0, false
	}
	return p.Price / p.PackageQuantity, true
}

// EffectivePrice is the discounted price when one was applied, else the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

func (p Product) HasDiscount() bool {
	return p.DiscountPercentage != nil && *p.DiscountPercentage > 0
}

func (p *Product) ApplyDiscount(percentage int) {
	discounted := p.Price * (1 - float64(percentage)/100)
	p.DiscountPercentage = &percentage
	p.DiscountedPrice = &discounted
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	if p.DiscountPercentage != nil {
		pct := *p.DiscountPercentage
		p.DiscountPercentage = &pct
	}
	if p.DiscountedPrice != nil {
		dp := *p.DiscountedPrice
		p.DiscountedPrice = &dp
	}
	return p
}
