package model

import "time"

type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

type DiscountPoint struct {
	Date       time.Time `json:"date"`
	Percentage int       `json:"percentage"`
}
