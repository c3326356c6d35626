package model

import "time"

const (
	UnknownProductName = "Unknown Product"
	AnonymousUserID    = "anonymous"
)

type PriceAlert struct {
	ID          int64      `json:"id"`
	ProductID   string     `json:"product_id"`
	ProductName string     `json:"product_name"`
	Store       *string    `json:"store"`
	TargetPrice float64    `json:"target_price"`
	UserID      string     `json:"user_id"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	TriggeredAt *time.Time `json:"triggered_at"`
}

func (a PriceAlert) Clone() PriceAlert {
	if a.Store != nil {
		s := *a.Store
		a.Store = &s
	}
	if a.TriggeredAt != nil {
		t := *a.TriggeredAt
		a.TriggeredAt = &t
	}
	return a
}
