package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a physical batch/lot of a product group with its own quantity
// and expiry date.
type Product struct {
	ProductID  int64     `json:"product_id"`
	GroupID    int64     `json:"group_id"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// ProductDetail is the denormalized read model returned by product listings:
// one row per product joined with its group, type and category.
type ProductDetail struct {
	ProductID    int64
	Name         string
	Price        decimal.Decimal
	Unit         string
	Quantity     int
	TypeID       int64
	CategoryID   int64
	TypeName     string
	CategoryName string
	ExpiryDate   time.Time
	GroupID      int64
}
