package model

import "github.com/shopspring/decimal"

// ProductGroup is a distinct sellable SKU definition shared by one or more
// physical lots. Category is stored denormalized next to the type so that
// product listings join without walking through types.
type ProductGroup struct {
	GroupID    int64           `json:"group_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
	TypeID     int64           `json:"type_id"`
	CategoryID int64           `json:"category_id"`
}

// GroupKey is the natural key of a product group. Two groups with the same
// key describe the same logical SKU.
type GroupKey struct {
	Name       string
	Price      decimal.Decimal
	Unit       string
	TypeID     int64
	CategoryID int64
}
