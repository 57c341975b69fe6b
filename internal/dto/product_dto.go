package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// ProductRequest is the body of POST /api/products and PUT /api/products/:id.
// Validation tags mirror only what the schema enforces (NOT NULL columns and
// the DATE format). GroupID is accepted for backwards compatibility with old
// clients but never trusted: the group is always resolved from the SKU tuple.
type ProductRequest struct {
	Name       string          `json:"name"        validate:"required"`
	Price      decimal.Decimal `json:"price"       validate:"gte=0"`
	Unit       string          `json:"unit"        validate:"required"`
	Quantity   int             `json:"quantity"    validate:"gte=0"`
	TypeID     int64           `json:"type_id"     validate:"required"`
	CategoryID int64           `json:"category_id" validate:"required"`
	ExpiryDate string          `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	GroupID    int64           `json:"group_id"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// ProductRow is one element of the product listing: a product joined with its
// group, type and category.
type ProductRow struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit"`
	Quantity     int             `json:"quantity"`
	TypeID       int64           `json:"type_id"`
	CategoryID   int64           `json:"category_id"`
	TypeName     string          `json:"type_name"`
	CategoryName string          `json:"category_name"`
	ExpiryDate   string          `json:"expiry_date"`
	GroupID      int64           `json:"group_id"`
}

// StatusResponse is the envelope returned by all mutating product endpoints.
type StatusResponse struct {
	Success bool `json:"success"`
}

func OK() StatusResponse { return StatusResponse{Success: true} }
