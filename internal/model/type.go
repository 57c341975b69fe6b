package model

// Type is a product type. Each type belongs to exactly one category.
type Type struct {
	TypeID     int64  `json:"type_id"`
	TypeName   string `json:"type_name"`
	CategoryID int64  `json:"category_id"`
}
