package dto

// TypeFilter holds the optional query parameters of GET /api/types.
// A nil CategoryID means "no filter", not "filter by null".
type TypeFilter struct {
	CategoryID *int64 `form:"category_id"`
}

type CategoryResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type TypeResponse struct {
	TypeID     int64  `json:"type_id"`
	TypeName   string `json:"type_name"`
	CategoryID int64  `json:"category_id"`
}
