package repository

import (
	"context"
	"database/sql"

	"github.com/SyaefulAxl/meliyah-backend/internal/model"
)

// TypeRepository defines read access to the types reference table.
type TypeRepository interface {
	// List returns all types, optionally restricted to one category.
	// A nil categoryID means no filter.
	List(ctx context.Context, categoryID *int64) ([]model.Type, error)
}

type typeRepository struct{ db *sql.DB }

func NewTypeRepository(db *sql.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) List(ctx context.Context, categoryID *int64) ([]model.Type, error) {
	query := `SELECT type_id, type_name, category_id FROM types`
	args := []interface{}{}
	if categoryID != nil {
		query += ` WHERE category_id = ?`
		args = append(args, *categoryID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Type, 0, 16)
	for rows.Next() {
		var t model.Type
		if err := rows.Scan(&t.TypeID, &t.TypeName, &t.CategoryID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
