package repository

import (
	"context"
	"database/sql"

	"github.com/SyaefulAxl/meliyah-backend/internal/model"
)

// CategoryRepository defines read access to the categories reference table.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct{ db *sql.DB }

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_id, category_name FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Category, 0, 16)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
