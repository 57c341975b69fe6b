package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SyaefulAxl/meliyah-backend/internal/model"
)

// detailQuery joins each product with its group, type and category. The same
// projection serves both the full listing and the single-product lookup.
const detailQuery = `
	SELECT p.product_id, g.name, g.price, g.unit, p.quantity,
	       t.type_id, c.category_id, t.type_name, c.category_name,
	       p.expiry_date, g.group_id
	FROM products p
	JOIN product_groups g ON p.group_id = g.group_id
	JOIN types t ON g.type_id = t.type_id
	JOIN categories c ON g.category_id = c.category_id`

// ProductRepository defines data access for products (physical lots).
type ProductRepository interface {
	ListDetail(ctx context.Context) ([]model.ProductDetail, error)
	// FindDetailByID returns a slice of zero or one rows. A missing id is not
	// an error: the API reports it as an empty array.
	FindDetailByID(ctx context.Context, id int64) ([]model.ProductDetail, error)
	Create(ctx context.Context, groupID int64, quantity int, expiry time.Time) error
	Update(ctx context.Context, id, groupID int64, quantity int, expiry time.Time) error
	// DeleteWithGroupCleanup removes the product and, when no other product
	// references its group anymore, the group as well. Both statements run in
	// one transaction. Deleting an id that does not exist is a no-op.
	DeleteWithGroupCleanup(ctx context.Context, id int64) error
}

type productRepository struct{ db *sql.DB }

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListDetail(ctx context.Context) ([]model.ProductDetail, error) {
	rows, err := r.db.QueryContext(ctx, detailQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (r *productRepository) FindDetailByID(ctx context.Context, id int64) ([]model.ProductDetail, error) {
	rows, err := r.db.QueryContext(ctx, detailQuery+` WHERE p.product_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func scanDetails(rows *sql.Rows) ([]model.ProductDetail, error) {
	list := make([]model.ProductDetail, 0, 32)
	for rows.Next() {
		var d model.ProductDetail
		if err := rows.Scan(
			&d.ProductID, &d.Name, &d.Price, &d.Unit, &d.Quantity,
			&d.TypeID, &d.CategoryID, &d.TypeName, &d.CategoryName,
			&d.ExpiryDate, &d.GroupID,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *productRepository) Create(ctx context.Context, groupID int64, quantity int, expiry time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (group_id, quantity, expiry_date) VALUES (?, ?, ?)`,
		groupID, quantity, expiry)
	return err
}

func (r *productRepository) Update(ctx context.Context, id, groupID int64, quantity int, expiry time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET group_id = ?, quantity = ?, expiry_date = ? WHERE product_id = ?`,
		groupID, quantity, expiry, id)
	return err
}

func (r *productRepository) DeleteWithGroupCleanup(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var groupID int64
	err = tx.QueryRowContext(ctx,
		`SELECT group_id FROM products WHERE product_id = ?`, id).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		// Already gone — the legacy API answered success here too.
		return tx.Commit()
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM products WHERE product_id = ?`, id); err != nil {
		return err
	}

	var remaining int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE group_id = ?`, groupID).Scan(&remaining); err != nil {
		return err
	}
	if remaining == 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM product_groups WHERE group_id = ?`, groupID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
