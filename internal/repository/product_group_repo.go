package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SyaefulAxl/meliyah-backend/internal/model"
)

// ProductGroupRepository defines data access for product groups, the distinct
// SKU definitions that products attach to.
type ProductGroupRepository interface {
	// FindByTuple returns the id of the first group matching the natural key,
	// or found=false when no group matches. When legacy duplicate rows exist
	// the first one in table order wins.
	FindByTuple(ctx context.Context, key model.GroupKey) (groupID int64, found bool, err error)

	// Upsert inserts a group for the given key, or returns the id of the
	// existing one when the unique tuple key already holds a row. The
	// statement is atomic, so two concurrent callers racing on the same new
	// tuple still end up with a single group.
	Upsert(ctx context.Context, key model.GroupKey) (groupID int64, err error)
}

type productGroupRepository struct{ db *sql.DB }

func NewProductGroupRepository(db *sql.DB) ProductGroupRepository {
	return &productGroupRepository{db: db}
}

func (r *productGroupRepository) FindByTuple(ctx context.Context, key model.GroupKey) (int64, bool, error) {
	const query = `
		SELECT group_id FROM product_groups
		WHERE name = ? AND price = ? AND unit = ? AND type_id = ? AND category_id = ?
		LIMIT 1`

	var groupID int64
	err := r.db.QueryRowContext(ctx, query,
		key.Name, key.Price, key.Unit, key.TypeID, key.CategoryID).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return groupID, true, nil
}

func (r *productGroupRepository) Upsert(ctx context.Context, key model.GroupKey) (int64, error) {
	// LAST_INSERT_ID(group_id) makes the duplicate path report the id of the
	// row that already holds the tuple instead of 0.
	const query = `
		INSERT INTO product_groups (name, price, unit, type_id, category_id)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE group_id = LAST_INSERT_ID(group_id)`

	res, err := r.db.ExecContext(ctx, query,
		key.Name, key.Price, key.Unit, key.TypeID, key.CategoryID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
