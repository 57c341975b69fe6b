package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDetailScansJoinRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"product_id", "name", "price", "unit", "quantity",
		"type_id", "category_id", "type_name", "category_name",
		"expiry_date", "group_id",
	}
	expiry := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT p.product_id, g.name, g.price, g.unit, p.quantity`)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Apple", "2.50", "kg", 10, 1, 1, "Fresh Produce", "Food", expiry, 3))

	list, err := NewProductRepository(db).ListDetail(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Apple", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.NewFromFloat(2.50)))
	assert.Equal(t, expiry, list[0].ExpiryDate)
	assert.Equal(t, int64(3), list[0].GroupID)
}

func TestFindDetailByIDMissingYieldsEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"product_id", "name", "price", "unit", "quantity",
		"type_id", "category_id", "type_name", "category_name",
		"expiry_date", "group_id",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.product_id = ?`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(cols))

	list, err := NewProductRepository(db).FindDetailByID(context.Background(), 99)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCreateInsertsProductRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expiry := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO products (group_id, quantity, expiry_date) VALUES (?, ?, ?)`)).
		WithArgs(int64(3), 10, expiry).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = NewProductRepository(db).Create(context.Background(), 3, 10, expiry)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRewritesGroupQuantityAndExpiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expiry := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET group_id = ?, quantity = ?, expiry_date = ? WHERE product_id = ?`)).
		WithArgs(int64(3), 4, expiry, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewProductRepository(db).Update(context.Background(), 1, 3, 4, expiry)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLastProductAlsoDeletesGroup(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT group_id FROM products WHERE product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE group_id = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_groups WHERE group_id = ?`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewProductRepository(db).DeleteWithGroupCleanup(context.Background(), 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteKeepsGroupWhileOtherProductsReferenceIt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT group_id FROM products WHERE product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE group_id = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectCommit()

	err = NewProductRepository(db).DeleteWithGroupCleanup(context.Background(), 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingProductIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT group_id FROM products WHERE product_id = ?`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectCommit()

	err = NewProductRepository(db).DeleteWithGroupCleanup(context.Background(), 99)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
