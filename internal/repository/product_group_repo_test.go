package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/SyaefulAxl/meliyah-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appleKey() model.GroupKey {
	return model.GroupKey{
		Name:       "Apple",
		Price:      decimal.NewFromFloat(2.50),
		Unit:       "kg",
		TypeID:     1,
		CategoryID: 1,
	}
}

func TestFindByTupleReturnsFirstMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	key := appleKey()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT group_id FROM product_groups`)).
		WithArgs(key.Name, key.Price, key.Unit, key.TypeID, key.CategoryID).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(3))

	groupID, found, err := NewProductGroupRepository(db).FindByTuple(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), groupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTupleMissReportsNotFoundWithoutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT group_id FROM product_groups`)).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}))

	_, found, err := NewProductGroupRepository(db).FindByTuple(context.Background(), appleKey())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpsertReturnsInsertedOrExistingID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	key := appleKey()
	// LAST_INSERT_ID(group_id) makes the duplicate path surface the existing
	// row's id through LastInsertId, same as a fresh insert.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_groups`)).
		WithArgs(key.Name, key.Price, key.Unit, key.TypeID, key.CategoryID).
		WillReturnResult(sqlmock.NewResult(7, 1))

	groupID, err := NewProductGroupRepository(db).Upsert(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, int64(7), groupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
