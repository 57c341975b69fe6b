package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, category_name FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).
			AddRow(1, "Food").
			AddRow(2, "Beverage"))

	list, err := NewCategoryRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Food", list[0].CategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryListPropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, category_name FROM categories`)).
		WillReturnError(errors.New("connection lost"))

	_, err = NewCategoryRepository(db).List(context.Background())
	assert.EqualError(t, err, "connection lost")
}
