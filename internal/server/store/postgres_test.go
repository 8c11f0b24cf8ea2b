package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBackend_LoadPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT data FROM collections WHERE name = \$1`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`[]`)))

	b := NewPostgresBackendWithDB(db)

	raw, err := b.Load(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_LoadAbsentIsNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT data FROM collections WHERE name = \$1`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	b := NewPostgresBackendWithDB(db)

	raw, err := b.Load(context.Background(), "users")
	require.NoError(t, err)
	assert.Nil(t, raw)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_ReplaceIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM collections WHERE name = \$1`).
		WithArgs("users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO collections`).
		WithArgs("users", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b := NewPostgresBackendWithDB(db)

	require.NoError(t, b.Replace(context.Background(), "users", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_ReplaceRollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM collections WHERE name = \$1`).
		WithArgs("users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO collections`).
		WithArgs("users", []byte(`[]`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	b := NewPostgresBackendWithDB(db)

	require.Error(t, b.Replace(context.Background(), "users", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}
