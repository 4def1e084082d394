package migrations

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsesDialectPrimaryKey(t *testing.T) {
	tests := []struct {
		driver string
		pk     string
	}{
		{"sqlite", `id INTEGER PRIMARY KEY AUTOINCREMENT`},
		{"postgres", `id BIGSERIAL PRIMARY KEY`},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			mock.MatchExpectationsInOrder(true)

			for _, table := range []string{"accounts", "suppliers", "medicines", "equipment", "maintenance_records", "purchase_orders"} {
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ` + table + ` \(\s+` + tt.pk).
					WillReturnResult(sqlmock.NewResult(0, 0))
			}
			for i := 0; i < 4; i++ {
				mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
			}

			require.NoError(t, Run(sqlx.NewDb(db, tt.driver)))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS accounts`).WillReturnError(errors.New("read-only database"))

	err = Run(sqlx.NewDb(db, "sqlite"))
	assert.ErrorContains(t, err, "read-only database")
	assert.NoError(t, mock.ExpectationsWereMet())
}
