package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsUnknownDriver(t *testing.T) {
	db, err := Connect("mysql", "whatever")
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), `"mysql"`)
}

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := Connect(DriverSQLite, "file::memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
}
