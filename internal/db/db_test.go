package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPool(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := sqlx.NewDb(mockDB, "sqlmock")

	ApplyPool(database, PoolConfig{MaxOpenConns: 12, MaxIdleConns: 4, ConnMaxLifetime: time.Minute})

	assert.Equal(t, 12, database.Stats().MaxOpenConnections)
}

func TestApplyPool_ZeroKeepsDefaults(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := sqlx.NewDb(mockDB, "sqlmock")

	ApplyPool(database, PoolConfig{})

	assert.Equal(t, 0, database.Stats().MaxOpenConnections)
}
