package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost/hireme"))
	assert.True(t, IsPostgres("postgresql://u:p@localhost/hireme"))
	assert.False(t, IsPostgres("hireme.db"))
	assert.False(t, IsPostgres("file:test?mode=memory"))
}

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:db_%s?mode=memory&cache=shared", t.Name()), false)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
