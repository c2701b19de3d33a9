package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/models"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := Open("sqlite::memory:")
	require.NoError(t, err)

	for _, m := range []any{&models.User{}, &models.Category{}, &models.Product{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "image"))
}

func TestOpenEmptyDSN(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
