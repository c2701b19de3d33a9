package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopadmin/internal/catalog"
	"shopadmin/internal/db"
	"shopadmin/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("sqlite::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func TestProductsInsertAndList(t *testing.T) {
	ctx := context.Background()
	s := NewProducts(openTestDB(t))

	require.NoError(t, s.Insert(ctx, catalog.Record{
		"name": " Mug ", "price": "120", "quantity": "3", "category_id": "2",
		"image": "http://localhost:3000/images/cat.png", "csrf": "ignored",
	}))
	require.NoError(t, s.Insert(ctx, catalog.Record{"name": "Plate", "image": ""}))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Plate", items[0].Name, "newest first")
	assert.Equal(t, "", items[0].Image)
	assert.Equal(t, 0, items[0].Price)

	assert.Equal(t, "Mug", items[1].Name)
	assert.Equal(t, 120, items[1].Price)
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, uint(2), items[1].CategoryID)
	assert.Equal(t, "http://localhost:3000/images/cat.png", items[1].Image)
}

func TestProductsInsertInvalidNumber(t *testing.T) {
	s := NewProducts(openTestDB(t))
	err := s.Insert(context.Background(), catalog.Record{"name": "Mug", "price": "cheap"})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestProductsUpdateKeepsMissingColumns(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	s := NewProducts(gdb)

	p := models.Product{Name: "Mug", Price: 100, Image: "http://localhost:3000/images/old.png"}
	require.NoError(t, gdb.Create(&p).Error)
	id := strconv.FormatUint(uint64(p.ID), 10)

	require.NoError(t, s.Update(ctx, id, catalog.Record{"name": "Big mug", "price": "150"}))

	got, err := s.ByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Big mug", got.Name)
	assert.Equal(t, 150, got.Price)
	assert.Equal(t, "http://localhost:3000/images/old.png", got.Image)

	require.NoError(t, s.Update(ctx, id, catalog.Record{"image": "http://localhost:3000/images/new.png"}))
	got, err = s.ByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Big mug", got.Name)
	assert.Equal(t, "http://localhost:3000/images/new.png", got.Image)
}

func TestProductsByIDNotFound(t *testing.T) {
	s := NewProducts(openTestDB(t))

	_, err := s.ByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ByID(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductsDelete(t *testing.T) {
	ctx := context.Background()
	s := NewProducts(openTestDB(t))

	require.NoError(t, s.Insert(ctx, catalog.Record{"name": "Mug"}))
	require.NoError(t, s.Delete(ctx, "1"))
	require.NoError(t, s.Delete(ctx, "1"), "deleting twice is fine")
	require.NoError(t, s.Delete(ctx, "abc"))

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCategoriesEnsureAndList(t *testing.T) {
	ctx := context.Background()
	s := NewCategories(openTestDB(t))

	n, err := s.Ensure(ctx, "Kitchen", "Garden", " ")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Ensure(ctx, "Garden", "Books")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	items, err := s.List(ctx)
	require.NoError(t, err)
	var names []string
	for _, c := range items {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Books", "Garden", "Kitchen"}, names)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := NewUsers(openTestDB(t))

	u, err := s.Create(ctx, "admin", "pw")
	require.NoError(t, err)
	assert.True(t, models.CheckPassword(u.PasswordHash, "pw"))

	_, err = s.Create(ctx, "admin", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.Create(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrInvalidField)

	got, err := s.ByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.ByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
