package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopadmin/internal/models"
)

type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

// List returns all categories ordered by name.
func (s *Categories) List(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// Ensure creates the named categories that do not exist yet and reports how many were added.
func (s *Categories) Ensure(ctx context.Context, names ...string) (int64, error) {
	var rows []models.Category
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			rows = append(rows, models.Category{Name: n})
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("ensure categories: %w", res.Error)
	}
	return res.RowsAffected, nil
}
