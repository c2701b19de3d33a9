package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shopadmin/internal/catalog"
	"shopadmin/internal/models"
)

// Products persists models.Product rows.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

// List returns every product, newest first.
func (s *Products) List(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

// ByID returns ErrNotFound for unknown or malformed ids.
func (s *Products) ByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	n, err := parseID(id)
	if err != nil {
		return p, err
	}
	if err := s.db.WithContext(ctx).First(&p, n).Error; err != nil {
		return p, fmt.Errorf("product %s: %w", id, notFound(err))
	}
	return p, nil
}

// Insert stores a new product from rec. Keys that are not product columns are ignored.
func (s *Products) Insert(ctx context.Context, rec catalog.Record) error {
	cols, err := columns(rec)
	if err != nil {
		return err
	}
	var p models.Product
	applyColumns(&p, cols)
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update changes only the columns present in rec. An unknown id is not an error.
func (s *Products) Update(ctx context.Context, id string, rec catalog.Record) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	cols, err := columns(rec)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}
	err = s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", n).Updates(cols).Error
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	return nil
}

// Delete removes the product; deleting an id that does not exist succeeds.
func (s *Products) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		// nothing can match a malformed id
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, n).Error; err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// columns maps record keys onto product column values.
func columns(rec catalog.Record) (map[string]any, error) {
	cols := map[string]any{}
	for k, v := range rec {
		switch k {
		case "name", "description":
			cols[k] = strings.TrimSpace(v)
		case catalog.ImageField:
			cols[k] = v
		case "price", "quantity":
			n, err := parseInt(k, v)
			if err != nil {
				return nil, err
			}
			cols[k] = n
		case "category_id":
			n, err := parseUint(k, v)
			if err != nil {
				return nil, err
			}
			cols[k] = n
		}
	}
	return cols, nil
}

func applyColumns(p *models.Product, cols map[string]any) {
	for k, v := range cols {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case catalog.ImageField:
			p.Image = v.(string)
		case "price":
			p.Price = v.(int)
		case "quantity":
			p.Quantity = v.(int)
		case "category_id":
			p.CategoryID = v.(uint)
		}
	}
}
