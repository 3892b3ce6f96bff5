package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// AddProduct inserts a new product and returns its assigned id.
func (s *Store) AddProduct(ctx context.Context, p Product) (int64, error) {
	p.ID = 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to add product %q: %w", p.Name, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// ListProducts returns every product ordered by name.
func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("nombre ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindProducts searches by exact id (when the term is all digits), then
// by case-insensitive substring match on name and on category. The
// result is the order-preserving union of the three matches: the id hit
// first, then name matches, then category matches, without duplicates.
func (s *Store) FindProducts(ctx context.Context, term string) ([]Product, error) {
	db := s.db.WithContext(ctx)
	results := []Product{}

	if isDigits(term) {
		// A term too large for int64 cannot be an existing id.
		if id, err := strconv.ParseInt(term, 10, 64); err == nil {
			var p Product
			err := db.First(&p, id).Error
			switch {
			case err == nil:
				results = append(results, p)
			case errors.Is(err, gorm.ErrRecordNotFound):
				// fall through to substring matching
			default:
				return nil, fmt.Errorf("failed to search products by id: %w", err)
			}
		}
	}

	pattern := "%" + strings.ToLower(term) + "%"

	var byName []Product
	if err := db.Where("LOWER(nombre) LIKE ?", pattern).Order("id ASC").Find(&byName).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	for _, p := range byName {
		if !lo.Contains(results, p) {
			results = append(results, p)
		}
	}

	var byCategory []Product
	if err := db.Where("LOWER(categoria) LIKE ?", pattern).Order("id ASC").Find(&byCategory).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by category: %w", err)
	}
	for _, p := range byCategory {
		if !lo.Contains(results, p) {
			results = append(results, p)
		}
	}

	return results, nil
}

// UpdateProduct replaces all five data fields of the product with the
// given id. A missing id rolls the transaction back and reports
// ErrNotFound.
func (s *Store) UpdateProduct(ctx context.Context, id int64, p Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A map keeps zero values (quantity 0, price 0) in the update.
		res := tx.Model(&Product{}).Where("id = ?", id).Updates(map[string]any{
			"nombre":      p.Name,
			"descripcion": p.Description,
			"cantidad":    p.Quantity,
			"precio":      p.Price,
			"categoria":   p.Category,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteProduct removes the product with the given id and returns its
// name so the caller can report what was deleted. A missing id reports
// ErrNotFound.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Product
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to look up product %d: %w", id, err)
		}
		name = p.Name
		if err := tx.Delete(&Product{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// ListLowStock returns products with quantity at or below threshold,
// ordered by quantity ascending with name as tie-break.
func (s *Store) ListLowStock(ctx context.Context, threshold int) ([]Product, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Where("cantidad <= ?", threshold).
		Order("cantidad ASC, nombre ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
