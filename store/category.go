package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListCategories returns all category names in alphabetical order.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&Category{}).
		Order("nombre ASC").
		Pluck("nombre", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return names, nil
}

// AddCategory inserts a category name. Inserting an existing name is a
// no-op that still reports success, unlike AddUser's uniqueness handling.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Category{Name: name}).Error
		if err != nil {
			return fmt.Errorf("failed to add category %q: %w", name, err)
		}
		return nil
	})
}
