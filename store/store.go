package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound reports that the targeted row does not exist. It is a
	// normal negative result, not a fault.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists reports a uniqueness violation. Callers recover
	// differently from it than from a generic failure.
	ErrAlreadyExists = errors.New("already exists")
)

// Store owns the on-disk schema and every read/write operation against
// it. All mutating operations run inside a transaction and either commit
// fully or leave prior state unchanged.
type Store struct {
	db *gorm.DB
}

// New opens the SQLite database at path, creating the file if needed.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		// The console owns the terminal; gorm must not write to it.
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// EnsureSchema creates the users, categorias and productos tables if they
// are absent and seeds the default categories the first time the
// categorias table comes up empty. It is safe to call on every start and
// never drops or rewrites existing data.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if err := db.AutoMigrate(&User{}, &Category{}, &Product{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Category{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if count > 0 {
			return nil
		}
		seed := lo.Map(DefaultCategories, func(name string, _ int) Category {
			return Category{Name: name}
		})
		if err := tx.Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
		return nil
	})
}
