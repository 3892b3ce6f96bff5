package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// AddUser registers a new user. Usernames are unique: a duplicate rolls
// the transaction back and reports ErrAlreadyExists.
func (s *Store) AddUser(ctx context.Context, username, password string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := User{Username: username, Password: password}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to add user %q: %w", username, err)
		}
		return nil
	})
}

// Authenticate matches username and password by exact equality and
// returns the canonical username on success, ErrNotFound otherwise.
func (s *Store) Authenticate(ctx context.Context, username, password string) (string, error) {
	var user User
	err := s.db.WithContext(ctx).
		Where("nombre_usuario = ? AND contrasena = ?", username, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to authenticate user: %w", err)
	}
	return user.Username, nil
}

// ListUsers returns every registered user.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ResetUsers deletes every user. Succeeds even when the table is already
// empty.
func (s *Store) ResetUsers(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&User{}).Error; err != nil {
			return fmt.Errorf("failed to reset users: %w", err)
		}
		return nil
	})
}
