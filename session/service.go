// Package session is the thin façade the console layer talks to. It
// validates input at the boundary and delegates every data operation to
// the store; it keeps no state of its own.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/lromero/almacen/store"
)

// Validation errors reported before any store call is made. The caller
// re-prompts on these without any state change having happened.
var (
	ErrEmptyUsername    = errors.New("username must not be empty")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptySearchTerm  = errors.New("search term must not be empty")
	ErrEmptyProductName = errors.New("product name must not be empty")
	ErrEmptyCategory    = errors.New("category must not be empty")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrInvalidThreshold = errors.New("threshold must not be negative")
)

// DefaultDescription is stored when a product is added or updated
// without a description.
const DefaultDescription = "Sin descripción"

// Service wraps the store with boundary validation.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Login validates that both credentials are present, then delegates to
// the store. The returned username is the canonical identity for the
// session; the caller holds it as an opaque handle.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	if password == "" {
		return "", ErrEmptyPassword
	}
	return s.store.Authenticate(ctx, username, password)
}

// Register creates a new account. The password confirmation check lives
// here, not in the store.
func (s *Service) Register(ctx context.Context, username, password, confirm string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return s.store.AddUser(ctx, username, password)
}

// Users returns every registered user.
func (s *Service) Users(ctx context.Context) ([]store.User, error) {
	return s.store.ListUsers(ctx)
}

// ResetUsers wipes the users table. Confirmation is the caller's job.
func (s *Service) ResetUsers(ctx context.Context) error {
	return s.store.ResetUsers(ctx)
}

// AddProduct validates the product fields and inserts it, defaulting an
// empty description to DefaultDescription.
func (s *Service) AddProduct(ctx context.Context, p store.Product) (int64, error) {
	if err := validateProduct(&p); err != nil {
		return 0, err
	}
	return s.store.AddProduct(ctx, p)
}

// UpdateProduct validates the replacement fields and updates the product
// with the given id.
func (s *Service) UpdateProduct(ctx context.Context, id int64, p store.Product) error {
	if err := validateProduct(&p); err != nil {
		return err
	}
	return s.store.UpdateProduct(ctx, id, p)
}

// DeleteProduct removes a product and returns its name.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (string, error) {
	return s.store.DeleteProduct(ctx, id)
}

// Products returns all products ordered by name.
func (s *Service) Products(ctx context.Context) ([]store.Product, error) {
	return s.store.ListProducts(ctx)
}

// Search runs the id/name/category union search on a trimmed term.
func (s *Service) Search(ctx context.Context, term string) ([]store.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}
	return s.store.FindProducts(ctx, term)
}

// LowStockReport returns products at or below the threshold. The
// threshold must be non-negative.
func (s *Service) LowStockReport(ctx context.Context, threshold int) ([]store.Product, error) {
	if threshold < 0 {
		return nil, ErrInvalidThreshold
	}
	return s.store.ListLowStock(ctx, threshold)
}

// Categories returns all category names alphabetically.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.store.ListCategories(ctx)
}

// AddCategory registers a category name; duplicates are a no-op.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategory
	}
	return s.store.AddCategory(ctx, name)
}

func validateProduct(p *store.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(p.Description) == "" {
		p.Description = DefaultDescription
	}
	return nil
}
