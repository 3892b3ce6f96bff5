package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/almacen/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "almacen.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	require.NoError(t, st.EnsureSchema(context.Background()))

	return New(st)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana", "x1", "x1"))

	user, err := svc.Login(ctx, "ana", "x1")
	require.NoError(t, err)
	assert.Equal(t, "ana", user)

	_, err = svc.Login(ctx, "ana", "wrong")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "empty username", username: "  ", password: "x", confirm: "x", wantErr: ErrEmptyUsername},
		{name: "empty password", username: "ana", password: "", confirm: "", wantErr: ErrEmptyPassword},
		{name: "confirmation mismatch", username: "ana", password: "x1", confirm: "x2", wantErr: ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.password, tt.confirm)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// None of the rejected attempts may have created a user.
	users, err := svc.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana", "x1", "x1"))
	err := svc.Register(ctx, "ana", "y2", "y2")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestAddProductDefaultsDescription(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddProduct(ctx, store.Product{
		Name: "Manzana", Quantity: 10, Price: 2.5, Category: "Fruta",
	})
	require.NoError(t, err)

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, id, products[0].ID)
	assert.Equal(t, DefaultDescription, products[0].Description)
}

func TestAddProductValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		product store.Product
		wantErr error
	}{
		{name: "empty name", product: store.Product{Name: " ", Quantity: 1, Price: 1, Category: "Otros"}, wantErr: ErrEmptyProductName},
		{name: "negative quantity", product: store.Product{Name: "Pan", Quantity: -1, Price: 1, Category: "Otros"}, wantErr: ErrNegativeQuantity},
		{name: "negative price", product: store.Product{Name: "Pan", Quantity: 1, Price: -0.5, Category: "Otros"}, wantErr: ErrNegativePrice},
		{name: "empty category", product: store.Product{Name: "Pan", Quantity: 1, Price: 1, Category: ""}, wantErr: ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(ctx, tt.product)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchRejectsEmptyTerm(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptySearchTerm)
}

func TestLowStockReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.LowStockReport(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = svc.AddProduct(ctx, store.Product{Name: "Pan", Quantity: 3, Price: 3.2, Category: "Panaderia"})
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, store.Product{Name: "Leche", Quantity: 40, Price: 1.8, Category: "Lácteo"})
	require.NoError(t, err)

	report, err := svc.LowStockReport(ctx, 5)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "Pan", report[0].Name)
}

func TestUpdateProductNotFoundPassesThrough(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateProduct(context.Background(), 42, store.Product{
		Name: "Pan", Quantity: 1, Price: 1, Category: "Otros",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
