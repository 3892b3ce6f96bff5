package console

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/almacen/actlog"
	"github.com/lromero/almacen/session"
	"github.com/lromero/almacen/store"
)

// newTestConsole wires a console to scripted input and a capture buffer.
func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer, *session.Service) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "almacen.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	require.NoError(t, st.EnsureSchema(context.Background()))

	svc := session.New(st)
	out := &bytes.Buffer{}
	c := &Console{
		svc: svc,
		act: actlog.New(""),
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
	}
	return c, out, svc
}

func TestSearchProductsRendersMatches(t *testing.T) {
	c, out, svc := newTestConsole(t, "manza\n")

	_, err := svc.AddProduct(context.Background(), store.Product{
		Name: "Manzana", Quantity: 10, Price: 2.5, Category: "Fruta",
	})
	require.NoError(t, err)

	require.NoError(t, c.searchProducts(context.Background()))
	assert.Contains(t, out.String(), "Manzana")
	assert.Contains(t, out.String(), "Fruta")
}

func TestSearchProductsCancelled(t *testing.T) {
	c, out, _ := newTestConsole(t, "salir\n")

	require.NoError(t, c.searchProducts(context.Background()))
	assert.NotContains(t, out.String(), "No hay productos")
}

func TestDeleteProductNotFound(t *testing.T) {
	c, out, _ := newTestConsole(t, "99\n")

	require.NoError(t, c.deleteProduct(context.Background()))
	assert.Contains(t, out.String(), "No se encontró ningún producto con el ID 99")
}

func TestLowStockReportRePromptsOnBadInput(t *testing.T) {
	c, out, svc := newTestConsole(t, "abc\n-3\n5\n")

	_, err := svc.AddProduct(context.Background(), store.Product{
		Name: "Pan", Quantity: 3, Price: 3.2, Category: "Panaderia",
	})
	require.NoError(t, err)

	require.NoError(t, c.lowStockReport(context.Background()))
	assert.Contains(t, out.String(), "Pan")
	// Both invalid entries must have been rejected before the report ran.
	assert.Contains(t, out.String(), "número entero válido")
	assert.Contains(t, out.String(), "no puede ser menor")
}

func TestRenderProductsEmpty(t *testing.T) {
	c, out, _ := newTestConsole(t, "")

	c.renderProducts(nil)
	assert.Contains(t, out.String(), "No hay productos para mostrar")
}
