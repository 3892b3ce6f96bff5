package actlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	l := New(path)
	l.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	l.Record("ana", "Producto agregado")
	l.Record("ana", "Producto eliminado")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Usuario: ana, Fecha: 2025-03-14 15:09:26, Acción: Producto agregado\n"+
			"Usuario: ana, Fecha: 2025-03-14 15:09:26, Acción: Producto eliminado\n",
		string(data))
}

func TestRecordIsBestEffort(t *testing.T) {
	// An unwritable path must not panic or return an error to the caller.
	l := New(filepath.Join(t.TempDir(), "missing", "nested", "log.txt"))
	l.Record("ana", "Producto agregado")
}

func TestRecordDisabled(t *testing.T) {
	New("").Record("ana", "noop")

	var l *Logger
	l.Record("ana", "noop") // nil receiver is a no-op too
}
