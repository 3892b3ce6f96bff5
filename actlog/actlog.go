// Package actlog appends one line per completed user action to a plain
// text file. Writes are best-effort: a failed write is reported on the
// application log and never blocks or rolls back the data operation it
// describes.
package actlog

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is an append-only activity log. A nil Logger or an empty path
// disables logging entirely.
type Logger struct {
	path string
	now  func() time.Time
}

func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Record appends an action line for the given user.
func (l *Logger) Record(user, action string) {
	if l == nil || l.path == "" {
		return
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		log.Warn("failed to open activity log", "file", l.path, "error", err)
		return
	}
	defer f.Close() //nolint:errcheck

	line := fmt.Sprintf("Usuario: %s, Fecha: %s, Acción: %s\n",
		user, l.now().Format("2006-01-02 15:04:05"), action)
	if _, err := f.WriteString(line); err != nil {
		log.Warn("failed to write activity log", "file", l.path, "error", err)
	}
}
