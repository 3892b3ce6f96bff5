package console

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// cancelWord aborts the current prompt flow before any store call is
// issued.
const cancelWord = "salir"

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) errorln(s string) {
	fmt.Fprintln(c.out, errorStyle.Render(s))
}

func (c *Console) successln(s string) {
	fmt.Fprintln(c.out, successStyle.Render(s))
}

func (c *Console) warnln(s string) {
	fmt.Fprintln(c.out, warnStyle.Render(s))
}

// readLine prints the prompt and returns the next trimmed input line.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, promptStyle.Render(prompt))
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a line without echoing it when stdin is a terminal.
// Non-terminal input (tests, pipes) falls back to a plain line read.
func (c *Console) readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return c.readLine(prompt)
	}
	fmt.Fprint(c.out, promptStyle.Render(prompt))
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// readInt re-prompts until a valid integer satisfying min is entered, or
// the user cancels. The second return value reports cancellation.
func (c *Console) readInt(prompt string, min int) (int, bool, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		if strings.EqualFold(line, cancelWord) {
			return 0, true, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.errorln("Debe ingresar un número entero válido.")
			continue
		}
		if n < min {
			c.errorln(fmt.Sprintf("El valor no puede ser menor que %d.", min))
			continue
		}
		return n, false, nil
	}
}

// readFloat re-prompts until a valid non-negative number is entered, or
// the user cancels.
func (c *Console) readFloat(prompt string) (float64, bool, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		if strings.EqualFold(line, cancelWord) {
			return 0, true, nil
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			c.errorln("Debe ingresar un número válido (ej. 10, 15.50).")
			continue
		}
		if f < 0 {
			c.errorln("El valor no puede ser negativo.")
			continue
		}
		return f, false, nil
	}
}

// confirm asks a yes/no question; only "si"/"s" (case-insensitive)
// counts as yes.
func (c *Console) confirm(prompt string) (bool, error) {
	line, err := c.readLine(prompt + " (si/no): ")
	if err != nil {
		return false, err
	}
	line = strings.ToLower(line)
	return line == "si" || line == "s" || line == "sí", nil
}

func (c *Console) pause() {
	_, _ = c.readLine("\nPresione Enter para continuar...")
}
