// Package console implements the interactive menus of the inventory
// tool. It formats for display and blocks on terminal input; all data
// operations go through the session service, which returns structured
// results and typed failures for this layer to render.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/lromero/almacen/actlog"
	"github.com/lromero/almacen/session"
	"github.com/lromero/almacen/store"
)

// Console drives the blocking prompt loop. One user command runs to
// completion before the next is accepted.
type Console struct {
	svc *session.Service
	act *actlog.Logger
	in  *bufio.Reader
	out io.Writer
}

func New(svc *session.Service, act *actlog.Logger) *Console {
	return &Console{
		svc: svc,
		act: act,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Run shows the login menu and, after a successful login, the main menu.
// It returns nil when the user quits and an error only on input failure.
func (c *Console) Run(ctx context.Context) error {
	user, err := c.loginMenu(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if user == "" {
		c.warnln("Saliendo de la aplicación.")
		return nil
	}
	if err := c.mainMenu(ctx, user); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loginMenu loops until a login succeeds (returning the canonical
// username) or the user quits (returning "").
func (c *Console) loginMenu(ctx context.Context) (string, error) {
	for {
		c.println(titleStyle.Render("\n=== Gestión de Inventario ==="))
		c.println(menuStyle.Render("1. Alta de usuario"))
		c.println(menuStyle.Render("2. Iniciar sesión"))
		c.println(menuStyle.Render("3. Resetear usuarios"))
		c.println(menuStyle.Render("4. Salir"))

		choice, err := c.readLine("Selecciona una opción (1-4): ")
		if err != nil {
			return "", err
		}

		switch choice {
		case "1":
			if err := c.register(ctx); err != nil {
				return "", err
			}
		case "2":
			user, err := c.login(ctx)
			if err != nil {
				return "", err
			}
			if user != "" {
				return user, nil
			}
		case "3":
			if err := c.resetUsers(ctx); err != nil {
				return "", err
			}
		case "4":
			return "", nil
		default:
			c.errorln("Opción inválida. Seleccione un número entre 1 y 4.")
		}
	}
}

func (c *Console) register(ctx context.Context) error {
	c.println(titleStyle.Render("\n--- Alta de Nuevo Usuario ---"))

	username, err := c.readLine("Ingrese un nombre de usuario: ")
	if err != nil {
		return err
	}

	password, err := c.readPassword("Ingrese contraseña (no se mostrará en pantalla): ")
	if err != nil {
		return err
	}
	confirm, err := c.readPassword("Repita la contraseña para confirmar: ")
	if err != nil {
		return err
	}

	switch err := c.svc.Register(ctx, username, password, confirm); {
	case err == nil:
		c.successln("Usuario registrado con éxito.")
	case errors.Is(err, session.ErrEmptyUsername):
		c.errorln("El nombre de usuario no puede estar vacío.")
	case errors.Is(err, session.ErrEmptyPassword):
		c.errorln("La contraseña no puede estar vacía.")
	case errors.Is(err, session.ErrPasswordMismatch):
		c.errorln("Las contraseñas no coinciden. Intente de nuevo.")
	case errors.Is(err, store.ErrAlreadyExists):
		c.errorln("El nombre de usuario ya existe. Elija otro nombre.")
	default:
		c.errorln("No se pudo registrar el usuario: " + err.Error())
	}
	return nil
}

func (c *Console) login(ctx context.Context) (string, error) {
	c.println(titleStyle.Render("\n--- Inicio de Sesión ---"))

	username, err := c.readLine("Ingrese su usuario: ")
	if err != nil {
		return "", err
	}
	password, err := c.readPassword("Contraseña: ")
	if err != nil {
		return "", err
	}

	user, err := c.svc.Login(ctx, username, password)
	switch {
	case err == nil:
		c.successln("Bienvenido, " + user + ".")
		return user, nil
	case errors.Is(err, session.ErrEmptyUsername), errors.Is(err, session.ErrEmptyPassword):
		c.errorln("Usuario y contraseña no pueden estar vacíos.")
	case errors.Is(err, store.ErrNotFound):
		c.errorln("Usuario o contraseña incorrecta, intente nuevamente.")
	default:
		c.errorln("No se pudo iniciar sesión: " + err.Error())
	}
	return "", nil
}

func (c *Console) resetUsers(ctx context.Context) error {
	c.println(titleStyle.Render("\n--- Resetear Usuarios ---"))

	ok, err := c.confirm("Esto elimina TODOS los usuarios. ¿Está seguro?")
	if err != nil {
		return err
	}
	if !ok {
		c.warnln("Operación cancelada.")
		return nil
	}

	if err := c.svc.ResetUsers(ctx); err != nil {
		c.errorln("No se pudieron resetear los usuarios: " + err.Error())
		return nil
	}
	c.successln("Usuarios reseteados con éxito.")
	return nil
}

// mainMenu runs the inventory menu for a logged-in user. Every completed
// action is appended to the activity log.
func (c *Console) mainMenu(ctx context.Context, user string) error {
	for {
		c.println(titleStyle.Render("\n=== Gestión de Inventario ==="))
		c.println("Bienvenido, " + user)
		c.println(menuStyle.Render("1. Agregar nuevo producto"))
		c.println(menuStyle.Render("2. Ver todos los productos"))
		c.println(menuStyle.Render("3. Buscar producto"))
		c.println(menuStyle.Render("4. Eliminar producto"))
		c.println(menuStyle.Render("5. Modificar producto"))
		c.println(menuStyle.Render("6. Reporte de stock bajo"))
		c.println(menuStyle.Render("7. Salir"))
		c.println(menuStyle.Render("8. Ayuda"))

		choice, err := c.readLine("Selecciona una opción (1-8): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addProduct(ctx)
			c.act.Record(user, "Producto agregado")
		case "2":
			err = c.listProducts(ctx)
			c.act.Record(user, "Productos vistos")
		case "3":
			err = c.searchProducts(ctx)
			c.act.Record(user, "Producto buscado")
		case "4":
			err = c.deleteProduct(ctx)
			c.act.Record(user, "Producto eliminado")
		case "5":
			err = c.updateProduct(ctx)
			c.act.Record(user, "Producto modificado")
		case "6":
			err = c.lowStockReport(ctx)
			c.act.Record(user, "Reporte de stock bajo generado")
		case "7":
			c.act.Record(user, "Salida del sistema")
			c.println("Adiós, " + user + ".")
			return nil
		case "8":
			err = c.helpMenu()
			c.act.Record(user, "Acceso a la ayuda")
		default:
			c.errorln("Opción inválida. Seleccione un número del 1 al 8.")
		}
		if err != nil {
			return err
		}
		c.pause()
	}
}
