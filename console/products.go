package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/lromero/almacen/store"
)

// addProduct prompts for the product fields one by one, re-prompting on
// invalid input, and inserts the product. The flow may be abandoned with
// "salir" at any point before the insert is issued.
func (c *Console) addProduct(ctx context.Context) error {
	for {
		c.println(titleStyle.Render("\n--- Registro de producto ---"))

		name, err := c.readLine("Nombre del producto (o 'salir' para cancelar): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(name, cancelWord) {
			c.warnln("Registro de producto cancelado.")
			return nil
		}
		if name == "" {
			c.errorln("El nombre no puede estar vacío.")
			continue
		}

		description, err := c.readLine("Descripción (opcional): ")
		if err != nil {
			return err
		}

		quantity, cancelled, err := c.readInt("Cantidad disponible (entero): ", 0)
		if err != nil {
			return err
		}
		if cancelled {
			c.warnln("Registro de producto cancelado.")
			return nil
		}

		price, cancelled, err := c.readFloat("Precio (ej. 12.99): ")
		if err != nil {
			return err
		}
		if cancelled {
			c.warnln("Registro de producto cancelado.")
			return nil
		}

		category, cancelled, err := c.pickCategory(ctx)
		if err != nil {
			return err
		}
		if cancelled {
			c.warnln("Registro de producto cancelado.")
			return nil
		}

		id, err := c.svc.AddProduct(ctx, store.Product{
			Name:        name,
			Description: description,
			Quantity:    quantity,
			Price:       price,
			Category:    category,
		})
		if err != nil {
			c.errorln("No se pudo agregar el producto: " + err.Error())
		} else {
			c.successln(fmt.Sprintf("Producto %q agregado con ID %d.", name, id))
		}

		again, err := c.confirm("¿Desea agregar otro producto?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// pickCategory lists the registered categories plus a "new category"
// option. A new name is registered before it is returned.
func (c *Console) pickCategory(ctx context.Context) (string, bool, error) {
	categories, err := c.svc.Categories(ctx)
	if err != nil {
		c.errorln("No se pudieron cargar las categorías: " + err.Error())
		categories = nil
	}

	c.println("\nSelecciona la categoría del producto:")
	for i, name := range categories {
		c.printf("%d. %s\n", i+1, name)
	}
	c.printf("%d. Nueva categoría\n", len(categories)+1)

	for {
		line, err := c.readLine("Número de categoría (o 'nueva', o 'salir'): ")
		if err != nil {
			return "", false, err
		}
		switch {
		case strings.EqualFold(line, cancelWord):
			return "", true, nil
		case strings.EqualFold(line, "nueva") || line == strconv.Itoa(len(categories)+1):
			name, err := c.readLine("Nombre de la nueva categoría: ")
			if err != nil {
				return "", false, err
			}
			if name == "" {
				c.errorln("El nombre de la categoría no puede estar vacío.")
				continue
			}
			if err := c.svc.AddCategory(ctx, name); err != nil {
				c.errorln("No se pudo registrar la categoría: " + err.Error())
				continue
			}
			return name, false, nil
		default:
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(categories) {
				c.errorln("Opción de categoría inválida.")
				continue
			}
			return categories[n-1], false, nil
		}
	}
}

func (c *Console) listProducts(ctx context.Context) error {
	products, err := c.svc.Products(ctx)
	if err != nil {
		c.errorln("No se pudieron obtener los productos: " + err.Error())
		return nil
	}
	c.renderProducts(products)
	return nil
}

func (c *Console) searchProducts(ctx context.Context) error {
	term, err := c.readLine("Ingrese el ID, nombre o categoría a buscar (o 'salir'): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(term, cancelWord) || term == "" {
		return nil
	}

	results, err := c.svc.Search(ctx, term)
	if err != nil {
		c.errorln("No se pudo realizar la búsqueda: " + err.Error())
		return nil
	}
	c.renderProducts(results)
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	id, cancelled, err := c.readInt("ID del producto a eliminar (o 'salir'): ", 0)
	if err != nil {
		return err
	}
	if cancelled {
		return nil
	}

	name, err := c.svc.DeleteProduct(ctx, int64(id))
	switch {
	case err == nil:
		c.successln(fmt.Sprintf("Producto %q (ID %d) eliminado.", name, id))
	case errors.Is(err, store.ErrNotFound):
		c.warnln(fmt.Sprintf("No se encontró ningún producto con el ID %d.", id))
	default:
		c.errorln("No se pudo eliminar el producto: " + err.Error())
	}
	return nil
}

// updateProduct prompts field by field with the current values as
// defaults: a blank entry keeps the stored value.
func (c *Console) updateProduct(ctx context.Context) error {
	id, cancelled, err := c.readInt("ID del producto a modificar (o 'salir'): ", 0)
	if err != nil {
		return err
	}
	if cancelled {
		return nil
	}

	matches, err := c.svc.Search(ctx, strconv.Itoa(id))
	if err != nil {
		c.errorln("No se pudo buscar el producto: " + err.Error())
		return nil
	}
	current, found := lo.Find(matches, func(p store.Product) bool { return p.ID == int64(id) })
	if !found {
		c.warnln(fmt.Sprintf("No se encontró ningún producto con el ID %d.", id))
		return nil
	}
	c.renderProducts([]store.Product{current})

	name, err := c.readLine(fmt.Sprintf("Nuevo nombre (%s): ", current.Name))
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	description, err := c.readLine(fmt.Sprintf("Nueva descripción (%s): ", current.Description))
	if err != nil {
		return err
	}
	if description == "" {
		description = current.Description
	}

	quantity := current.Quantity
	line, err := c.readLine(fmt.Sprintf("Nueva cantidad (%d): ", current.Quantity))
	if err != nil {
		return err
	}
	if line != "" {
		n, convErr := strconv.Atoi(line)
		for convErr != nil || n < 0 {
			c.errorln("La cantidad debe ser un entero no negativo.")
			if line, err = c.readLine("Nueva cantidad: "); err != nil {
				return err
			}
			if line == "" {
				n, convErr = current.Quantity, nil
				break
			}
			n, convErr = strconv.Atoi(line)
		}
		quantity = n
	}

	price := current.Price
	line, err = c.readLine(fmt.Sprintf("Nuevo precio (%.2f): ", current.Price))
	if err != nil {
		return err
	}
	if line != "" {
		f, convErr := strconv.ParseFloat(line, 64)
		for convErr != nil || f < 0 {
			c.errorln("El precio debe ser un número no negativo.")
			if line, err = c.readLine("Nuevo precio: "); err != nil {
				return err
			}
			if line == "" {
				f, convErr = current.Price, nil
				break
			}
			f, convErr = strconv.ParseFloat(line, 64)
		}
		price = f
	}

	category, err := c.readLine(fmt.Sprintf("Nueva categoría (%s, Enter para mantener): ", current.Category))
	if err != nil {
		return err
	}
	if category == "" {
		category = current.Category
	}

	err = c.svc.UpdateProduct(ctx, int64(id), store.Product{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Category:    category,
	})
	switch {
	case err == nil:
		c.successln(fmt.Sprintf("Producto con ID %d actualizado.", id))
	case errors.Is(err, store.ErrNotFound):
		c.warnln(fmt.Sprintf("No se encontró ningún producto con el ID %d.", id))
	default:
		c.errorln("No se pudo actualizar el producto: " + err.Error())
	}
	return nil
}

func (c *Console) lowStockReport(ctx context.Context) error {
	threshold, cancelled, err := c.readInt("Límite de cantidad (o 'salir'): ", 0)
	if err != nil {
		return err
	}
	if cancelled {
		return nil
	}

	products, err := c.svc.LowStockReport(ctx, threshold)
	if err != nil {
		c.errorln("No se pudo generar el reporte: " + err.Error())
		return nil
	}
	if len(products) == 0 {
		c.warnln(fmt.Sprintf("No se encontraron productos con cantidad igual o inferior a %d.", threshold))
		return nil
	}
	c.printf("\nProductos con cantidad igual o inferior a %d:\n", threshold)
	c.renderProducts(products)
	return nil
}
