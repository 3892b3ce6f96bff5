package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/lromero/almacen/store"
)

// renderProducts prints a bordered table of products, or a warning when
// there is nothing to show.
func (c *Console) renderProducts(products []store.Product) {
	if len(products) == 0 {
		c.warnln("No hay productos para mostrar.")
		return
	}

	rows := lo.Map(products, func(p store.Product, _ int) []string {
		return []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Description,
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("$%.2f", p.Price),
			p.Category,
		}
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "Nombre", "Descripción", "Cantidad", "Precio", "Categoría").
		Rows(rows...)

	fmt.Fprintln(c.out, t)
}
