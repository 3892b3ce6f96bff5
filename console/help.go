package console

import "strconv"

// Static help pages for the interactive console, shown from the main
// menu.

type helpTopic struct {
	title string
	body  string
}

var helpTopics = []helpTopic{
	{
		title: "Uso general",
		body: `La aplicación gestiona un inventario de productos almacenado en una
base de datos local. Primero inicie sesión (o registre un usuario) y
luego use el menú principal para operar sobre los productos. Cada
acción completada queda registrada en el log de actividad.`,
	},
	{
		title: "Agregar productos",
		body: `Ingrese nombre, descripción (opcional), cantidad, precio y categoría.
La cantidad y el precio no pueden ser negativos. Si deja la descripción
vacía se guarda "Sin descripción". Puede elegir una categoría existente
o crear una nueva; escriba 'salir' en cualquier momento para cancelar.`,
	},
	{
		title: "Buscar productos",
		body: `La búsqueda acepta un ID exacto (término numérico), o un fragmento del
nombre o de la categoría, sin distinguir mayúsculas de minúsculas. El
resultado combina las tres coincidencias sin duplicados.`,
	},
	{
		title: "Modificar y eliminar",
		body: `Ambas operaciones piden el ID del producto. Al modificar, deje un campo
en blanco para mantener el valor actual. La eliminación es definitiva.`,
	},
	{
		title: "Reporte de stock bajo",
		body: `Indique un límite de cantidad; el reporte lista los productos con
cantidad igual o inferior, ordenados de menor a mayor cantidad.`,
	},
}

func (c *Console) helpMenu() error {
	for {
		c.println(titleStyle.Render("\n--- Ayuda ---"))
		for i, t := range helpTopics {
			c.printf("%d. %s\n", i+1, t.title)
		}
		c.printf("%d. Volver al menú principal\n", len(helpTopics)+1)

		choice, err := c.readLine("Selecciona un tema: ")
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(helpTopics)+1 {
			c.errorln("Opción inválida.")
			continue
		}
		if n == len(helpTopics)+1 {
			return nil
		}

		t := helpTopics[n-1]
		c.println(titleStyle.Render("\n" + t.title))
		c.println(t.body)
		c.pause()
	}
}
