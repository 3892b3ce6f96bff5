package store

// User is a row in the users table. Credentials are stored and compared
// verbatim; the on-disk format is a compatibility contract with the
// previous version of this tool.
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username string `gorm:"column:nombre_usuario;unique;not null"`
	Password string `gorm:"column:contrasena;not null"`
}

// TableName overrides GORM's default singular → plural logic so the
// legacy column/table names survive unchanged.
func (User) TableName() string { return "users" }

// Category is a row in the categorias table. Categories are only ever
// appended, never updated or deleted.
type Category struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;unique;not null"`
}

func (Category) TableName() string { return "categorias" }

// Product is a row in the productos table. Category is free text on
// purpose: products may carry category names that were never registered
// in the categorias table.
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:nombre;not null"`
	Description string  `gorm:"column:descripcion"`
	Quantity    int     `gorm:"column:cantidad;not null"`
	Price       float64 `gorm:"column:precio;not null"`
	Category    string  `gorm:"column:categoria;not null"`
}

func (Product) TableName() string { return "productos" }

// DefaultCategories is the fixed set seeded when the categorias table is
// created empty. The order matters: ids are assigned in this order.
var DefaultCategories = []string{
	"Fruta", "Verdura", "Lácteo", "Grano", "Bebida", "Alcohol",
	"Papeleria", "Golosinas", "Perfumeria", "Panaderia",
	"Carnes", "Congelados", "Especias y condimentos", "Limpieza", "Otros",
}
