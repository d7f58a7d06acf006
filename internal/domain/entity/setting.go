package entity

// Setting es una preferencia de usuario persistida como clave/valor (upsert).
type Setting struct {
	Key   string
	Value string
}

// Clave y valores reconocidos para el orden del listado de productos.
const (
	SettingProductSort = "product_sort"

	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
	SortDateAsc  = "date_asc"
	SortDateDesc = "date_desc"
)
