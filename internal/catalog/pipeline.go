// Package catalog implements the in-memory filter/sort/paginate pipeline used
// by the public adoption catalog and the shop. It is a pure presentation-layer
// projection: it operates on a copy of the fetched records, persists nothing,
// and is recomputed on every request.
package catalog

import (
	"sort"
	"strings"

	"minipigs/internal/model"

	"github.com/shopspring/decimal"
)

// Criterios de ordenamiento aceptados por ambos catálogos.
const (
	OrdenReciente   = "reciente" // no-op: respeta el orden del fetch
	OrdenPrecioAsc  = "precio-asc"
	OrdenPrecioDesc = "precio-desc"
	OrdenEdadAsc    = "edad-asc"
	OrdenEdadDesc   = "edad-desc"
)

// FiltroCerditos son los valores de filtro activos del catálogo de adopciones.
// Los punteros nil significan "sin filtro".
type FiltroCerditos struct {
	Texto     string
	Sexo      string
	Estado    string
	EdadMin   *int
	EdadMax   *int
	PrecioMin *int64
	PrecioMax *int64
}

// FiltrarCerditos aplica los predicados en secuencia sobre una copia.
// Regla permisiva: un registro sin edad nunca es excluido por el filtro de
// rango de edad.
func FiltrarCerditos(src []model.Cerdito, f FiltroCerditos) []model.Cerdito {
	out := make([]model.Cerdito, 0, len(src))
	texto := strings.ToLower(strings.TrimSpace(f.Texto))

	for _, c := range src {
		if texto != "" && !coincideTexto(texto, c.Nombre, c.Descripcion, c.Sexo) {
			continue
		}
		if f.Sexo != "" && c.Sexo != f.Sexo {
			continue
		}
		if f.Estado != "" && c.Estado != f.Estado {
			continue
		}
		if !dentroDeRangoEdad(c.EdadMeses, f.EdadMin, f.EdadMax) {
			continue
		}
		if f.PrecioMin != nil && c.PrecioCRC < *f.PrecioMin {
			continue
		}
		if f.PrecioMax != nil && c.PrecioCRC > *f.PrecioMax {
			continue
		}
		out = append(out, c)
	}
	return out
}

// OrdenarCerditos sorts in place with a stable comparator. "reciente" (o un
// criterio desconocido) deja el orden del fetch intacto. Los registros sin
// edad van al final en los órdenes por edad.
func OrdenarCerditos(cerditos []model.Cerdito, criterio string) {
	switch criterio {
	case OrdenPrecioAsc:
		sort.SliceStable(cerditos, func(i, j int) bool { return cerditos[i].PrecioCRC < cerditos[j].PrecioCRC })
	case OrdenPrecioDesc:
		sort.SliceStable(cerditos, func(i, j int) bool { return cerditos[i].PrecioCRC > cerditos[j].PrecioCRC })
	case OrdenEdadAsc:
		sort.SliceStable(cerditos, func(i, j int) bool { return menorEdad(cerditos[i].EdadMeses, cerditos[j].EdadMeses) })
	case OrdenEdadDesc:
		sort.SliceStable(cerditos, func(i, j int) bool { return mayorEdad(cerditos[i].EdadMeses, cerditos[j].EdadMeses) })
	}
}

// FiltroProductos son los valores de filtro activos de la tienda.
type FiltroProductos struct {
	Texto     string
	Categoria string
	PrecioMin *decimal.Decimal
	PrecioMax *decimal.Decimal
}

// FiltrarProductos aplica los predicados de la tienda sobre una copia.
func FiltrarProductos(src []model.Producto, f FiltroProductos) []model.Producto {
	out := make([]model.Producto, 0, len(src))
	texto := strings.ToLower(strings.TrimSpace(f.Texto))

	for _, p := range src {
		if texto != "" && !coincideTexto(texto, p.Nombre, p.Descripcion, p.Categoria) {
			continue
		}
		if f.Categoria != "" && p.Categoria != f.Categoria {
			continue
		}
		if f.PrecioMin != nil && p.Precio.LessThan(*f.PrecioMin) {
			continue
		}
		if f.PrecioMax != nil && p.Precio.GreaterThan(*f.PrecioMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// OrdenarProductos: sólo criterios de precio aplican en la tienda.
func OrdenarProductos(productos []model.Producto, criterio string) {
	switch criterio {
	case OrdenPrecioAsc:
		sort.SliceStable(productos, func(i, j int) bool { return productos[i].Precio.LessThan(productos[j].Precio) })
	case OrdenPrecioDesc:
		sort.SliceStable(productos, func(i, j int) bool { return productos[i].Precio.GreaterThan(productos[j].Precio) })
	}
}

// Paginar returns the page slice (1-based) after filter+sort.
func Paginar[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	inicio := (page - 1) * limit
	if inicio >= len(items) {
		return []T{}
	}
	fin := inicio + limit
	if fin > len(items) {
		fin = len(items)
	}
	return items[inicio:fin]
}

func coincideTexto(consulta string, campos ...string) bool {
	for _, campo := range campos {
		if strings.Contains(strings.ToLower(campo), consulta) {
			return true
		}
	}
	return false
}

func dentroDeRangoEdad(edad, min, max *int) bool {
	if edad == nil {
		return true
	}
	if min != nil && *edad < *min {
		return false
	}
	if max != nil && *edad > *max {
		return false
	}
	return true
}

// menorEdad ordena edades con nil al final.
func menorEdad(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}

// mayorEdad ordena de mayor a menor, también con nil al final.
func mayorEdad(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}
