package catalog

import (
	"testing"

	"minipigs/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func cerditosDemo() []model.Cerdito {
	return []model.Cerdito{
		{Nombre: "Luna", Descripcion: "juguetona y cariñosa", Sexo: "hembra", Estado: model.CerditoDisponible, EdadMeses: intPtr(3), PrecioCRC: 80000},
		{Nombre: "Don Pepe", Descripcion: "tranquilo", Sexo: "macho", Estado: model.CerditoVendido, EdadMeses: intPtr(14), PrecioCRC: 120000},
		{Nombre: "Canela", Descripcion: "rescatada, edad desconocida", Sexo: "hembra", Estado: model.CerditoDisponible, EdadMeses: nil, PrecioCRC: 60000},
		{Nombre: "Tocino", Descripcion: "el más glotón", Sexo: "macho", Estado: model.CerditoReservado, EdadMeses: intPtr(7), PrecioCRC: 95000},
	}
}

func TestFiltrarCerditos_Texto(t *testing.T) {
	res := FiltrarCerditos(cerditosDemo(), FiltroCerditos{Texto: "glotón"})
	require.Len(t, res, 1)
	assert.Equal(t, "Tocino", res[0].Nombre)

	// El texto también matchea contra sexo
	res = FiltrarCerditos(cerditosDemo(), FiltroCerditos{Texto: "macho"})
	assert.Len(t, res, 2)
}

func TestFiltrarCerditos_SexoYEstado(t *testing.T) {
	res := FiltrarCerditos(cerditosDemo(), FiltroCerditos{Sexo: "hembra", Estado: model.CerditoDisponible})
	require.Len(t, res, 2)
	assert.Equal(t, "Luna", res[0].Nombre)
	assert.Equal(t, "Canela", res[1].Nombre)
}

func TestFiltrarCerditos_RangoEdadPermisivo(t *testing.T) {
	// Canela no tiene edad: el rango de edad nunca la excluye
	res := FiltrarCerditos(cerditosDemo(), FiltroCerditos{EdadMin: intPtr(6), EdadMax: intPtr(12)})
	nombres := make([]string, 0, len(res))
	for _, c := range res {
		nombres = append(nombres, c.Nombre)
	}
	assert.ElementsMatch(t, []string{"Canela", "Tocino"}, nombres)
}

func TestFiltrarCerditos_RangoPrecio(t *testing.T) {
	res := FiltrarCerditos(cerditosDemo(), FiltroCerditos{PrecioMin: int64Ptr(70000), PrecioMax: int64Ptr(100000)})
	require.Len(t, res, 2)
	assert.Equal(t, "Luna", res[0].Nombre)
	assert.Equal(t, "Tocino", res[1].Nombre)
}

func TestFiltrarCerditos_NoDestructivo(t *testing.T) {
	src := cerditosDemo()
	_ = FiltrarCerditos(src, FiltroCerditos{Sexo: "macho"})
	// La lista original queda intacta
	require.Len(t, src, 4)
	assert.Equal(t, "Luna", src[0].Nombre)
}

func TestOrdenarCerditos_Precio(t *testing.T) {
	cs := cerditosDemo()
	OrdenarCerditos(cs, OrdenPrecioAsc)
	assert.Equal(t, "Canela", cs[0].Nombre)
	assert.Equal(t, "Don Pepe", cs[3].Nombre)

	OrdenarCerditos(cs, OrdenPrecioDesc)
	assert.Equal(t, "Don Pepe", cs[0].Nombre)
}

func TestOrdenarCerditos_EdadNilAlFinal(t *testing.T) {
	cs := cerditosDemo()
	OrdenarCerditos(cs, OrdenEdadAsc)
	assert.Equal(t, "Luna", cs[0].Nombre)
	assert.Equal(t, "Canela", cs[3].Nombre) // sin edad → al final

	OrdenarCerditos(cs, OrdenEdadDesc)
	assert.Equal(t, "Don Pepe", cs[0].Nombre)
	assert.Equal(t, "Tocino", cs[1].Nombre)
	assert.Equal(t, "Luna", cs[2].Nombre)
	assert.Equal(t, "Canela", cs[3].Nombre) // sin edad sigue al final
}

func TestOrdenarCerditos_RecienteEsNoOp(t *testing.T) {
	cs := cerditosDemo()
	OrdenarCerditos(cs, OrdenReciente)
	assert.Equal(t, "Luna", cs[0].Nombre)
	assert.Equal(t, "Tocino", cs[3].Nombre)
}

func TestFiltrarProductos(t *testing.T) {
	precio := func(v string) decimal.Decimal { d, _ := decimal.NewFromString(v); return d }
	src := []model.Producto{
		{Nombre: "Alimento premium 5kg", Categoria: "alimento", Precio: precio("15500.00")},
		{Nombre: "Cama acolchada", Categoria: "accesorios", Precio: precio("22000.00")},
		{Nombre: "Arnés talla S", Categoria: "accesorios", Precio: precio("8900.50")},
	}

	res := FiltrarProductos(src, FiltroProductos{Categoria: "accesorios"})
	assert.Len(t, res, 2)

	min := precio("10000")
	res = FiltrarProductos(src, FiltroProductos{PrecioMin: &min})
	assert.Len(t, res, 2)

	OrdenarProductos(res, OrdenPrecioDesc)
	assert.Equal(t, "Cama acolchada", res[0].Nombre)
}

func TestPaginar(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginar(items, 1, 2))
	assert.Equal(t, []int{5}, Paginar(items, 3, 2))
	assert.Empty(t, Paginar(items, 4, 2))
	// page/limit inválidos caen a los defaults
	assert.Len(t, Paginar(items, 0, 0), 5)
}
