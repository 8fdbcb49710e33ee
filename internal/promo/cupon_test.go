package promo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerarCodigoCupon(t *testing.T) {
	// Sólo el primer token del nombre, en mayúsculas
	assert.Equal(t, "BIENVENIDOLUNA15", GenerarCodigoCupon("Luna"))
	assert.Equal(t, "BIENVENIDOLUNA15", GenerarCodigoCupon("Luna Bella"))
	assert.Equal(t, "BIENVENIDODON15", GenerarCodigoCupon("Don Pepe"))
	assert.Equal(t, "BIENVENIDOPETUNIA15", GenerarCodigoCupon("petunia"))
}

func TestGenerarCodigoCupon_Determinista(t *testing.T) {
	a := GenerarCodigoCupon("Canela")
	b := GenerarCodigoCupon("Canela")
	assert.Equal(t, a, b)
}

func TestGenerarCodigoCupon_EspaciosExtra(t *testing.T) {
	assert.Equal(t, "BIENVENIDOROSITA15", GenerarCodigoCupon("  Rosita   de la Granja "))
}

func TestHitoAdopcion(t *testing.T) {
	ventaID := uuid.New()
	cerditoID := uuid.New()
	fecha := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	h := HitoAdopcion(ventaID, cerditoID, fecha, "Ana Rojas")

	assert.Equal(t, "sale-"+ventaID.String(), h.ID)
	assert.Equal(t, cerditoID, h.CerditoID)
	assert.Equal(t, fecha, h.Fecha)
	assert.Equal(t, "¡Llegó a su nuevo hogar!", h.Titulo)
	assert.Contains(t, h.Descripcion, "Ana Rojas")
	assert.Equal(t, "home", h.Icono)
}

func TestPlantilla_ClaveDesconocida(t *testing.T) {
	_, ok := Plantilla("graduacion")
	assert.False(t, ok)

	p, ok := Plantilla("nacimiento")
	assert.True(t, ok)
	assert.NotEmpty(t, p.Titulo)
}
