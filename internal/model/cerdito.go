package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados del ciclo de vida de un cerdito. Una vez que existe una venta, el
// sincronizador de ventas es el único escritor de Estado y DuenoID.
const (
	CerditoDisponible = "disponible"
	CerditoReservado  = "reservado"
	CerditoVendido    = "vendido"
)

const (
	VisibilidadPublica = "public"
	VisibilidadPrivada = "private"
)

// Cerdito es la ficha de un mini pig del catálogo de adopción.
type Cerdito struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion string
	// EdadMeses en nil significa edad desconocida (rescatados); el pipeline de
	// catálogo lo deja pasar por cualquier filtro de edad.
	EdadMeses       *int
	PrecioCRC       int64    `gorm:"not null"` // colones, sin decimales
	Sexo            string   `gorm:"type:varchar(10);not null"`
	Imagenes        []string `gorm:"serializer:json;type:jsonb"`
	FechaNacimiento *time.Time
	EsCerditoDelMes bool   `gorm:"not null;default:false"`
	Estado          string `gorm:"type:varchar(20);not null;default:'disponible'"`
	Visibilidad     string `gorm:"type:varchar(10);not null;default:'public'"`

	// DuenoID enlaza al cliente adoptante; lo escribe sólo el sincronizador.
	DuenoID *uuid.UUID `gorm:"type:uuid;index"`

	// ChecklistCompletado: claves de preparación marcadas por el dueño en el
	// diario de vida ("casa_lista", "veterinario", ...).
	ChecklistCompletado []string `gorm:"serializer:json;type:jsonb"`

	Hitos []Hito `gorm:"foreignKey:CerditoID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Hito es una entrada del diario de vida de un cerdito. El ID es textual: un
// uuid para los hitos manuales, "sale-<ventaID>" para el hito de adopción que
// sintetiza el sincronizador de ventas (así re-entregar la misma venta hace
// upsert en lugar de duplicar).
type Hito struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	CerditoID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Fecha       time.Time `gorm:"not null"`
	Titulo      string    `gorm:"not null"`
	Descripcion string
	Icono       string
	CreatedAt   time.Time
}
