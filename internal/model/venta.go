package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una venta / proceso de adopción.
const (
	VentaConsulta  = "consulta"
	VentaReservado = "reservado"
	VentaPagado    = "pagado"
	VentaEntregado = "entregado"
	VentaCancelado = "cancelado"
)

// Estados del cupón de bienvenida embebido en la venta. Los literales son los
// del contrato de datos del front, en inglés, a diferencia de los estados de
// venta y cerdito.
const (
	CuponActivo = "active"
	CuponUsado  = "used"
)

// CuponBienvenida se emite exactamente una vez, en la primera transición de la
// venta a "entregado". Vive embebido en la venta como jsonb.
type CuponBienvenida struct {
	Codigo    string `json:"codigo"`
	Descuento int    `json:"descuento"` // porcentaje
	Estado    string `json:"estado"`
}

// Venta es el registro de adopción de un cerdito.
type Venta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CerditoID uuid.UUID `gorm:"type:uuid;index;not null"`
	// NombreCerdito es un snapshot al momento de registrar la venta; si el
	// cerdito se renombra después, la venta conserva el nombre original.
	NombreCerdito   string `gorm:"not null"`
	ClienteNombre   string `gorm:"not null"`
	ClienteTelefono string
	ClienteEmail    *string
	// ClienteID enlaza la venta a una cuenta de cliente registrada; opcional
	// porque también se venden a clientes sin cuenta.
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`

	Estado     string    `gorm:"type:varchar(20);not null;default:'consulta'"`
	Precio     int64     `gorm:"not null"`
	FechaVenta time.Time `gorm:"not null"`

	CuponBienvenida *CuponBienvenida `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
