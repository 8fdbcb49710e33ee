package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto es un artículo de la tienda de accesorios (alimento, camas,
// juguetes). A diferencia de los cerditos, los precios de tienda llevan
// céntimos, de ahí el decimal.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string
	Categoria   string          `gorm:"index;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Imagenes    []string        `gorm:"serializer:json;type:jsonb"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
