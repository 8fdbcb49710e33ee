package model

import "time"

// Configuracion guarda los ajustes del sitio como pares clave/valor
// (teléfono de WhatsApp, horario, textos de portada, redes sociales).
type Configuracion struct {
	Clave     string `gorm:"primaryKey"`
	Valor     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization.
func (Configuracion) TableName() string { return "configuracion" }
