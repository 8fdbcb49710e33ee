package model

import (
	"time"

	"github.com/google/uuid"
)

// Testimonio es una reseña enviada por un cliente. Entra sin aprobar; sólo los
// aprobados se sirven al sitio público.
type Testimonio struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Autor        string    `gorm:"not null"`
	Texto        string    `gorm:"not null"`
	Calificacion int       `gorm:"not null"` // 1..5
	Aprobado     bool      `gorm:"not null;default:false;index"`
	UsuarioID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
