package model

import (
	"time"

	"github.com/google/uuid"
)

// Lavador es un empleado del pulilavado. Se desactiva (Activo=false) en lugar
// de borrarse: los servicios históricos referencian LavadorID y quedarían
// huérfanos. El borrado físico solo se permite cuando ningún servicio lo
// referencia.
type Lavador struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null;index"`
	Telefono    string
	Activo      bool      `gorm:"not null;default:true"`
	FechaInicio time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Lavador) TableName() string { return "lavadores" }
