package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente es un directorio de conveniencia para autocompletar el formulario
// de servicio. No es autoritativo para ningún cálculo financiero.
type Cliente struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null;index"`
	Telefono       string
	Notas          string
	Frecuente      bool `gorm:"not null;default:false"`
	VehiculoModelo string
	VehiculoColor  string
	UltimaVisita   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
