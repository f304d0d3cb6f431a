package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfiguracionGlobal es un registro único (ID=1) con el porcentaje de
// comisión por defecto. Se lee SOLO al crear un servicio, para estampar
// TasaComision; cambiarlo no tiene efecto retroactivo.
type ConfiguracionGlobal struct {
	ID                 int             `gorm:"primaryKey"`
	PorcentajeComision decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	UpdatedAt          time.Time
}

func (ConfiguracionGlobal) TableName() string { return "configuracion_global" }

// ComisionHistorial es la bitácora append-only de cambios de porcentaje:
// permite reconstruir qué tasa estaba vigente en cualquier fecha, aunque cada
// servicio ya guarde la suya.
type ComisionHistorial struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Porcentaje   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	VigenteDesde time.Time       `gorm:"not null;index"`
}

func (ComisionHistorial) TableName() string { return "comision_historial" }
