package dto

import "github.com/shopspring/decimal"

type ConfiguracionResponse struct {
	PorcentajeComision decimal.Decimal `json:"porcentaje_comision"`
	UpdatedAt          string          `json:"updated_at"`
}

// ActualizarConfiguracionRequest cambia el porcentaje por defecto. Solo afecta
// servicios NUEVOS: los existentes conservan su tasa estampada.
type ActualizarConfiguracionRequest struct {
	PorcentajeComision decimal.Decimal `json:"porcentaje_comision" validate:"min=0,max=100"`
}

type ComisionHistorialItem struct {
	Porcentaje   decimal.Decimal `json:"porcentaje"`
	VigenteDesde string          `json:"vigente_desde"`
}
