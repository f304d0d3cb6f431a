package dto

import "github.com/shopspring/decimal"

// ─── Reporte financiero ──────────────────────────────────────────────────────

// ResumenLavador es una fila del consolidado de nómina: todo lo que hay que
// pagarle a un lavador en el período.
type ResumenLavador struct {
	LavadorID string `json:"lavador_id"`
	Nombre    string `json:"nombre"`
	Autos     int    `json:"autos"`
	// TotalComision es el sueldo base del período (suma de ganancia_lavador).
	TotalComision decimal.Decimal `json:"total_comision"`
	TotalPropinas decimal.Decimal `json:"total_propinas"`
	// PropinasEfectivo ya están en mano del lavador; PropinasDigitales se le
	// deben reembolsar de la caja.
	PropinasEfectivo  decimal.Decimal `json:"propinas_efectivo"`
	PropinasDigitales decimal.Decimal `json:"propinas_digitales"`
	// TotalAPagar = comisión + propinas digitales.
	TotalAPagar decimal.Decimal `json:"total_a_pagar"`
}

// DesgloseMetodo acumula cantidad de servicios y monto para un método de pago.
type DesgloseMetodo struct {
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

// DesgloseIngresos reparte el ingreso bruto entre los cuatro métodos cerrados.
// Los servicios pendientes no entran en ningún balde.
type DesgloseIngresos struct {
	Efectivo      DesgloseMetodo `json:"efectivo"`
	Yappy         DesgloseMetodo `json:"yappy"`
	Tarjeta       DesgloseMetodo `json:"tarjeta"`
	Transferencia DesgloseMetodo `json:"transferencia"`
}

type DesglosePropinas struct {
	Efectivo      decimal.Decimal `json:"efectivo"`
	Yappy         decimal.Decimal `json:"yappy"`
	Tarjeta       decimal.Decimal `json:"tarjeta"`
	Transferencia decimal.Decimal `json:"transferencia"`
}

// ReporteFinanciero es la salida del agregador: datos planos, listos para
// renderizar o exportar. Ninguna capa de export depende de cómo se calculó.
type ReporteFinanciero struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`

	IngresoBruto    decimal.Decimal `json:"ingreso_bruto"`
	GananciaNegocio decimal.Decimal `json:"ganancia_negocio"`
	// TotalNomina = suma de comisiones de todos los lavadores.
	TotalNomina   decimal.Decimal `json:"total_nomina"`
	TotalPropinas decimal.Decimal `json:"total_propinas"`

	Autos      int `json:"autos"`
	Pendientes int `json:"pendientes"`

	Ingresos DesgloseIngresos `json:"ingresos"`
	Propinas DesglosePropinas `json:"propinas"`

	// EfectivoEnCaja = ingreso en efectivo − propinas no-efectivo: las propinas
	// que entraron por canales digitales se devuelven al lavador en billetes.
	EfectivoEnCaja decimal.Decimal `json:"efectivo_en_caja"`

	PromedioPorDia decimal.Decimal `json:"promedio_por_dia"`
	MejorLavador   string          `json:"mejor_lavador"`

	Lavadores []ResumenLavador `json:"lavadores"`
}

// ─── Nómina individual (perfil del lavador) ──────────────────────────────────

type NominaLavadorResponse struct {
	LavadorID string `json:"lavador_id"`
	Nombre    string `json:"nombre"`
	Rango     string `json:"rango"` // semana | mes | todo

	TotalServicios    int             `json:"total_servicios"`
	TotalComision     decimal.Decimal `json:"total_comision"`
	PropinasEfectivo  decimal.Decimal `json:"propinas_efectivo"`
	PropinasDigitales decimal.Decimal `json:"propinas_digitales"`
	TotalAPagar       decimal.Decimal `json:"total_a_pagar"`
	// IngresoGenerado es lo que el lavador le facturó al negocio en el período.
	IngresoGenerado decimal.Decimal `json:"ingreso_generado"`

	Servicios []ServicioResponse `json:"servicios"`
}

// ─── Export ──────────────────────────────────────────────────────────────────

type ExportarReporteRequest struct {
	Desde   string  `json:"desde"   validate:"required,datetime=2006-01-02"`
	Hasta   string  `json:"hasta"   validate:"required,datetime=2006-01-02"`
	Formato string  `json:"formato" validate:"required,oneof=xlsx pdf"`
	Email   *string `json:"email"   validate:"omitempty,email"`
}

type ExportarReporteResponse struct {
	Encolado bool   `json:"encolado"`
	Formato  string `json:"formato"`
}
