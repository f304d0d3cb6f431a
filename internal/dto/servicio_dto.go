package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ServicioFilter is bound from the query string of GET /v1/servicios.
type ServicioFilter struct {
	Fecha     string `form:"fecha"`                      // YYYY-MM-DD; empty = today
	LavadorID string `form:"lavador_id" validate:"omitempty,uuid"`
	Estado    string `form:"estado,default=completado"` // completado | cancelado | all
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ServicioListResponse struct {
	Data  []ServicioResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarServicioRequest struct {
	LavadorID       string `json:"lavador_id" validate:"required,uuid"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteTelefono string `json:"cliente_telefono"`
	VehiculoModelo  string `json:"vehiculo_modelo" validate:"required"`
	VehiculoColor   string `json:"vehiculo_color"`
	Pista           string `json:"pista"`

	// Pendiente=true registra el auto sin cobro: precio 0, método Pendiente.
	Pendiente  bool            `json:"pendiente"`
	Precio     decimal.Decimal `json:"precio"      validate:"min=0"`
	MetodoPago string          `json:"metodo_pago" validate:"omitempty,oneof=Efectivo Yappy Tarjeta Transferencia"`

	PropinaMonto  decimal.Decimal `json:"propina_monto"  validate:"min=0"`
	PropinaMetodo *string         `json:"propina_metodo" validate:"omitempty,oneof=Efectivo Yappy Tarjeta Transferencia"`

	Observaciones string `json:"observaciones"`
	// GuardarCliente agrega o actualiza la ficha del cliente para autocompletar.
	GuardarCliente bool `json:"guardar_cliente"`
}

// ActualizarServicioRequest edita un servicio existente. Cualquier cambio de
// precio recalcula las ganancias con la tasa guardada en el registro.
type ActualizarServicioRequest struct {
	VehiculoModelo *string          `json:"vehiculo_modelo"`
	VehiculoColor  *string          `json:"vehiculo_color"`
	Precio         *decimal.Decimal `json:"precio"      validate:"omitempty,min=0"`
	MetodoPago     *string          `json:"metodo_pago" validate:"omitempty,oneof=Efectivo Yappy Tarjeta Transferencia"`
	PropinaMonto   *decimal.Decimal `json:"propina_monto"  validate:"omitempty,min=0"`
	PropinaMetodo  *string          `json:"propina_metodo" validate:"omitempty,oneof=Efectivo Yappy Tarjeta Transferencia"`
	// MarcarPagado cobra un servicio pendiente; requiere Precio > 0 y MetodoPago.
	MarcarPagado  bool    `json:"marcar_pagado"`
	Observaciones *string `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FinancialsResponse struct {
	PrecioTotal     decimal.Decimal `json:"precio_total"`
	MetodoPago      string          `json:"metodo_pago"`
	TasaComision    decimal.Decimal `json:"tasa_comision"`
	GananciaLavador decimal.Decimal `json:"ganancia_lavador"`
	GananciaNegocio decimal.Decimal `json:"ganancia_negocio"`
	PropinaMonto    decimal.Decimal `json:"propina_monto"`
	PropinaMetodo   *string         `json:"propina_metodo"`
}

type ServicioResponse struct {
	ID              string             `json:"id"`
	LavadorID       string             `json:"lavador_id"`
	LavadorNombre   string             `json:"lavador_nombre"`
	ClienteNombre   string             `json:"cliente_nombre"`
	ClienteTelefono string             `json:"cliente_telefono"`
	VehiculoModelo  string             `json:"vehiculo_modelo"`
	VehiculoColor   string             `json:"vehiculo_color"`
	Pista           string             `json:"pista"`
	Financials      FinancialsResponse `json:"financials"`
	EstadoPago      string             `json:"estado_pago"`
	Estado          string             `json:"estado"`
	Observaciones   string             `json:"observaciones"`
	CreatedAt       string             `json:"created_at"`
}
