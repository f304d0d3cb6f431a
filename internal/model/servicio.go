package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados. MetodoPendiente es un centinela para servicios
// registrados sin cobrar; nunca entra en los desgloses por método.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoYappy         = "Yappy"
	MetodoTarjeta       = "Tarjeta"
	MetodoTransferencia = "Transferencia"
	MetodoPendiente     = "Pendiente"
)

// MetodoPropinaPorDefecto es el balde al que caen las propinas registradas sin
// método ("digital por defecto"): se asume que llegaron por Yappy y por lo
// tanto deben reembolsarse al lavador en efectivo.
const MetodoPropinaPorDefecto = MetodoYappy

// EstadoPago: "pagado" | "pendiente"
const (
	EstadoPagoPagado    = "pagado"
	EstadoPagoPendiente = "pendiente"
)

// Estado: "completado" | "cancelado" — los cancelados se excluyen de todos
// los agregados, incluido el conteo de autos.
const (
	EstadoCompletado = "completado"
	EstadoCancelado  = "cancelado"
)

// Servicio representa un lavado registrado. Los campos financieros se calculan
// al crear: TasaComision es una foto del porcentaje global vigente en ese
// momento y no se recalcula nunca contra la configuración viva.
type Servicio struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	LavadorID uuid.UUID `gorm:"type:uuid;not null;index"`
	// LavadorNombre es una copia desnormalizada tomada al crear; si el lavador
	// cambia de nombre después, los registros históricos conservan el original.
	LavadorNombre string `gorm:"not null"`

	ClienteNombre   string
	ClienteTelefono string

	VehiculoModelo string `gorm:"not null"`
	VehiculoColor  string
	Pista          string `gorm:"type:varchar(10)"`

	PrecioTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MetodoPago  string          `gorm:"type:varchar(20);not null"`
	// TasaComision es fracción decimal (0.40 = 40%). Al editar el precio, las
	// ganancias se recalculan con ESTA tasa, no con la configuración actual.
	TasaComision    decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	GananciaLavador decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	GananciaNegocio decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PropinaMonto    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// PropinaMetodo es independiente del método del servicio; nil = sin propina.
	PropinaMetodo *string `gorm:"type:varchar(20)"`

	EstadoPago    string `gorm:"type:varchar(20);not null;default:'pagado';index"`
	Estado        string `gorm:"type:varchar(20);not null;default:'completado'"`
	Observaciones string

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (Servicio) TableName() string { return "servicios" }

// Cancelado indica si el servicio fue anulado y debe ignorarse en reportes.
func (s *Servicio) Cancelado() bool { return s.Estado == EstadoCancelado }

// Pendiente indica si el servicio aún no fue cobrado: cuenta como auto
// atendido pero aporta $0 a todos los totales de dinero.
func (s *Servicio) Pendiente() bool { return s.EstadoPago == EstadoPagoPendiente }

// MetodoPagoNormalizado colapsa métodos desconocidos (tipeos manuales de
// registros viejos) en Efectivo. Devuelve "" para servicios pendientes:
// todavía no tienen método real y no deben entrar al desglose.
func (s *Servicio) MetodoPagoNormalizado() string {
	if s.Pendiente() || s.MetodoPago == MetodoPendiente {
		return ""
	}
	switch s.MetodoPago {
	case MetodoEfectivo, MetodoYappy, MetodoTarjeta, MetodoTransferencia:
		return s.MetodoPago
	default:
		return MetodoEfectivo
	}
}

// PropinaMetodoNormalizado resuelve el método de la propina contra los cuatro
// baldes conocidos; ausente o desconocido cae en MetodoPropinaPorDefecto.
func (s *Servicio) PropinaMetodoNormalizado() string {
	if s.PropinaMetodo == nil {
		return MetodoPropinaPorDefecto
	}
	switch *s.PropinaMetodo {
	case MetodoEfectivo, MetodoYappy, MetodoTarjeta, MetodoTransferencia:
		return *s.PropinaMetodo
	default:
		return MetodoPropinaPorDefecto
	}
}
