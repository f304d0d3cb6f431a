package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"
	"github.com/Elfoider/pulilavado-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

type ServicioService interface {
	Registrar(ctx context.Context, req dto.RegistrarServicioRequest) (*dto.ServicioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	Listar(ctx context.Context, filter dto.ServicioFilter) (*dto.ServicioListResponse, error)
}

type servicioService struct {
	repo        repository.ServicioRepository
	lavadorRepo repository.LavadorRepository
	clienteRepo repository.ClienteRepository
	configRepo  repository.ConfiguracionRepository
}

func NewServicioService(
	repo repository.ServicioRepository,
	lavadorRepo repository.LavadorRepository,
	clienteRepo repository.ClienteRepository,
	configRepo repository.ConfiguracionRepository,
) ServicioService {
	return &servicioService{
		repo:        repo,
		lavadorRepo: lavadorRepo,
		clienteRepo: clienteRepo,
		configRepo:  configRepo,
	}
}

// ── Registrar ─────────────────────────────────────────────────────────────────
// Al crear se estampa la tasa de comisión vigente (foto, no referencia):
//   1. Leer porcentaje global y convertirlo a fracción (40 → 0.40)
//   2. ganancia_lavador = precio × tasa, redondeado a centavos
//   3. ganancia_negocio = precio − ganancia_lavador (la suma siempre cierra)
// Los servicios pendientes entran con precio 0 y método Pendiente; se cobran
// después vía Actualizar con marcar_pagado.

func (s *servicioService) Registrar(ctx context.Context, req dto.RegistrarServicioRequest) (*dto.ServicioResponse, error) {
	lavadorID, err := uuid.Parse(req.LavadorID)
	if err != nil {
		return nil, errors.New("lavador_id inválido")
	}
	lavador, err := s.lavadorRepo.FindByID(ctx, lavadorID)
	if err != nil {
		return nil, errors.New("lavador no encontrado")
	}
	if !lavador.Activo {
		return nil, errors.New("el lavador está inactivo y no puede recibir servicios")
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	tasa := cfg.PorcentajeComision.Div(cien)

	servicio := model.Servicio{
		LavadorID:       lavadorID,
		LavadorNombre:   lavador.Nombre,
		ClienteNombre:   strings.TrimSpace(req.ClienteNombre),
		ClienteTelefono: req.ClienteTelefono,
		VehiculoModelo:  req.VehiculoModelo,
		VehiculoColor:   req.VehiculoColor,
		Pista:           req.Pista,
		TasaComision:    tasa,
		PropinaMonto:    req.PropinaMonto,
		PropinaMetodo:   req.PropinaMetodo,
		Estado:          model.EstadoCompletado,
		Observaciones:   req.Observaciones,
	}

	if req.Pendiente {
		servicio.PrecioTotal = decimal.Zero
		servicio.MetodoPago = model.MetodoPendiente
		servicio.GananciaLavador = decimal.Zero
		servicio.GananciaNegocio = decimal.Zero
		servicio.EstadoPago = model.EstadoPagoPendiente
	} else {
		if req.Precio.LessThanOrEqual(decimal.Zero) {
			return nil, errors.New("el precio debe ser mayor a cero")
		}
		if req.MetodoPago == "" {
			return nil, errors.New("el método de pago es requerido")
		}
		servicio.PrecioTotal = req.Precio
		servicio.MetodoPago = req.MetodoPago
		servicio.GananciaLavador = req.Precio.Mul(tasa).Round(2)
		servicio.GananciaNegocio = req.Precio.Sub(servicio.GananciaLavador)
		servicio.EstadoPago = model.EstadoPagoPagado
	}

	if err := s.repo.Create(ctx, &servicio); err != nil {
		return nil, err
	}

	// Ficha de cliente para autocompletar: best-effort, nunca falla el registro.
	if req.GuardarCliente && servicio.ClienteNombre != "" {
		s.upsertCliente(ctx, &servicio)
	}

	return servicioToResponse(&servicio), nil
}

func (s *servicioService) upsertCliente(ctx context.Context, servicio *model.Servicio) {
	ahora := time.Now()
	existing, err := s.clienteRepo.FindByNombre(ctx, servicio.ClienteNombre)
	if err == nil {
		if servicio.ClienteTelefono != "" {
			existing.Telefono = servicio.ClienteTelefono
		}
		existing.VehiculoModelo = servicio.VehiculoModelo
		existing.VehiculoColor = servicio.VehiculoColor
		existing.UltimaVisita = &ahora
		_ = s.clienteRepo.Update(ctx, existing)
		return
	}
	_ = s.clienteRepo.Create(ctx, &model.Cliente{
		Nombre:         servicio.ClienteNombre,
		Telefono:       servicio.ClienteTelefono,
		VehiculoModelo: servicio.VehiculoModelo,
		VehiculoColor:  servicio.VehiculoColor,
		UltimaVisita:   &ahora,
	})
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Cualquier cambio de precio recalcula ganancias con la tasa GUARDADA en el
// registro, nunca con la configuración viva. marcar_pagado cobra un servicio
// pendiente y exige precio > 0 y método de pago.

func (s *servicioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("servicio no encontrado")
	}
	if servicio.Cancelado() {
		return nil, errors.New("el servicio está cancelado y no puede editarse")
	}

	if req.VehiculoModelo != nil {
		servicio.VehiculoModelo = *req.VehiculoModelo
	}
	if req.VehiculoColor != nil {
		servicio.VehiculoColor = *req.VehiculoColor
	}
	if req.Observaciones != nil {
		servicio.Observaciones = *req.Observaciones
	}
	if req.PropinaMonto != nil {
		servicio.PropinaMonto = *req.PropinaMonto
	}
	if req.PropinaMetodo != nil {
		servicio.PropinaMetodo = req.PropinaMetodo
	}

	if req.Precio != nil {
		servicio.PrecioTotal = *req.Precio
	}
	if req.MetodoPago != nil {
		servicio.MetodoPago = *req.MetodoPago
	}

	if req.MarcarPagado {
		if !servicio.Pendiente() {
			return nil, errors.New("el servicio ya está pagado")
		}
		if servicio.PrecioTotal.LessThanOrEqual(decimal.Zero) {
			return nil, errors.New("para cobrar un servicio pendiente se requiere un precio mayor a cero")
		}
		if servicio.MetodoPago == "" || servicio.MetodoPago == model.MetodoPendiente {
			return nil, errors.New("para cobrar un servicio pendiente se requiere un método de pago")
		}
		servicio.EstadoPago = model.EstadoPagoPagado
	}

	if !servicio.Pendiente() {
		servicio.GananciaLavador = servicio.PrecioTotal.Mul(servicio.TasaComision).Round(2)
		servicio.GananciaNegocio = servicio.PrecioTotal.Sub(servicio.GananciaLavador)
	}

	if err := s.repo.Update(ctx, servicio); err != nil {
		return nil, err
	}
	return servicioToResponse(servicio), nil
}

// Cancelar anula el servicio sin borrarlo: desaparece de todos los agregados
// pero queda en el historial para auditoría.
func (s *servicioService) Cancelar(ctx context.Context, id uuid.UUID) error {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("servicio no encontrado")
	}
	if servicio.Cancelado() {
		return errors.New("el servicio ya está cancelado")
	}
	servicio.Estado = model.EstadoCancelado
	return s.repo.Update(ctx, servicio)
}

// Eliminar borra físicamente; reservado a administradores para limpiar
// registros de prueba.
func (s *servicioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("servicio no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *servicioService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("servicio no encontrado")
	}
	return servicioToResponse(servicio), nil
}

func (s *servicioService) Listar(ctx context.Context, filter dto.ServicioFilter) (*dto.ServicioListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Estado == "" {
		filter.Estado = model.EstadoCompletado
	}
	servicios, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ServicioResponse, 0, len(servicios))
	for _, sv := range servicios {
		data = append(data, *servicioToResponse(&sv))
	}
	return &dto.ServicioListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func servicioToResponse(s *model.Servicio) *dto.ServicioResponse {
	return &dto.ServicioResponse{
		ID:              s.ID.String(),
		LavadorID:       s.LavadorID.String(),
		LavadorNombre:   s.LavadorNombre,
		ClienteNombre:   s.ClienteNombre,
		ClienteTelefono: s.ClienteTelefono,
		VehiculoModelo:  s.VehiculoModelo,
		VehiculoColor:   s.VehiculoColor,
		Pista:           s.Pista,
		Financials: dto.FinancialsResponse{
			PrecioTotal:     s.PrecioTotal,
			MetodoPago:      s.MetodoPago,
			TasaComision:    s.TasaComision,
			GananciaLavador: s.GananciaLavador,
			GananciaNegocio: s.GananciaNegocio,
			PropinaMonto:    s.PropinaMonto,
			PropinaMetodo:   s.PropinaMetodo,
		},
		EstadoPago:    s.EstadoPago,
		Estado:        s.Estado,
		Observaciones: s.Observaciones,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
