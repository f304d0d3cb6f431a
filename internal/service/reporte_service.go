package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"
	"github.com/Elfoider/pulilavado-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReporteService interface {
	// Diario arma el reporte de un día (fecha vacía = hoy).
	Diario(ctx context.Context, fecha string) (*dto.ReporteFinanciero, error)
	// Rango arma el reporte de [desde, hasta] inclusive, formato 2006-01-02.
	Rango(ctx context.Context, desde, hasta string) (*dto.ReporteFinanciero, error)
	// NominaLavador resume lo que se le debe a un lavador: rango semana|mes|todo.
	NominaLavador(ctx context.Context, lavadorID uuid.UUID, rango string) (*dto.NominaLavadorResponse, error)
}

type reporteService struct {
	servicioRepo repository.ServicioRepository
	lavadorRepo  repository.LavadorRepository
}

func NewReporteService(servicioRepo repository.ServicioRepository, lavadorRepo repository.LavadorRepository) ReporteService {
	return &reporteService{servicioRepo: servicioRepo, lavadorRepo: lavadorRepo}
}

// ── Consolidar ────────────────────────────────────────────────────────────────
// Función pura: recibe los servicios del período ya cargados y devuelve el
// reporte completo. No toca la base ni el reloj, así que correrla dos veces
// sobre la misma lista da el mismo resultado.
//
// Reglas:
//   - Cancelados: invisibles para todo, incluido el conteo de autos.
//   - Pendientes: suman 1 auto y $0 en todo, propinas incluidas; no entran en
//     ningún desglose por método.
//   - Método de pago desconocido colapsa en Efectivo; propina sin método cae
//     en el balde digital por defecto.
//   - Efectivo en caja = ingreso en efectivo − propinas no-efectivo, porque
//     esas propinas se le reembolsan al lavador en billetes al cierre.

func Consolidar(servicios []model.Servicio, desde, hasta string, dias int) *dto.ReporteFinanciero {
	rep := &dto.ReporteFinanciero{
		Desde:           desde,
		Hasta:           hasta,
		IngresoBruto:    decimal.Zero,
		GananciaNegocio: decimal.Zero,
		TotalNomina:     decimal.Zero,
		TotalPropinas:   decimal.Zero,
		EfectivoEnCaja:  decimal.Zero,
		PromedioPorDia:  decimal.Zero,
		Lavadores:       []dto.ResumenLavador{},
	}
	rep.Ingresos = dto.DesgloseIngresos{
		Efectivo:      dto.DesgloseMetodo{Monto: decimal.Zero},
		Yappy:         dto.DesgloseMetodo{Monto: decimal.Zero},
		Tarjeta:       dto.DesgloseMetodo{Monto: decimal.Zero},
		Transferencia: dto.DesgloseMetodo{Monto: decimal.Zero},
	}
	rep.Propinas = dto.DesglosePropinas{
		Efectivo:      decimal.Zero,
		Yappy:         decimal.Zero,
		Tarjeta:       decimal.Zero,
		Transferencia: decimal.Zero,
	}

	porLavador := map[string]*dto.ResumenLavador{}
	orden := []string{}

	for i := range servicios {
		sv := &servicios[i]
		if sv.Cancelado() {
			continue
		}

		rep.Autos++

		key := claveLavador(sv)
		fila, ok := porLavador[key]
		if !ok {
			fila = &dto.ResumenLavador{
				LavadorID:         lavadorIDString(sv),
				Nombre:            strings.TrimSpace(sv.LavadorNombre),
				TotalComision:     decimal.Zero,
				TotalPropinas:     decimal.Zero,
				PropinasEfectivo:  decimal.Zero,
				PropinasDigitales: decimal.Zero,
				TotalAPagar:       decimal.Zero,
			}
			porLavador[key] = fila
			orden = append(orden, key)
		}
		fila.Autos++

		if sv.Pendiente() {
			rep.Pendientes++
			continue
		}

		// Propinas: solo de servicios cobrados; un pendiente aporta $0 a todo.
		if sv.PropinaMonto.IsPositive() {
			rep.TotalPropinas = rep.TotalPropinas.Add(sv.PropinaMonto)
			fila.TotalPropinas = fila.TotalPropinas.Add(sv.PropinaMonto)
			switch sv.PropinaMetodoNormalizado() {
			case model.MetodoEfectivo:
				rep.Propinas.Efectivo = rep.Propinas.Efectivo.Add(sv.PropinaMonto)
				fila.PropinasEfectivo = fila.PropinasEfectivo.Add(sv.PropinaMonto)
			case model.MetodoYappy:
				rep.Propinas.Yappy = rep.Propinas.Yappy.Add(sv.PropinaMonto)
				fila.PropinasDigitales = fila.PropinasDigitales.Add(sv.PropinaMonto)
			case model.MetodoTarjeta:
				rep.Propinas.Tarjeta = rep.Propinas.Tarjeta.Add(sv.PropinaMonto)
				fila.PropinasDigitales = fila.PropinasDigitales.Add(sv.PropinaMonto)
			case model.MetodoTransferencia:
				rep.Propinas.Transferencia = rep.Propinas.Transferencia.Add(sv.PropinaMonto)
				fila.PropinasDigitales = fila.PropinasDigitales.Add(sv.PropinaMonto)
			}
		}

		rep.IngresoBruto = rep.IngresoBruto.Add(sv.PrecioTotal)
		rep.GananciaNegocio = rep.GananciaNegocio.Add(sv.GananciaNegocio)
		rep.TotalNomina = rep.TotalNomina.Add(sv.GananciaLavador)
		fila.TotalComision = fila.TotalComision.Add(sv.GananciaLavador)

		switch sv.MetodoPagoNormalizado() {
		case model.MetodoEfectivo:
			rep.Ingresos.Efectivo.Cantidad++
			rep.Ingresos.Efectivo.Monto = rep.Ingresos.Efectivo.Monto.Add(sv.PrecioTotal)
		case model.MetodoYappy:
			rep.Ingresos.Yappy.Cantidad++
			rep.Ingresos.Yappy.Monto = rep.Ingresos.Yappy.Monto.Add(sv.PrecioTotal)
		case model.MetodoTarjeta:
			rep.Ingresos.Tarjeta.Cantidad++
			rep.Ingresos.Tarjeta.Monto = rep.Ingresos.Tarjeta.Monto.Add(sv.PrecioTotal)
		case model.MetodoTransferencia:
			rep.Ingresos.Transferencia.Cantidad++
			rep.Ingresos.Transferencia.Monto = rep.Ingresos.Transferencia.Monto.Add(sv.PrecioTotal)
		}
	}

	for _, key := range orden {
		fila := porLavador[key]
		fila.TotalAPagar = fila.TotalComision.Add(fila.PropinasDigitales)
		rep.Lavadores = append(rep.Lavadores, *fila)
	}
	sort.SliceStable(rep.Lavadores, func(i, j int) bool {
		return rep.Lavadores[i].TotalAPagar.GreaterThan(rep.Lavadores[j].TotalAPagar)
	})
	if len(rep.Lavadores) > 0 {
		rep.MejorLavador = rep.Lavadores[0].Nombre
	}

	propinasNoEfectivo := rep.Propinas.Yappy.
		Add(rep.Propinas.Tarjeta).
		Add(rep.Propinas.Transferencia)
	rep.EfectivoEnCaja = rep.Ingresos.Efectivo.Monto.Sub(propinasNoEfectivo)

	if dias < 1 {
		dias = 1
	}
	rep.PromedioPorDia = rep.IngresoBruto.Div(decimal.NewFromInt(int64(dias))).Round(2)

	return rep
}

// claveLavador agrupa por ID; registros viejos sin ID caen al nombre
// normalizado para que "María " y "maría" consoliden en una sola fila.
func claveLavador(sv *model.Servicio) string {
	if sv.LavadorID != uuid.Nil {
		return sv.LavadorID.String()
	}
	return strings.ToLower(strings.TrimSpace(sv.LavadorNombre))
}

func lavadorIDString(sv *model.Servicio) string {
	if sv.LavadorID == uuid.Nil {
		return ""
	}
	return sv.LavadorID.String()
}

// ── Métodos de servicio ───────────────────────────────────────────────────────

func (s *reporteService) Diario(ctx context.Context, fecha string) (*dto.ReporteFinanciero, error) {
	dia := time.Now()
	if fecha != "" {
		parsed, err := time.Parse("2006-01-02", fecha)
		if err != nil {
			return nil, errors.New("fecha inválida, formato esperado YYYY-MM-DD")
		}
		dia = parsed
	}
	f := dia.Format("2006-01-02")
	return s.Rango(ctx, f, f)
}

func (s *reporteService) Rango(ctx context.Context, desde, hasta string) (*dto.ReporteFinanciero, error) {
	d, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return nil, errors.New("desde inválido, formato esperado YYYY-MM-DD")
	}
	h, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return nil, errors.New("hasta inválido, formato esperado YYYY-MM-DD")
	}
	if h.Before(d) {
		return nil, errors.New("el rango es inválido: hasta es anterior a desde")
	}

	inicio := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	fin := time.Date(h.Year(), h.Month(), h.Day(), 23, 59, 59, 999999999, time.Local)

	servicios, err := s.servicioRepo.FindByRango(ctx, inicio, fin, nil)
	if err != nil {
		return nil, err
	}

	dias := int(h.Sub(d).Hours()/24) + 1
	return Consolidar(servicios, desde, hasta, dias), nil
}

func (s *reporteService) NominaLavador(ctx context.Context, lavadorID uuid.UUID, rango string) (*dto.NominaLavadorResponse, error) {
	lavador, err := s.lavadorRepo.FindByID(ctx, lavadorID)
	if err != nil {
		return nil, errors.New("lavador no encontrado")
	}

	ahora := time.Now()
	var inicio time.Time
	switch rango {
	case "semana", "":
		rango = "semana"
		inicio = ahora.AddDate(0, 0, -7)
	case "mes":
		inicio = ahora.AddDate(0, -1, 0)
	case "todo":
		inicio = time.Time{}
	default:
		return nil, errors.New("rango inválido: se acepta semana, mes o todo")
	}

	servicios, err := s.servicioRepo.FindByRango(ctx, inicio, ahora, &lavadorID)
	if err != nil {
		return nil, err
	}

	resp := &dto.NominaLavadorResponse{
		LavadorID:         lavadorID.String(),
		Nombre:            lavador.Nombre,
		Rango:             rango,
		TotalComision:     decimal.Zero,
		PropinasEfectivo:  decimal.Zero,
		PropinasDigitales: decimal.Zero,
		TotalAPagar:       decimal.Zero,
		IngresoGenerado:   decimal.Zero,
		Servicios:         []dto.ServicioResponse{},
	}

	for i := range servicios {
		sv := &servicios[i]
		if sv.Cancelado() {
			continue
		}
		resp.TotalServicios++
		resp.Servicios = append(resp.Servicios, *servicioToResponse(sv))

		if sv.Pendiente() {
			continue
		}
		if sv.PropinaMonto.IsPositive() {
			if sv.PropinaMetodoNormalizado() == model.MetodoEfectivo {
				resp.PropinasEfectivo = resp.PropinasEfectivo.Add(sv.PropinaMonto)
			} else {
				resp.PropinasDigitales = resp.PropinasDigitales.Add(sv.PropinaMonto)
			}
		}
		resp.TotalComision = resp.TotalComision.Add(sv.GananciaLavador)
		resp.IngresoGenerado = resp.IngresoGenerado.Add(sv.PrecioTotal)
	}
	resp.TotalAPagar = resp.TotalComision.Add(resp.PropinasDigitales)

	return resp, nil
}
