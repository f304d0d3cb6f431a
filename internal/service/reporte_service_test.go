package service

import (
	"context"
	"testing"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Builders ──────────────────────────────────────────────────────────────────

func servicioPagado(lavadorID uuid.UUID, nombre, precio, tasa, metodo string) model.Servicio {
	p := dec(precio)
	t := dec(tasa)
	gl := p.Mul(t).Round(2)
	return model.Servicio{
		ID:              uuid.New(),
		LavadorID:       lavadorID,
		LavadorNombre:   nombre,
		VehiculoModelo:  "Sedán",
		PrecioTotal:     p,
		MetodoPago:      metodo,
		TasaComision:    t,
		GananciaLavador: gl,
		GananciaNegocio: p.Sub(gl),
		PropinaMonto:    decimal.Zero,
		EstadoPago:      model.EstadoPagoPagado,
		Estado:          model.EstadoCompletado,
		CreatedAt:       time.Now(),
	}
}

func servicioPendiente(lavadorID uuid.UUID, nombre string) model.Servicio {
	return model.Servicio{
		ID:              uuid.New(),
		LavadorID:       lavadorID,
		LavadorNombre:   nombre,
		VehiculoModelo:  "Sedán",
		PrecioTotal:     decimal.Zero,
		MetodoPago:      model.MetodoPendiente,
		TasaComision:    dec("0.4"),
		GananciaLavador: decimal.Zero,
		GananciaNegocio: decimal.Zero,
		PropinaMonto:    decimal.Zero,
		EstadoPago:      model.EstadoPagoPendiente,
		Estado:          model.EstadoCompletado,
		CreatedAt:       time.Now(),
	}
}

func conPropina(s model.Servicio, monto, metodo string) model.Servicio {
	s.PropinaMonto = dec(monto)
	if metodo != "" {
		s.PropinaMetodo = &metodo
	}
	return s
}

func cancelado(s model.Servicio) model.Servicio {
	s.Estado = model.EstadoCancelado
	return s
}

// ── Consolidar ────────────────────────────────────────────────────────────────

func TestConsolidarListaVacia(t *testing.T) {
	rep := Consolidar(nil, "2026-08-01", "2026-08-01", 1)

	assert.Equal(t, 0, rep.Autos)
	assert.Equal(t, 0, rep.Pendientes)
	assert.True(t, rep.IngresoBruto.IsZero())
	assert.True(t, rep.TotalNomina.IsZero())
	assert.True(t, rep.EfectivoEnCaja.IsZero())
	assert.Empty(t, rep.Lavadores)
	assert.Empty(t, rep.MejorLavador)
}

func TestConsolidarExcluyeCancelados(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		servicioPagado(a, "Carlos", "20", "0.4", model.MetodoEfectivo),
		cancelado(conPropina(servicioPagado(a, "Carlos", "100", "0.4", model.MetodoEfectivo), "10", model.MetodoEfectivo)),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	// El cancelado no aparece en nada, ni siquiera en el conteo de autos.
	assert.Equal(t, 1, rep.Autos)
	assert.True(t, rep.IngresoBruto.Equal(dec("20")))
	assert.True(t, rep.TotalPropinas.IsZero())
	require.Len(t, rep.Lavadores, 1)
	assert.Equal(t, 1, rep.Lavadores[0].Autos)
}

func TestConsolidarPendienteCuentaAutoSinDinero(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		servicioPagado(a, "Carlos", "20", "0.4", model.MetodoEfectivo),
		servicioPendiente(a, "Carlos"),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	assert.Equal(t, 2, rep.Autos)
	assert.Equal(t, 1, rep.Pendientes)
	assert.True(t, rep.IngresoBruto.Equal(dec("20")))
	// El pendiente no entra en ningún desglose por método.
	assert.Equal(t, 1, rep.Ingresos.Efectivo.Cantidad)
	assert.Equal(t, 0, rep.Ingresos.Yappy.Cantidad)
	require.Len(t, rep.Lavadores, 1)
	assert.Equal(t, 2, rep.Lavadores[0].Autos)
	assert.True(t, rep.Lavadores[0].TotalComision.Equal(dec("8")))
}

func TestConsolidarPendienteNoAportaPropina(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		conPropina(servicioPendiente(a, "Carlos"), "5", model.MetodoYappy),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	// Un pendiente aporta $0 a TODO: si su propina contara, la caja
	// quedaría en negativo sin haber entrado un solo dólar.
	assert.Equal(t, 1, rep.Autos)
	assert.Equal(t, 1, rep.Pendientes)
	assert.True(t, rep.TotalPropinas.IsZero(), "propinas: %s", rep.TotalPropinas)
	assert.True(t, rep.Propinas.Yappy.IsZero())
	assert.True(t, rep.EfectivoEnCaja.IsZero(), "caja: %s", rep.EfectivoEnCaja)
	require.Len(t, rep.Lavadores, 1)
	assert.True(t, rep.Lavadores[0].TotalPropinas.IsZero())
	assert.True(t, rep.Lavadores[0].TotalAPagar.IsZero())
}

func TestConsolidarEsDeterminista(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	servicios := []model.Servicio{
		conPropina(servicioPagado(a, "Carlos", "20", "0.4", model.MetodoEfectivo), "2", model.MetodoEfectivo),
		servicioPagado(b, "María", "25", "0.5", model.MetodoYappy),
		servicioPendiente(a, "Carlos"),
	}

	r1 := Consolidar(servicios, "2026-08-01", "2026-08-02", 2)
	r2 := Consolidar(servicios, "2026-08-01", "2026-08-02", 2)
	assert.Equal(t, r1, r2)
}

func TestConsolidarMetodoDesconocidoCaeEnEfectivo(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		servicioPagado(a, "Carlos", "15", "0.4", "cheque"),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	assert.Equal(t, 1, rep.Ingresos.Efectivo.Cantidad)
	assert.True(t, rep.Ingresos.Efectivo.Monto.Equal(dec("15")))
}

func TestConsolidarPropinaSinMetodoEsDigital(t *testing.T) {
	a := uuid.New()
	s := servicioPagado(a, "Carlos", "20", "0.4", model.MetodoEfectivo)
	s.PropinaMonto = dec("4") // sin PropinaMetodo

	rep := Consolidar([]model.Servicio{s}, "2026-08-01", "2026-08-01", 1)

	assert.True(t, rep.Propinas.Yappy.Equal(dec("4")))
	assert.True(t, rep.Propinas.Efectivo.IsZero())
	require.Len(t, rep.Lavadores, 1)
	assert.True(t, rep.Lavadores[0].PropinasDigitales.Equal(dec("4")))
	// La propina digital se le debe al lavador junto con su comisión.
	assert.True(t, rep.Lavadores[0].TotalAPagar.Equal(dec("12")))
}

func TestConsolidarEfectivoEnCaja(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		servicioPagado(a, "Carlos", "50", "0.4", model.MetodoEfectivo),
		conPropina(servicioPagado(a, "Carlos", "30", "0.4", model.MetodoYappy), "5", model.MetodoYappy),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	// La propina Yappy se reembolsa en billetes al cierre: 50 − 5 = 45.
	assert.True(t, rep.Ingresos.Efectivo.Monto.Equal(dec("50")))
	assert.True(t, rep.EfectivoEnCaja.Equal(dec("45")))
}

func TestConsolidarJornadaCompleta(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	servicios := []model.Servicio{
		conPropina(servicioPagado(a, "Ana", "20", "0.4", model.MetodoEfectivo), "2", model.MetodoEfectivo),
		servicioPagado(a, "Ana", "15", "0.4", model.MetodoEfectivo),
		conPropina(servicioPagado(b, "Beto", "25", "0.5", model.MetodoYappy), "3", model.MetodoYappy),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-01", 1)

	assert.Equal(t, 3, rep.Autos)
	assert.True(t, rep.IngresoBruto.Equal(dec("60")))
	assert.True(t, rep.TotalNomina.Equal(dec("26.5")), "nómina: %s", rep.TotalNomina)
	assert.True(t, rep.GananciaNegocio.Equal(dec("33.5")))
	assert.True(t, rep.TotalPropinas.Equal(dec("5")))

	assert.True(t, rep.Ingresos.Efectivo.Monto.Equal(dec("35")))
	assert.Equal(t, 2, rep.Ingresos.Efectivo.Cantidad)
	assert.True(t, rep.Ingresos.Yappy.Monto.Equal(dec("25")))

	// 35 en efectivo − 3 de propina Yappy reembolsada al lavador.
	assert.True(t, rep.EfectivoEnCaja.Equal(dec("32")), "caja: %s", rep.EfectivoEnCaja)

	require.Len(t, rep.Lavadores, 2)
	// Beto cobra 12.50 + 3 de propina digital = 15.50 > Ana con 14.00 + 0.
	assert.Equal(t, "Beto", rep.Lavadores[0].Nombre)
	assert.True(t, rep.Lavadores[0].TotalAPagar.Equal(dec("15.5")))
	assert.Equal(t, "Ana", rep.Lavadores[1].Nombre)
	assert.True(t, rep.Lavadores[1].TotalComision.Equal(dec("14")))
	assert.True(t, rep.Lavadores[1].TotalAPagar.Equal(dec("14")))
	assert.Equal(t, "Beto", rep.MejorLavador)
}

func TestConsolidarAgrupaPorNombreSinID(t *testing.T) {
	// Registros migrados sin lavador_id: "María " y "maría" son la misma fila.
	s1 := servicioPagado(uuid.Nil, "María ", "10", "0.4", model.MetodoEfectivo)
	s2 := servicioPagado(uuid.Nil, "maría", "12", "0.4", model.MetodoEfectivo)

	rep := Consolidar([]model.Servicio{s1, s2}, "2026-08-01", "2026-08-01", 1)

	require.Len(t, rep.Lavadores, 1)
	assert.Equal(t, 2, rep.Lavadores[0].Autos)
	assert.Empty(t, rep.Lavadores[0].LavadorID)
}

func TestConsolidarPromedioPorDia(t *testing.T) {
	a := uuid.New()
	servicios := []model.Servicio{
		servicioPagado(a, "Carlos", "60", "0.4", model.MetodoEfectivo),
	}

	rep := Consolidar(servicios, "2026-08-01", "2026-08-03", 3)
	assert.True(t, rep.PromedioPorDia.Equal(dec("20")))

	// dias inválido se trata como 1 para no dividir por cero.
	rep = Consolidar(servicios, "2026-08-01", "2026-08-01", 0)
	assert.True(t, rep.PromedioPorDia.Equal(dec("60")))
}

// ── Rango / NominaLavador ─────────────────────────────────────────────────────

func TestRangoValidaFechas(t *testing.T) {
	svc := NewReporteService(newStubServicioRepo(), newStubLavadorRepo())

	_, err := svc.Rango(context.Background(), "01/08/2026", "2026-08-02")
	assert.Error(t, err)

	_, err = svc.Rango(context.Background(), "2026-08-05", "2026-08-01")
	assert.Error(t, err)
}

func TestRangoConsolidaServiciosDelPeriodo(t *testing.T) {
	servicioRepo := newStubServicioRepo()
	lavadorRepo := newStubLavadorRepo()
	svc := NewReporteService(servicioRepo, lavadorRepo)

	a := uuid.New()
	dentro := servicioPagado(a, "Carlos", "20", "0.4", model.MetodoEfectivo)
	dentro.CreatedAt = time.Date(2026, 8, 2, 10, 0, 0, 0, time.Local)
	fuera := servicioPagado(a, "Carlos", "99", "0.4", model.MetodoEfectivo)
	fuera.CreatedAt = time.Date(2026, 7, 15, 10, 0, 0, 0, time.Local)
	_ = servicioRepo.Create(context.Background(), &dentro)
	_ = servicioRepo.Create(context.Background(), &fuera)

	rep, err := svc.Rango(context.Background(), "2026-08-01", "2026-08-03")
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Autos)
	assert.True(t, rep.IngresoBruto.Equal(dec("20")))
	// 3 días inclusive: 20 / 3 = 6.67
	assert.True(t, rep.PromedioPorDia.Equal(dec("6.67")), "promedio: %s", rep.PromedioPorDia)
}

func TestNominaLavador(t *testing.T) {
	servicioRepo := newStubServicioRepo()
	lavadorRepo := newStubLavadorRepo()
	svc := NewReporteService(servicioRepo, lavadorRepo)

	lavador := &model.Lavador{Nombre: "Carlos", Activo: true, FechaInicio: time.Now()}
	_ = lavadorRepo.Create(context.Background(), lavador)

	otro := uuid.New()
	s1 := conPropina(servicioPagado(lavador.ID, "Carlos", "20", "0.4", model.MetodoEfectivo), "2", model.MetodoEfectivo)
	s2 := conPropina(servicioPagado(lavador.ID, "Carlos", "30", "0.4", model.MetodoYappy), "3", model.MetodoYappy)
	// La propina del pendiente no debe sumar hasta que se cobre el servicio.
	s3 := conPropina(servicioPendiente(lavador.ID, "Carlos"), "4", model.MetodoYappy)
	ajeno := servicioPagado(otro, "María", "50", "0.5", model.MetodoEfectivo)
	for _, s := range []*model.Servicio{&s1, &s2, &s3, &ajeno} {
		_ = servicioRepo.Create(context.Background(), s)
	}

	resp, err := svc.NominaLavador(context.Background(), lavador.ID, "semana")
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalServicios)
	assert.True(t, resp.TotalComision.Equal(dec("20")), "comisión: %s", resp.TotalComision)
	assert.True(t, resp.PropinasEfectivo.Equal(dec("2")))
	assert.True(t, resp.PropinasDigitales.Equal(dec("3")))
	// Se le paga comisión + propinas digitales; las de efectivo ya las tiene.
	assert.True(t, resp.TotalAPagar.Equal(dec("23")))
	assert.True(t, resp.IngresoGenerado.Equal(dec("50")))
}

func TestNominaLavadorRangoInvalido(t *testing.T) {
	lavadorRepo := newStubLavadorRepo()
	lavador := &model.Lavador{Nombre: "Carlos", Activo: true, FechaInicio: time.Now()}
	_ = lavadorRepo.Create(context.Background(), lavador)
	svc := NewReporteService(newStubServicioRepo(), lavadorRepo)

	_, err := svc.NominaLavador(context.Background(), lavador.ID, "trimestre")
	assert.Error(t, err)

	_, err = svc.NominaLavador(context.Background(), uuid.New(), "semana")
	assert.Error(t, err)
}
