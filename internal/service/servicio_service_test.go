package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uuid.UUID]*model.Servicio)}
}

func (r *stubServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	cp := *s
	r.servicios[s.ID] = &cp
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *s
	return &cp, nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.Servicio) error {
	cp := *s
	r.servicios[s.ID] = &cp
	return nil
}

func (r *stubServicioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.servicios, id)
	return nil
}

func (r *stubServicioRepo) List(_ context.Context, filter dto.ServicioFilter) ([]model.Servicio, int64, error) {
	out := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubServicioRepo) FindByRango(_ context.Context, desde, hasta time.Time, lavadorID *uuid.UUID) ([]model.Servicio, error) {
	out := []model.Servicio{}
	for _, s := range r.servicios {
		if s.CreatedAt.Before(desde) || s.CreatedAt.After(hasta) {
			continue
		}
		if lavadorID != nil && s.LavadorID != *lavadorID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicioRepo) CountByLavador(_ context.Context, lavadorID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.servicios {
		if s.LavadorID == lavadorID {
			n++
		}
	}
	return n, nil
}

type stubLavadorRepo struct {
	lavadores map[uuid.UUID]*model.Lavador
}

func newStubLavadorRepo() *stubLavadorRepo {
	return &stubLavadorRepo{lavadores: make(map[uuid.UUID]*model.Lavador)}
}

func (r *stubLavadorRepo) Create(_ context.Context, l *model.Lavador) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	r.lavadores[l.ID] = &cp
	return nil
}

func (r *stubLavadorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lavador, error) {
	l, ok := r.lavadores[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *l
	return &cp, nil
}

func (r *stubLavadorRepo) List(_ context.Context, incluirInactivos bool) ([]model.Lavador, error) {
	out := []model.Lavador{}
	for _, l := range r.lavadores {
		if !incluirInactivos && !l.Activo {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLavadorRepo) Update(_ context.Context, l *model.Lavador) error {
	cp := *l
	r.lavadores[l.ID] = &cp
	return nil
}

func (r *stubLavadorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lavadores, id)
	return nil
}

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) FindByNombre(_ context.Context, nombre string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Nombre == nombre {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubClienteRepo) List(_ context.Context, _ string) ([]model.Cliente, error) {
	out := []model.Cliente{}
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

type stubConfigRepo struct {
	porcentaje decimal.Decimal
	historial  []model.ComisionHistorial
}

func newStubConfigRepo(porcentaje int64) *stubConfigRepo {
	return &stubConfigRepo{porcentaje: decimal.NewFromInt(porcentaje)}
}

func (r *stubConfigRepo) Get(_ context.Context) (*model.ConfiguracionGlobal, error) {
	return &model.ConfiguracionGlobal{ID: 1, PorcentajeComision: r.porcentaje}, nil
}

func (r *stubConfigRepo) Update(_ context.Context, porcentaje decimal.Decimal) (*model.ConfiguracionGlobal, error) {
	r.porcentaje = porcentaje
	r.historial = append(r.historial, model.ComisionHistorial{
		Porcentaje:   porcentaje,
		VigenteDesde: time.Now(),
	})
	return &model.ConfiguracionGlobal{ID: 1, PorcentajeComision: porcentaje}, nil
}

func (r *stubConfigRepo) ListHistorial(_ context.Context) ([]model.ComisionHistorial, error) {
	return r.historial, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestServicioService(porcentaje int64) (ServicioService, *stubServicioRepo, *stubLavadorRepo, *stubClienteRepo, *stubConfigRepo, uuid.UUID) {
	servicioRepo := newStubServicioRepo()
	lavadorRepo := newStubLavadorRepo()
	clienteRepo := newStubClienteRepo()
	configRepo := newStubConfigRepo(porcentaje)

	lavador := &model.Lavador{Nombre: "Carlos", Activo: true, FechaInicio: time.Now()}
	_ = lavadorRepo.Create(context.Background(), lavador)

	svc := NewServicioService(servicioRepo, lavadorRepo, clienteRepo, configRepo)
	return svc, servicioRepo, lavadorRepo, clienteRepo, configRepo, lavador.ID
}

// ── Registrar ─────────────────────────────────────────────────────────────────

func TestRegistrarServicioEstampaComision(t *testing.T) {
	svc, _, _, _, _, lavadorID := newTestServicioService(40)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Toyota Corolla",
		Precio:         dec("20"),
		MetodoPago:     model.MetodoEfectivo,
	})
	require.NoError(t, err)

	assert.True(t, resp.Financials.TasaComision.Equal(dec("0.4")), "tasa: %s", resp.Financials.TasaComision)
	assert.True(t, resp.Financials.GananciaLavador.Equal(dec("8")))
	assert.True(t, resp.Financials.GananciaNegocio.Equal(dec("12")))
	assert.Equal(t, "pagado", resp.EstadoPago)
}

func TestRegistrarServicioGananciasSiempreCierran(t *testing.T) {
	// 33% de 9.99 no cae en centavos exactos: la ganancia del negocio se
	// define como precio − comisión redondeada para que la suma cierre.
	svc, _, _, _, _, lavadorID := newTestServicioService(33)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Kia Rio",
		Precio:         dec("9.99"),
		MetodoPago:     model.MetodoYappy,
	})
	require.NoError(t, err)

	suma := resp.Financials.GananciaLavador.Add(resp.Financials.GananciaNegocio)
	assert.True(t, suma.Equal(dec("9.99")), "suma: %s", suma)
}

func TestRegistrarServicioPendiente(t *testing.T) {
	svc, _, _, _, _, lavadorID := newTestServicioService(40)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Hilux",
		Pendiente:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "pendiente", resp.EstadoPago)
	assert.Equal(t, model.MetodoPendiente, resp.Financials.MetodoPago)
	assert.True(t, resp.Financials.PrecioTotal.IsZero())
	assert.True(t, resp.Financials.GananciaLavador.IsZero())
}

func TestRegistrarServicioRechazaLavadorInactivo(t *testing.T) {
	svc, _, lavadorRepo, _, _, lavadorID := newTestServicioService(40)

	lavador, _ := lavadorRepo.FindByID(context.Background(), lavadorID)
	lavador.Activo = false
	_ = lavadorRepo.Update(context.Background(), lavador)

	_, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Civic",
		Precio:         dec("15"),
		MetodoPago:     model.MetodoEfectivo,
	})
	assert.Error(t, err)
}

func TestRegistrarServicioGuardaCliente(t *testing.T) {
	svc, _, _, clienteRepo, _, lavadorID := newTestServicioService(40)

	_, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		ClienteNombre:  "Ana Pérez",
		VehiculoModelo: "CRV",
		Precio:         dec("25"),
		MetodoPago:     model.MetodoEfectivo,
		GuardarCliente: true,
	})
	require.NoError(t, err)

	cliente, err := clienteRepo.FindByNombre(context.Background(), "Ana Pérez")
	require.NoError(t, err)
	assert.Equal(t, "CRV", cliente.VehiculoModelo)
	assert.NotNil(t, cliente.UltimaVisita)
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func TestActualizarPrecioUsaTasaGuardada(t *testing.T) {
	svc, _, _, _, configRepo, lavadorID := newTestServicioService(40)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Corolla",
		Precio:         dec("20"),
		MetodoPago:     model.MetodoEfectivo,
	})
	require.NoError(t, err)

	// El porcentaje global sube a 50% DESPUÉS de crear el servicio.
	_, err = configRepo.Update(context.Background(), dec("50"))
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	nuevoPrecio := dec("30")
	updated, err := svc.Actualizar(context.Background(), id, dto.ActualizarServicioRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)

	// 30 × 0.40 = 12, NO 30 × 0.50 = 15
	assert.True(t, updated.Financials.GananciaLavador.Equal(dec("12")),
		"ganancia: %s", updated.Financials.GananciaLavador)
	assert.True(t, updated.Financials.TasaComision.Equal(dec("0.4")))
}

func TestMarcarPagadoExigePrecioYMetodo(t *testing.T) {
	svc, _, _, _, _, lavadorID := newTestServicioService(40)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "Hilux",
		Pendiente:      true,
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Sin precio ni método: rechazado
	_, err = svc.Actualizar(context.Background(), id, dto.ActualizarServicioRequest{MarcarPagado: true})
	assert.Error(t, err)

	// Con precio y método: cobra y calcula ganancias con la tasa estampada
	precio := dec("18")
	metodo := model.MetodoYappy
	updated, err := svc.Actualizar(context.Background(), id, dto.ActualizarServicioRequest{
		Precio:       &precio,
		MetodoPago:   &metodo,
		MarcarPagado: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "pagado", updated.EstadoPago)
	assert.True(t, updated.Financials.GananciaLavador.Equal(dec("7.2")))
}

func TestRespuestaConFechaEnUTC(t *testing.T) {
	svc, servicioRepo, _, _, _, lavadorID := newTestServicioService(40)

	// Las fechas salen en RFC3339 normalizado a UTC, sin importar la zona
	// con la que se guardó el registro.
	panama := time.FixedZone("America/Panama", -5*60*60)
	s := servicioPagado(lavadorID, "Carlos", "20", "0.4", model.MetodoEfectivo)
	s.CreatedAt = time.Date(2026, 8, 30, 22, 15, 0, 0, panama)
	_ = servicioRepo.Create(context.Background(), &s)

	resp, err := svc.Obtener(context.Background(), s.ID)
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, resp.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(s.CreatedAt))
	assert.Equal(t, "2026-08-31T03:15:00Z", resp.CreatedAt)
}

func TestCancelarYNoEditar(t *testing.T) {
	svc, _, _, _, _, lavadorID := newTestServicioService(40)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarServicioRequest{
		LavadorID:      lavadorID.String(),
		VehiculoModelo: "March",
		Precio:         dec("10"),
		MetodoPago:     model.MetodoEfectivo,
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Cancelar(context.Background(), id))

	// Cancelar dos veces: error
	assert.Error(t, svc.Cancelar(context.Background(), id))

	// Editar un cancelado: error
	precio := dec("12")
	_, err = svc.Actualizar(context.Background(), id, dto.ActualizarServicioRequest{Precio: &precio})
	assert.Error(t, err)
}
