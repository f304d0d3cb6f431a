package service

import (
	"context"
	"testing"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminarLavadorConServiciosRechazado(t *testing.T) {
	lavadorRepo := newStubLavadorRepo()
	servicioRepo := newStubServicioRepo()
	svc := NewLavadorService(lavadorRepo, servicioRepo)

	resp, err := svc.Crear(context.Background(), dto.CrearLavadorRequest{Nombre: "Carlos"})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	s := servicioPagado(id, "Carlos", "20", "0.4", model.MetodoEfectivo)
	_ = servicioRepo.Create(context.Background(), &s)

	err = svc.Eliminar(context.Background(), id)
	assert.Error(t, err)

	// El lavador sigue existiendo; la salida correcta es desactivarlo.
	require.NoError(t, svc.Desactivar(context.Background(), id))
	got, err := svc.Obtener(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.Activo)
}

func TestEliminarLavadorSinServicios(t *testing.T) {
	lavadorRepo := newStubLavadorRepo()
	svc := NewLavadorService(lavadorRepo, newStubServicioRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearLavadorRequest{Nombre: "Temporal"})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Eliminar(context.Background(), id))
	_, err = svc.Obtener(context.Background(), id)
	assert.Error(t, err)
}

func TestListarLavadoresFiltraInactivos(t *testing.T) {
	lavadorRepo := newStubLavadorRepo()
	svc := NewLavadorService(lavadorRepo, newStubServicioRepo())

	activo, _ := svc.Crear(context.Background(), dto.CrearLavadorRequest{Nombre: "Activo"})
	inactivo, _ := svc.Crear(context.Background(), dto.CrearLavadorRequest{Nombre: "Inactivo"})
	require.NoError(t, svc.Desactivar(context.Background(), uuid.MustParse(inactivo.ID)))

	lista, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, activo.ID, lista[0].ID)

	lista, err = svc.Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
