package service

import (
	"context"
	"testing"

	"github.com/Elfoider/pulilavado-app/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActualizarConfiguracionValidaRango(t *testing.T) {
	svc := NewConfiguracionService(newStubConfigRepo(40))

	_, err := svc.Actualizar(context.Background(), dto.ActualizarConfiguracionRequest{
		PorcentajeComision: dec("-1"),
	})
	assert.Error(t, err)

	_, err = svc.Actualizar(context.Background(), dto.ActualizarConfiguracionRequest{
		PorcentajeComision: dec("101"),
	})
	assert.Error(t, err)

	resp, err := svc.Actualizar(context.Background(), dto.ActualizarConfiguracionRequest{
		PorcentajeComision: dec("45"),
	})
	require.NoError(t, err)
	assert.True(t, resp.PorcentajeComision.Equal(dec("45")))
}

func TestActualizarConfiguracionDejaBitacora(t *testing.T) {
	repo := newStubConfigRepo(40)
	svc := NewConfiguracionService(repo)

	_, err := svc.Actualizar(context.Background(), dto.ActualizarConfiguracionRequest{PorcentajeComision: dec("45")})
	require.NoError(t, err)
	_, err = svc.Actualizar(context.Background(), dto.ActualizarConfiguracionRequest{PorcentajeComision: dec("50")})
	require.NoError(t, err)

	hist, err := svc.Historial(context.Background())
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.True(t, hist[0].Porcentaje.Equal(dec("45")))
	assert.True(t, hist[1].Porcentaje.Equal(dec("50")))
}
