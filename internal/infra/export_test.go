package infra

import (
	"os"
	"testing"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"
	"github.com/Elfoider/pulilavado-app/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reporteDePrueba() (*dto.ReporteFinanciero, []model.Servicio) {
	lavador := uuid.New()
	precio := decimal.RequireFromString("25")
	tasa := decimal.RequireFromString("0.4")
	gl := precio.Mul(tasa).Round(2)
	servicios := []model.Servicio{{
		ID:              uuid.New(),
		LavadorID:       lavador,
		LavadorNombre:   "Carlos",
		VehiculoModelo:  "Corolla",
		PrecioTotal:     precio,
		MetodoPago:      model.MetodoEfectivo,
		TasaComision:    tasa,
		GananciaLavador: gl,
		GananciaNegocio: precio.Sub(gl),
		PropinaMonto:    decimal.Zero,
		EstadoPago:      model.EstadoPagoPagado,
		Estado:          model.EstadoCompletado,
		CreatedAt:       time.Now(),
	}}
	return service.Consolidar(servicios, "2026-08-01", "2026-08-01", 1), servicios
}

func TestGenerateNominaXLSX(t *testing.T) {
	reporte, servicios := reporteDePrueba()
	dir := t.TempDir()

	path, err := GenerateNominaXLSX(reporte, servicios, dir)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "NÓMINA TOTALIZADA")
	assert.Contains(t, sheets, "Auditoria (Detalle)")

	rows, err := f.GetRows("NÓMINA TOTALIZADA")
	require.NoError(t, err)
	// encabezado + una fila de lavador + fila TOTALES
	require.GreaterOrEqual(t, len(rows), 3)
}

func TestGenerateNominaPDF(t *testing.T) {
	reporte, _ := reporteDePrueba()
	dir := t.TempDir()

	path, err := GenerateNominaPDF(reporte, dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
