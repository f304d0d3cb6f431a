package infra

// excel.go — Nómina XLSX export via excelize.
// Two sheets: the consolidated payroll per washer, and an audit sheet with one
// row per service so the totals can be verified by hand.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/xuri/excelize/v2"
)

// GenerateNominaXLSX writes the payroll workbook and returns its path.
func GenerateNominaXLSX(reporte *dto.ReporteFinanciero, servicios []model.Servicio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("excel: create storage dir: %w", err)
	}
	fileName := fmt.Sprintf("nomina_%s_%s.xlsx", reporte.Desde, reporte.Hasta)
	filePath := filepath.Join(storagePath, fileName)

	f := excelize.NewFile()

	nomina := "NÓMINA TOTALIZADA"
	index, err := f.NewSheet(nomina)
	if err != nil {
		return "", fmt.Errorf("excel: new sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Lavador", "Autos", "Comisión", "Propinas Efectivo", "Propinas Digitales", "Total a Pagar"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(nomina, cell, h)
	}

	row := 2
	for _, l := range reporte.Lavadores {
		f.SetCellValue(nomina, fmt.Sprintf("A%d", row), l.Nombre)
		f.SetCellValue(nomina, fmt.Sprintf("B%d", row), l.Autos)
		f.SetCellValue(nomina, fmt.Sprintf("C%d", row), l.TotalComision.InexactFloat64())
		f.SetCellValue(nomina, fmt.Sprintf("D%d", row), l.PropinasEfectivo.InexactFloat64())
		f.SetCellValue(nomina, fmt.Sprintf("E%d", row), l.PropinasDigitales.InexactFloat64())
		f.SetCellValue(nomina, fmt.Sprintf("F%d", row), l.TotalAPagar.InexactFloat64())
		row++
	}

	// Fila TOTALES al pie del consolidado
	f.SetCellValue(nomina, fmt.Sprintf("A%d", row), "TOTALES")
	f.SetCellValue(nomina, fmt.Sprintf("B%d", row), reporte.Autos)
	f.SetCellValue(nomina, fmt.Sprintf("C%d", row), reporte.TotalNomina.InexactFloat64())
	f.SetCellValue(nomina, fmt.Sprintf("D%d", row), reporte.Propinas.Efectivo.InexactFloat64())
	propDigitales := reporte.TotalPropinas.Sub(reporte.Propinas.Efectivo)
	f.SetCellValue(nomina, fmt.Sprintf("E%d", row), propDigitales.InexactFloat64())
	f.SetCellValue(nomina, fmt.Sprintf("F%d", row), reporte.TotalNomina.Add(propDigitales).InexactFloat64())

	// ── Hoja de auditoría: un servicio por fila ──────────────────────────────
	detalle := "Auditoria (Detalle)"
	if _, err := f.NewSheet(detalle); err != nil {
		return "", fmt.Errorf("excel: new sheet: %w", err)
	}

	detHeaders := []string{"Fecha", "Lavador", "Vehículo", "Precio", "Método", "Comisión", "Propina", "Método Propina", "Estado Pago", "Estado"}
	for i, h := range detHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(detalle, cell, h)
	}

	row = 2
	for i := range servicios {
		sv := &servicios[i]
		propinaMetodo := ""
		if sv.PropinaMetodo != nil {
			propinaMetodo = *sv.PropinaMetodo
		}
		f.SetCellValue(detalle, fmt.Sprintf("A%d", row), sv.CreatedAt.Format("02/01/2006 15:04"))
		f.SetCellValue(detalle, fmt.Sprintf("B%d", row), sv.LavadorNombre)
		f.SetCellValue(detalle, fmt.Sprintf("C%d", row), sv.VehiculoModelo)
		f.SetCellValue(detalle, fmt.Sprintf("D%d", row), sv.PrecioTotal.InexactFloat64())
		f.SetCellValue(detalle, fmt.Sprintf("E%d", row), sv.MetodoPago)
		f.SetCellValue(detalle, fmt.Sprintf("F%d", row), sv.GananciaLavador.InexactFloat64())
		f.SetCellValue(detalle, fmt.Sprintf("G%d", row), sv.PropinaMonto.InexactFloat64())
		f.SetCellValue(detalle, fmt.Sprintf("H%d", row), propinaMetodo)
		f.SetCellValue(detalle, fmt.Sprintf("I%d", row), sv.EstadoPago)
		f.SetCellValue(detalle, fmt.Sprintf("J%d", row), sv.Estado)
		row++
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("excel: write file: %w", err)
	}
	return filePath, nil
}
