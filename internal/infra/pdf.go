package infra

// pdf.go — Nómina PDF export using go-pdf/fpdf.
// A4 portrait with:
//   - Business name header and period
//   - Summary box (ingreso bruto, nómina, propinas, efectivo en caja)
//   - Consolidated payroll table, one row per washer
//   - Totals footer row

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Elfoider/pulilavado-app/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateNominaPDF renders the payroll report and returns the file path.
func GenerateNominaPDF(reporte *dto.ReporteFinanciero, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	fileName := fmt.Sprintf("nomina_%s_%s.pdf", reporte.Desde, reporte.Hasta)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Pulilavado — Reporte de Nómina", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	periodo := reporte.Desde
	if reporte.Hasta != reporte.Desde {
		periodo = reporte.Desde + " al " + reporte.Hasta
	}
	pdf.CellFormat(contentW, 6, "Período: "+periodo, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Summary box ──────────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	half := contentW / 2
	summary := [][2]string{
		{"Ingreso bruto", "$" + reporte.IngresoBruto.StringFixed(2)},
		{"Ganancia del negocio", "$" + reporte.GananciaNegocio.StringFixed(2)},
		{"Nómina total", "$" + reporte.TotalNomina.StringFixed(2)},
		{"Propinas", "$" + reporte.TotalPropinas.StringFixed(2)},
		{"Efectivo en caja", "$" + reporte.EfectivoEnCaja.StringFixed(2)},
		{"Autos atendidos", fmt.Sprintf("%d (%d pendientes)", reporte.Autos, reporte.Pendientes)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, s := range summary {
		pdf.CellFormat(half, 6, s[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(half, 6, s[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// ── Consolidated table ───────────────────────────────────────────────────
	cols := []struct {
		label string
		w     float64
		align string
	}{
		{"Lavador", contentW * 0.28, "L"},
		{"Autos", contentW * 0.10, "C"},
		{"Comisión", contentW * 0.15, "R"},
		{"Prop. Efec.", contentW * 0.15, "R"},
		{"Prop. Digit.", contentW * 0.15, "R"},
		{"Total a Pagar", contentW * 0.17, "R"},
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.w, 7, c.label, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range reporte.Lavadores {
		vals := []string{
			l.Nombre,
			fmt.Sprintf("%d", l.Autos),
			"$" + l.TotalComision.StringFixed(2),
			"$" + l.PropinasEfectivo.StringFixed(2),
			"$" + l.PropinasDigitales.StringFixed(2),
			"$" + l.TotalAPagar.StringFixed(2),
		}
		for i, c := range cols {
			pdf.CellFormat(c.w, 6, vals[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Totals footer ────────────────────────────────────────────────────────
	propDigitales := reporte.TotalPropinas.Sub(reporte.Propinas.Efectivo)
	pdf.SetFont("Helvetica", "B", 9)
	totales := []string{
		"TOTALES",
		fmt.Sprintf("%d", reporte.Autos),
		"$" + reporte.TotalNomina.StringFixed(2),
		"$" + reporte.Propinas.Efectivo.StringFixed(2),
		"$" + propDigitales.StringFixed(2),
		"$" + reporte.TotalNomina.Add(propDigitales).StringFixed(2),
	}
	for i, c := range cols {
		pdf.CellFormat(c.w, 7, totales[i], "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
