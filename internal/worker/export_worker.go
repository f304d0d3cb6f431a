package worker

// export_worker.go
// Processes report export jobs from QueueExport:
//  1. Parse ExportJobPayload (período + formato)
//  2. Load the period's services and consolidate the payroll report
//  3. Render XLSX (excelize) or PDF (fpdf) to the export storage path
//  4. Optionally enqueue an email job with the file attached
// Failed jobs go to the DLQ for manual inspection.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/infra"
	"github.com/Elfoider/pulilavado-app/internal/repository"
	"github.com/Elfoider/pulilavado-app/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ExportJobPayload is the job envelope sent to QueueExport.
type ExportJobPayload struct {
	Desde   string  `json:"desde"`   // YYYY-MM-DD
	Hasta   string  `json:"hasta"`   // YYYY-MM-DD
	Formato string  `json:"formato"` // xlsx | pdf
	Email   *string `json:"email,omitempty"`
}

type ExportWorker struct {
	servicioRepo repository.ServicioRepository
	dispatcher   *Dispatcher
	rdb          *redis.Client
	storagePath  string
}

func NewExportWorker(
	servicioRepo repository.ServicioRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	storagePath string,
) *ExportWorker {
	return &ExportWorker{
		servicioRepo: servicioRepo,
		dispatcher:   dispatcher,
		rdb:          rdb,
		storagePath:  storagePath,
	}
}

func (w *ExportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ExportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("export_worker: invalid payload")
		SendToDLQ(ctx, w.rdb, QueueExport, "export", raw, "unmarshal: "+err.Error(), 1)
		return
	}

	filePath, err := w.generar(ctx, payload)
	if err != nil {
		log.Error().Err(err).
			Str("desde", payload.Desde).Str("hasta", payload.Hasta).
			Str("formato", payload.Formato).
			Msg("export_worker: export failed")
		SendToDLQ(ctx, w.rdb, QueueExport, "export", raw, err.Error(), 1)
		return
	}

	log.Info().Str("file", filePath).Msg("export_worker: reporte generated")

	if payload.Email != nil && *payload.Email != "" {
		emailJob := EmailJobPayload{
			ToEmail:        *payload.Email,
			Subject:        fmt.Sprintf("Reporte de nómina %s a %s", payload.Desde, payload.Hasta),
			Body:           "Adjunto el reporte de nómina y recaudación del período solicitado.",
			AttachmentPath: filePath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Error().Err(err).Msg("export_worker: failed to enqueue email job")
		}
	}
}

func (w *ExportWorker) generar(ctx context.Context, payload ExportJobPayload) (string, error) {
	d, err := time.Parse("2006-01-02", payload.Desde)
	if err != nil {
		return "", fmt.Errorf("desde inválido: %w", err)
	}
	h, err := time.Parse("2006-01-02", payload.Hasta)
	if err != nil {
		return "", fmt.Errorf("hasta inválido: %w", err)
	}

	inicio := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	fin := time.Date(h.Year(), h.Month(), h.Day(), 23, 59, 59, 999999999, time.Local)

	servicios, err := w.servicioRepo.FindByRango(ctx, inicio, fin, nil)
	if err != nil {
		return "", fmt.Errorf("cargar servicios: %w", err)
	}

	dias := int(h.Sub(d).Hours()/24) + 1
	reporte := service.Consolidar(servicios, payload.Desde, payload.Hasta, dias)

	switch payload.Formato {
	case "pdf":
		return infra.GenerateNominaPDF(reporte, w.storagePath)
	default:
		return infra.GenerateNominaXLSX(reporte, servicios, w.storagePath)
	}
}
