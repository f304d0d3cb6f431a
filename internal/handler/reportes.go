package handler

import (
	"net/http"

	"github.com/Elfoider/pulilavado-app/internal/apierror"
	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/service"
	"github.com/Elfoider/pulilavado-app/internal/worker"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc        service.ReporteService
	dispatcher *worker.Dispatcher
}

func NewReportesHandler(svc service.ReporteService, dispatcher *worker.Dispatcher) *ReportesHandler {
	return &ReportesHandler{svc: svc, dispatcher: dispatcher}
}

// Diario godoc
// @Summary      Reporte financiero del día
// @Description  Consolidado de nómina, desglose de ingresos y propinas por método, y efectivo esperado en caja.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200 {object} dto.ReporteFinanciero
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reportes/diario [get]
func (h *ReportesHandler) Diario(c *gin.Context) {
	resp, err := h.svc.Diario(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Rango godoc
// @Summary      Reporte financiero por rango de fechas
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string true "Desde YYYY-MM-DD"
// @Param        hasta query string true "Hasta YYYY-MM-DD (inclusive)"
// @Success      200 {object} dto.ReporteFinanciero
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reportes/rango [get]
func (h *ReportesHandler) Rango(c *gin.Context) {
	resp, err := h.svc.Rango(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar godoc
// @Summary      Exportar reporte de nómina (XLSX o PDF)
// @Description  Encola la generación asíncrona del archivo. Con email se envía el archivo adjunto al terminar.
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ExportarReporteRequest true "Período, formato y destino opcional"
// @Success      202  {object} dto.ExportarReporteResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reportes/exportar [post]
func (h *ReportesHandler) Exportar(c *gin.Context) {
	var req dto.ExportarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	job := worker.ExportJobPayload{
		Desde:   req.Desde,
		Hasta:   req.Hasta,
		Formato: req.Formato,
		Email:   req.Email,
	}
	if err := h.dispatcher.EnqueueExport(c.Request.Context(), job); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo encolar la exportación"))
		return
	}
	c.JSON(http.StatusAccepted, dto.ExportarReporteResponse{Encolado: true, Formato: req.Formato})
}
