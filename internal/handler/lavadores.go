package handler

import (
	"net/http"

	"github.com/Elfoider/pulilavado-app/internal/apierror"
	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LavadoresHandler struct {
	svc        service.LavadorService
	reporteSvc service.ReporteService
}

func NewLavadoresHandler(svc service.LavadorService, reporteSvc service.ReporteService) *LavadoresHandler {
	return &LavadoresHandler{svc: svc, reporteSvc: reporteSvc}
}

// Crear godoc
// @Summary      Registrar un lavador
// @Tags         lavadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearLavadorRequest true "Datos del lavador"
// @Success      201  {object} dto.LavadorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/lavadores [post]
func (h *LavadoresHandler) Crear(c *gin.Context) {
	var req dto.CrearLavadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar lavadores
// @Tags         lavadores
// @Produce      json
// @Security     BearerAuth
// @Param        incluir_inactivos query bool false "Incluir lavadores desactivados"
// @Success      200 {array} dto.LavadorResponse
// @Router       /v1/lavadores [get]
func (h *LavadoresHandler) Listar(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), incluirInactivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lavadores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener un lavador
// @Tags         lavadores
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del lavador"
// @Success      200 {object} dto.LavadorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/lavadores/{id} [get]
func (h *LavadoresHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Editar un lavador
// @Description  Cambia nombre o teléfono. Los servicios históricos conservan el nombre con el que fueron registrados.
// @Tags         lavadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID del lavador"
// @Param        body body dto.ActualizarLavadorRequest true "Campos a actualizar"
// @Success      200  {object} dto.LavadorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/lavadores/{id} [put]
func (h *LavadoresHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarLavadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar un lavador
// @Tags         lavadores
// @Security     BearerAuth
// @Param        id path string true "UUID del lavador"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/lavadores/{id}/desactivar [post]
func (h *LavadoresHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivar godoc
// @Summary      Reactivar un lavador
// @Tags         lavadores
// @Security     BearerAuth
// @Param        id path string true "UUID del lavador"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/lavadores/{id}/reactivar [post]
func (h *LavadoresHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary      Eliminar un lavador (solo administradores)
// @Description  Borrado físico. Se rechaza con 409 si el lavador tiene servicios registrados.
// @Tags         lavadores
// @Security     BearerAuth
// @Param        id path string true "UUID del lavador"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/lavadores/{id} [delete]
func (h *LavadoresHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Nomina godoc
// @Summary      Nómina individual del lavador
// @Description  Resume comisiones, propinas en efectivo vs digitales y el total a pagar del período.
// @Tags         lavadores
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string true  "UUID del lavador"
// @Param        rango query string false "semana | mes | todo (default semana)"
// @Success      200 {object} dto.NominaLavadorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/lavadores/{id}/nomina [get]
func (h *LavadoresHandler) Nomina(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.reporteSvc.NominaLavador(c.Request.Context(), id, c.Query("rango"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
