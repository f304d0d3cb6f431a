package handler

import (
	"net/http"

	"github.com/Elfoider/pulilavado-app/internal/apierror"
	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiciosHandler struct{ svc service.ServicioService }

func NewServiciosHandler(svc service.ServicioService) *ServiciosHandler {
	return &ServiciosHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar un nuevo servicio de lavado
// @Description  Crea el servicio estampando la tasa de comisión vigente y calculando las ganancias del lavador y del negocio. Con pendiente=true se registra el auto sin cobro.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarServicioRequest true "Detalle del servicio"
// @Success      201  {object} dto.ServicioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios [post]
func (h *ServiciosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar servicios
// @Description  Lista paginada de servicios filtrada por fecha, lavador y estado (default: completados de hoy).
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        fecha      query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        lavador_id query string false "UUID del lavador"
// @Param        estado     query string false "completado | cancelado | all"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.ServicioListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/servicios [get]
func (h *ServiciosHandler) Listar(c *gin.Context) {
	var filter dto.ServicioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar servicios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener un servicio
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      200 {object} dto.ServicioResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/servicios/{id} [get]
func (h *ServiciosHandler) Obtener(c *gin.Context) {
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
// @Summary      Editar un servicio
// @Description  Edita precio, método, propina u observaciones. El precio recalcula ganancias con la tasa guardada en el registro. marcar_pagado cobra un servicio pendiente.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                        true "UUID del servicio"
// @Param        body body dto.ActualizarServicioRequest true "Campos a actualizar"
// @Success      200  {object} dto.ServicioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios/{id} [put]
func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarServicioRequest
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

// Cancelar godoc
// @Summary      Cancelar un servicio
// @Description  Marca el servicio como cancelado: desaparece de todos los reportes pero queda en el historial.
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/servicios/{id}/cancelar [post]
func (h *ServiciosHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary      Eliminar un servicio (solo administradores)
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/servicios/{id} [delete]
func (h *ServiciosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
