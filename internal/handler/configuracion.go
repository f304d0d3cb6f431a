package handler

import (
	"net/http"

	"github.com/Elfoider/pulilavado-app/internal/apierror"
	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// Obtener godoc
// @Summary      Porcentaje de comisión vigente
// @Tags         configuracion
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ConfiguracionResponse
// @Router       /v1/configuracion [get]
func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Cambiar el porcentaje de comisión (solo administradores)
// @Description  Afecta solo servicios nuevos; los existentes conservan su tasa estampada. Cada cambio queda en la bitácora.
// @Tags         configuracion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ActualizarConfiguracionRequest true "Nuevo porcentaje (0-100)"
// @Success      200  {object} dto.ConfiguracionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/configuracion [put]
func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary      Bitácora de cambios de comisión
// @Tags         configuracion
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ComisionHistorialItem
// @Router       /v1/configuracion/historial [get]
func (h *ConfiguracionHandler) Historial(c *gin.Context) {
	resp, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer la bitácora"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
