package handler

import (
	"net/http"

	"minipigs/internal/apierror"
	"minipigs/internal/dto"
	"minipigs/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// Obtener sirve los ajustes del sitio (WhatsApp, horario, textos de portada).
func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	valores, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer configuracion"))
		return
	}
	c.JSON(http.StatusOK, valores)
}

func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	valores, err := h.svc.Actualizar(c.Request.Context(), req.Valores)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar configuracion"))
		return
	}
	c.JSON(http.StatusOK, valores)
}
