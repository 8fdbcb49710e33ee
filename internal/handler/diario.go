package handler

import (
	"errors"
	"net/http"

	"minipigs/internal/apierror"
	"minipigs/internal/dto"
	"minipigs/internal/middleware"
	"minipigs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiarioHandler: área de cliente. Todas las rutas pasan por JWTAuth con rol
// cliente o administrador; la propiedad del cerdito se valida en el servicio.
type DiarioHandler struct{ svc service.DiarioService }

func NewDiarioHandler(svc service.DiarioService) *DiarioHandler {
	return &DiarioHandler{svc: svc}
}

func (h *DiarioHandler) MisCerditos(c *gin.Context) {
	userID, ok := duenoDe(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListMisCerditos(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cerditos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiarioHandler) ObtenerDiario(c *gin.Context) {
	userID, ok := duenoDe(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerDiario(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(estadoDeErrorDiario(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiarioHandler) ActualizarChecklist(c *gin.Context) {
	userID, ok := duenoDe(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarChecklistRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarChecklist(c.Request.Context(), userID, id, req.Items)
	if err != nil {
		c.JSON(estadoDeErrorDiario(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiarioHandler) CrearHito(c *gin.Context) {
	userID, ok := duenoDe(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CrearHitoDiarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearHito(c.Request.Context(), userID, id, req)
	if err != nil {
		c.JSON(estadoDeErrorDiario(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func duenoDe(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
		return uuid.Nil, false
	}
	return userID, true
}

func estadoDeErrorDiario(err error) int {
	if errors.Is(err, service.ErrNoEsDueno) {
		return http.StatusForbidden
	}
	return estadoDeError(err)
}
