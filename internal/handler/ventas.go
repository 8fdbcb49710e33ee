package handler

import (
	"net/http"
	"strings"

	"minipigs/internal/apierror"
	"minipigs/internal/dto"
	"minipigs/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

// RegistrarVenta godoc
// @Summary Registrar una venta y reservar el cerdito (transaccional)
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVentaRequest true "Venta"
// @Success 201 {object} dto.VentaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/admin/ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenta(c.Request.Context(), req)
	if err != nil {
		c.JSON(estadoDeError(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarVenta godoc
// @Summary Actualizar una venta; proyecta estado y dueno sobre el cerdito
// @Tags ventas
// @Accept json
// @Produce json
// @Param id path string true "ID de la venta"
// @Param body body dto.ActualizarVentaRequest true "Estado completo deseado"
// @Success 200 {object} dto.VentaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/admin/ventas/{id} [put]
func (h *VentasHandler) ActualizarVenta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVenta(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(estadoDeError(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) EliminarVenta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarVenta(c.Request.Context(), id); err != nil {
		c.JSON(estadoDeError(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(estadoDeError(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) ListarVentas(c *gin.Context) {
	var filter dto.VentaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListVentas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// estadoDeError traduce los errores de negocio del sincronizador a HTTP.
func estadoDeError(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no encontrad"):
		return http.StatusNotFound
	case strings.Contains(msg, "inválid"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
