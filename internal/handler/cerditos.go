package handler

import (
	"net/http"

	"minipigs/internal/apierror"
	"minipigs/internal/dto"
	"minipigs/internal/service"

	"github.com/gin-gonic/gin"
)

type CerditosHandler struct{ svc service.CerditoService }

func NewCerditosHandler(svc service.CerditoService) *CerditosHandler {
	return &CerditosHandler{svc: svc}
}

// ── Catálogo público ─────────────────────────────────────────────────────────

// ListCatalogo godoc
// @Summary Catalogo publico de cerditos (filtro, orden y paginacion)
// @Tags cerditos
// @Produce json
// @Param q query string false "Busqueda por nombre o descripcion"
// @Param sexo query string false "macho | hembra"
// @Param estado query string false "disponible | reservado | vendido"
// @Param edad_min query int false "Edad minima en meses"
// @Param edad_max query int false "Edad maxima en meses"
// @Param precio_min query int false "Precio minimo en colones"
// @Param precio_max query int false "Precio maximo en colones"
// @Param orden query string false "reciente | precio-asc | precio-desc | edad-asc | edad-desc"
// @Success 200 {object} dto.CerditoListResponse
// @Router /v1/cerditos [get]
func (h *CerditosHandler) ListCatalogo(c *gin.Context) {
	var filter dto.CerditoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListCatalogo(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cerditos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CerditosHandler) ObtenerPublico(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPublico(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CerditosHandler) CerditoDelMes(c *gin.Context) {
	resp, err := h.svc.CerditoDelMes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Administración ───────────────────────────────────────────────────────────

func (h *CerditosHandler) ListAdmin(c *gin.Context) {
	var filter dto.CerditoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cerditos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CerditosHandler) ObtenerAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerAdmin(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CerditosHandler) Crear(c *gin.Context) {
	var req dto.CrearCerditoRequest
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

func (h *CerditosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCerditoRequest
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

func (h *CerditosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CerditosHandler) MarcarDelMes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarcarDelMes(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CerditosHandler) CrearHito(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CrearHitoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearHito(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CerditosHandler) EliminarHito(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarHito(c.Request.Context(), id, c.Param("hito_id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
