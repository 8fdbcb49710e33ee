package handler

import (
	"net/http"

	"minipigs/internal/apierror"
	"minipigs/internal/dto"
	"minipigs/internal/middleware"
	"minipigs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TestimoniosHandler struct{ svc service.TestimonioService }

func NewTestimoniosHandler(svc service.TestimonioService) *TestimoniosHandler {
	return &TestimoniosHandler{svc: svc}
}

// Crear acepta reseñas de visitantes anónimos y de clientes logueados; si hay
// sesión la reseña queda enlazada a la cuenta.
func (h *TestimoniosHandler) Crear(c *gin.Context) {
	var req dto.CrearTestimonioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	var usuarioID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		usuarioID = &id
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, usuarioID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TestimoniosHandler) ListPublicos(c *gin.Context) {
	resp, err := h.svc.ListPublicos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar testimonios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TestimoniosHandler) ListTodos(c *gin.Context) {
	resp, err := h.svc.ListTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar testimonios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TestimoniosHandler) Aprobar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Aprobar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TestimoniosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar testimonio"))
		return
	}
	c.Status(http.StatusNoContent)
}
