package handler

import (
	"mime/multipart"
	"net/http"
	"sync"

	"minipigs/internal/apierror"
	"minipigs/internal/infra"

	"github.com/gin-gonic/gin"
)

const maxImagenesPorRequest = 10

type ImagenesHandler struct{ store *infra.ImageStore }

func NewImagenesHandler(store *infra.ImageStore) *ImagenesHandler {
	return &ImagenesHandler{store: store}
}

// Subir godoc
// @Summary Subida de imagenes (multipart, campo "imagenes", hasta 10)
// @Tags imagenes
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string][]string
// @Failure 400 {object} apierror.APIError
// @Router /v1/admin/imagenes [post]
func (h *ImagenesHandler) Subir(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario multipart invalido"))
		return
	}
	files := form.File["imagenes"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("No se recibieron imagenes"))
		return
	}
	if len(files) > maxImagenesPorRequest {
		c.JSON(http.StatusBadRequest, apierror.New("Maximo 10 imagenes por solicitud"))
		return
	}

	// Guardado concurrente: cada archivo en su goroutine, resultados por
	// índice para conservar el orden del formulario.
	type resultado struct {
		url string
		err error
	}
	resultados := make([]resultado, len(files))
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			url, err := h.store.Guardar(fh)
			resultados[i] = resultado{url: url, err: err}
		}(i, fh)
	}
	wg.Wait()

	urls := make([]string, 0, len(resultados))
	for _, r := range resultados {
		if r.err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(r.err.Error()))
			return
		}
		urls = append(urls, r.url)
	}
	c.JSON(http.StatusCreated, gin.H{"urls": urls})
}
