package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minipigs/internal/catalog"
	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/promo"
	"minipigs/internal/repository"

	"github.com/google/uuid"
)

// CerditoService maneja el catálogo y la ficha de los cerditos. El CRUD de
// administración nunca toca estado ni dueño: esa proyección pertenece al
// sincronizador de ventas.
type CerditoService interface {
	// Catálogo público: sólo cerditos con visibilidad "public".
	ListCatalogo(ctx context.Context, filter dto.CerditoFilter) (*dto.CerditoListResponse, error)
	ObtenerPublico(ctx context.Context, id uuid.UUID) (*dto.CerditoResponse, error)
	CerditoDelMes(ctx context.Context) (*dto.CerditoResponse, error)

	// Administración.
	ListAdmin(ctx context.Context, filter dto.CerditoFilter) (*dto.CerditoListResponse, error)
	ObtenerAdmin(ctx context.Context, id uuid.UUID) (*dto.CerditoResponse, error)
	Crear(ctx context.Context, req dto.CrearCerditoRequest) (*dto.CerditoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCerditoRequest) (*dto.CerditoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	MarcarDelMes(ctx context.Context, id uuid.UUID) error
	CrearHito(ctx context.Context, cerditoID uuid.UUID, req dto.CrearHitoRequest) (*dto.HitoResponse, error)
	EliminarHito(ctx context.Context, cerditoID uuid.UUID, hitoID string) error
}

type cerditoService struct {
	repo repository.CerditoRepository
}

func NewCerditoService(repo repository.CerditoRepository) CerditoService {
	return &cerditoService{repo: repo}
}

// ── Catálogo público ─────────────────────────────────────────────────────────

func (s *cerditoService) ListCatalogo(ctx context.Context, filter dto.CerditoFilter) (*dto.CerditoListResponse, error) {
	cerditos, err := s.repo.ListPublicos(ctx)
	if err != nil {
		return nil, err
	}
	return pipelineCerditos(cerditos, filter), nil
}

func (s *cerditoService) ObtenerPublico(ctx context.Context, id uuid.UUID) (*dto.CerditoResponse, error) {
	cerdito, err := s.repo.FindByIDConHitos(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("cerdito no encontrado")
		}
		return nil, err
	}
	if cerdito.Visibilidad != model.VisibilidadPublica {
		return nil, errors.New("cerdito no encontrado")
	}
	resp := cerditoToResponse(cerdito)
	return &resp, nil
}

func (s *cerditoService) CerditoDelMes(ctx context.Context) (*dto.CerditoResponse, error) {
	cerditos, err := s.repo.ListPublicos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cerditos {
		if cerditos[i].EsCerditoDelMes {
			resp := cerditoToResponse(&cerditos[i])
			return &resp, nil
		}
	}
	return nil, errors.New("no hay cerdito del mes")
}

// ── Administración ───────────────────────────────────────────────────────────

func (s *cerditoService) ListAdmin(ctx context.Context, filter dto.CerditoFilter) (*dto.CerditoListResponse, error) {
	cerditos, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return pipelineCerditos(cerditos, filter), nil
}

func (s *cerditoService) ObtenerAdmin(ctx context.Context, id uuid.UUID) (*dto.CerditoResponse, error) {
	cerdito, err := s.repo.FindByIDConHitos(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("cerdito no encontrado")
		}
		return nil, err
	}
	resp := cerditoToResponse(cerdito)
	return &resp, nil
}

func (s *cerditoService) Crear(ctx context.Context, req dto.CrearCerditoRequest) (*dto.CerditoResponse, error) {
	fechaNac, err := parseFechaOpcional(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	visibilidad := req.Visibilidad
	if visibilidad == "" {
		visibilidad = model.VisibilidadPublica
	}
	cerdito := &model.Cerdito{
		ID:              uuid.New(),
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		EdadMeses:       req.EdadMeses,
		PrecioCRC:       req.PrecioCRC,
		Sexo:            req.Sexo,
		Imagenes:        req.Imagenes,
		FechaNacimiento: fechaNac,
		Estado:          model.CerditoDisponible,
		Visibilidad:     visibilidad,
	}
	if err := s.repo.Create(ctx, cerdito); err != nil {
		return nil, err
	}
	resp := cerditoToResponse(cerdito)
	return &resp, nil
}

func (s *cerditoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCerditoRequest) (*dto.CerditoResponse, error) {
	cerdito, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("cerdito no encontrado")
		}
		return nil, err
	}
	fechaNac, err := parseFechaOpcional(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}

	// Estado y DuenoID se preservan tal como están: este endpoint no los toca.
	cerdito.Nombre = req.Nombre
	cerdito.Descripcion = req.Descripcion
	cerdito.EdadMeses = req.EdadMeses
	cerdito.PrecioCRC = req.PrecioCRC
	cerdito.Sexo = req.Sexo
	cerdito.Imagenes = req.Imagenes
	cerdito.FechaNacimiento = fechaNac
	if req.Visibilidad != "" {
		cerdito.Visibilidad = req.Visibilidad
	}

	if err := s.repo.Save(ctx, cerdito); err != nil {
		return nil, err
	}
	resp := cerditoToResponse(cerdito)
	return &resp, nil
}

// Eliminar rechaza el borrado si el cerdito tiene ventas asociadas; primero
// hay que eliminar la venta (lo que lo devuelve a disponible).
func (s *cerditoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	tieneVentas, err := s.repo.ExisteVentaParaCerdito(ctx, id)
	if err != nil {
		return err
	}
	if tieneVentas {
		return errors.New("el cerdito tiene ventas asociadas; elimine la venta primero")
	}
	return s.repo.Delete(ctx, id)
}

func (s *cerditoService) MarcarDelMes(ctx context.Context, id uuid.UUID) error {
	err := s.repo.MarcarDelMes(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return errors.New("cerdito no encontrado")
	}
	return err
}

func (s *cerditoService) CrearHito(ctx context.Context, cerditoID uuid.UUID, req dto.CrearHitoRequest) (*dto.HitoResponse, error) {
	cerdito, err := s.repo.FindByID(ctx, cerditoID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("cerdito no encontrado")
		}
		return nil, err
	}
	fecha, err := time.Parse(fechaISO, req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}

	hito := model.Hito{
		ID:          uuid.New().String(),
		CerditoID:   cerditoID,
		Fecha:       fecha,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Icono:       req.Icono,
	}
	// Una plantilla rellena lo que el request no trae.
	if req.Plantilla != "" {
		if p, ok := promo.Plantilla(req.Plantilla); ok {
			if hito.Titulo == "" {
				hito.Titulo = p.Titulo
			}
			if hito.Descripcion == "" {
				hito.Descripcion = fmt.Sprintf(p.Descripcion, cerdito.Nombre)
			}
			if hito.Icono == "" {
				hito.Icono = p.Icono
			}
		}
	}

	if err := s.repo.CrearHito(ctx, &hito); err != nil {
		return nil, err
	}
	resp := hitoToResponse(&hito)
	return &resp, nil
}

func (s *cerditoService) EliminarHito(ctx context.Context, cerditoID uuid.UUID, hitoID string) error {
	err := s.repo.EliminarHito(ctx, cerditoID, hitoID)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return errors.New("hito no encontrado")
	}
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

// pipelineCerditos aplica filtro → orden → paginación en memoria sobre el
// listado ya cargado.
func pipelineCerditos(cerditos []model.Cerdito, filter dto.CerditoFilter) *dto.CerditoListResponse {
	filtrados := catalog.FiltrarCerditos(cerditos, catalog.FiltroCerditos{
		Texto:     filter.Texto,
		Sexo:      filter.Sexo,
		Estado:    filter.Estado,
		EdadMin:   filter.EdadMin,
		EdadMax:   filter.EdadMax,
		PrecioMin: filter.PrecioMin,
		PrecioMax: filter.PrecioMax,
	})
	catalog.OrdenarCerditos(filtrados, filter.Orden)

	// Normalizar antes de paginar: la respuesta hace eco de la página servida.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 12
	}
	pagina := catalog.Paginar(filtrados, filter.Page, filter.Limit)
	items := make([]dto.CerditoResponse, 0, len(pagina))
	for i := range pagina {
		items = append(items, cerditoToResponse(&pagina[i]))
	}
	return &dto.CerditoListResponse{
		Data:  items,
		Total: len(filtrados),
		Page:  filter.Page,
		Limit: filter.Limit,
	}
}

func parseFechaOpcional(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(fechaISO, *raw)
	if err != nil {
		return nil, fmt.Errorf("fecha_nacimiento inválida: %w", err)
	}
	return &t, nil
}

func hitoToResponse(h *model.Hito) dto.HitoResponse {
	return dto.HitoResponse{
		ID:          h.ID,
		Fecha:       h.Fecha.Format(fechaISO),
		Titulo:      h.Titulo,
		Descripcion: h.Descripcion,
		Icono:       h.Icono,
	}
}

func cerditoToResponse(c *model.Cerdito) dto.CerditoResponse {
	resp := dto.CerditoResponse{
		ID:              c.ID.String(),
		Nombre:          c.Nombre,
		Descripcion:     c.Descripcion,
		EdadMeses:       c.EdadMeses,
		PrecioCRC:       c.PrecioCRC,
		Sexo:            c.Sexo,
		Imagenes:        c.Imagenes,
		EsCerditoDelMes: c.EsCerditoDelMes,
		Estado:          c.Estado,
		Visibilidad:     c.Visibilidad,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
	if c.FechaNacimiento != nil {
		f := c.FechaNacimiento.Format(fechaISO)
		resp.FechaNacimiento = &f
	}
	for i := range c.Hitos {
		resp.Hitos = append(resp.Hitos, hitoToResponse(&c.Hitos[i]))
	}
	return resp
}
