package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"minipigs/internal/catalog"
	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const productoCacheTTL = 1 * time.Hour

// ProductoService maneja la tienda de accesorios.
type ProductoService interface {
	ListarTienda(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)

	ListarAdmin(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func (s *productoService) ListarTienda(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	return pipelineProductos(productos, filter), nil
}

// ObtenerPorID sirve el detalle con cache Redis de por medio: lectura
// frecuente desde las fichas de cerditos ("lo que necesitás para recibirlo").
func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	cacheKey := "producto:" + id.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProductoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("producto no encontrado")
		}
		return nil, err
	}
	resp := productoToResponse(producto)

	// Poblar cache, best effort.
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, productoCacheTTL).Err()
		}
	}
	return &resp, nil
}

func (s *productoService) ListarAdmin(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return pipelineProductos(productos, filter), nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	producto := &model.Producto{
		ID:          uuid.New(),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Imagenes:    req.Imagenes,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("producto no encontrado")
		}
		return nil, err
	}
	producto.Nombre = req.Nombre
	producto.Descripcion = req.Descripcion
	producto.Categoria = req.Categoria
	producto.Precio = req.Precio
	producto.Imagenes = req.Imagenes

	if err := s.repo.Save(ctx, producto); err != nil {
		return nil, err
	}
	s.invalidar(ctx, id)
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("producto no encontrado")
		}
		return nil, err
	}
	if producto.Stock+delta < 0 {
		return nil, errors.New("stock insuficiente")
	}
	if err := s.repo.AjustarStock(ctx, id, delta); err != nil {
		return nil, err
	}
	s.invalidar(ctx, id)

	producto.Stock += delta
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidar(ctx, id)
	return nil
}

func (s *productoService) invalidar(ctx context.Context, id uuid.UUID) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, "producto:"+id.String()).Err()
	}
}

func pipelineProductos(productos []model.Producto, filter dto.ProductoFilter) *dto.ProductoListResponse {
	filtrados := catalog.FiltrarProductos(productos, catalog.FiltroProductos{
		Texto:     filter.Texto,
		Categoria: filter.Categoria,
		PrecioMin: filter.PrecioMin,
		PrecioMax: filter.PrecioMax,
	})
	catalog.OrdenarProductos(filtrados, filter.Orden)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 12
	}
	pagina := catalog.Paginar(filtrados, filter.Page, filter.Limit)
	items := make([]dto.ProductoResponse, 0, len(pagina))
	for i := range pagina {
		items = append(items, productoToResponse(&pagina[i]))
	}
	return &dto.ProductoListResponse{
		Data:  items,
		Total: len(filtrados),
		Page:  filter.Page,
		Limit: filter.Limit,
	}
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Imagenes:    p.Imagenes,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
