package service

import (
	"context"
	"errors"
	"time"

	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/repository"

	"github.com/google/uuid"
)

// TestimonioService: las reseñas entran sin aprobar y sólo las aprobadas se
// sirven al sitio público.
type TestimonioService interface {
	Crear(ctx context.Context, req dto.CrearTestimonioRequest, usuarioID *uuid.UUID) (*dto.TestimonioResponse, error)
	ListPublicos(ctx context.Context) ([]dto.TestimonioResponse, error)
	ListTodos(ctx context.Context) ([]dto.TestimonioResponse, error)
	Aprobar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type testimonioService struct {
	repo repository.TestimonioRepository
}

func NewTestimonioService(repo repository.TestimonioRepository) TestimonioService {
	return &testimonioService{repo: repo}
}

func (s *testimonioService) Crear(ctx context.Context, req dto.CrearTestimonioRequest, usuarioID *uuid.UUID) (*dto.TestimonioResponse, error) {
	t := &model.Testimonio{
		ID:           uuid.New(),
		Autor:        req.Autor,
		Texto:        req.Texto,
		Calificacion: req.Calificacion,
		Aprobado:     false,
		UsuarioID:    usuarioID,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := testimonioToResponse(t)
	return &resp, nil
}

func (s *testimonioService) ListPublicos(ctx context.Context) ([]dto.TestimonioResponse, error) {
	ts, err := s.repo.ListAprobados(ctx)
	if err != nil {
		return nil, err
	}
	return testimoniosToResponse(ts), nil
}

func (s *testimonioService) ListTodos(ctx context.Context) ([]dto.TestimonioResponse, error) {
	ts, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return testimoniosToResponse(ts), nil
}

func (s *testimonioService) Aprobar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Aprobar(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return errors.New("testimonio no encontrado")
	}
	return err
}

func (s *testimonioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func testimoniosToResponse(ts []model.Testimonio) []dto.TestimonioResponse {
	resp := make([]dto.TestimonioResponse, 0, len(ts))
	for i := range ts {
		resp = append(resp, testimonioToResponse(&ts[i]))
	}
	return resp
}

func testimonioToResponse(t *model.Testimonio) dto.TestimonioResponse {
	return dto.TestimonioResponse{
		ID:           t.ID.String(),
		Autor:        t.Autor,
		Texto:        t.Texto,
		Calificacion: t.Calificacion,
		Aprobado:     t.Aprobado,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}
