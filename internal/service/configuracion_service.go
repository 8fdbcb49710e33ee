package service

import (
	"context"

	"minipigs/internal/repository"
)

// ConfiguracionService expone los ajustes del sitio como un mapa clave/valor.
type ConfiguracionService interface {
	Obtener(ctx context.Context) (map[string]string, error)
	Actualizar(ctx context.Context, valores map[string]string) (map[string]string, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
}

func NewConfiguracionService(repo repository.ConfiguracionRepository) ConfiguracionService {
	return &configuracionService{repo: repo}
}

func (s *configuracionService) Obtener(ctx context.Context) (map[string]string, error) {
	return s.repo.GetTodas(ctx)
}

func (s *configuracionService) Actualizar(ctx context.Context, valores map[string]string) (map[string]string, error) {
	if err := s.repo.Upsert(ctx, valores); err != nil {
		return nil, err
	}
	return s.repo.GetTodas(ctx)
}
