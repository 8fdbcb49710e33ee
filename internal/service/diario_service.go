package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/repository"

	"github.com/google/uuid"
)

// ErrNoEsDueno: el cerdito existe pero pertenece a otro cliente. El handler lo
// traduce a 403.
var ErrNoEsDueno = errors.New("el cerdito no pertenece a este usuario")

// DiarioService es el área de cliente: cada adoptante ve y alimenta el diario
// de vida de sus propios cerditos.
type DiarioService interface {
	ListMisCerditos(ctx context.Context, duenoID uuid.UUID) ([]dto.CerditoResponse, error)
	ObtenerDiario(ctx context.Context, duenoID, cerditoID uuid.UUID) (*dto.DiarioResponse, error)
	ActualizarChecklist(ctx context.Context, duenoID, cerditoID uuid.UUID, items []string) (*dto.DiarioResponse, error)
	CrearHito(ctx context.Context, duenoID, cerditoID uuid.UUID, req dto.CrearHitoDiarioRequest) (*dto.HitoResponse, error)
}

type diarioService struct {
	repo repository.CerditoRepository
}

func NewDiarioService(repo repository.CerditoRepository) DiarioService {
	return &diarioService{repo: repo}
}

func (s *diarioService) ListMisCerditos(ctx context.Context, duenoID uuid.UUID) ([]dto.CerditoResponse, error) {
	cerditos, err := s.repo.ListPorDueno(ctx, duenoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CerditoResponse, 0, len(cerditos))
	for i := range cerditos {
		resp = append(resp, cerditoToResponse(&cerditos[i]))
	}
	return resp, nil
}

func (s *diarioService) ObtenerDiario(ctx context.Context, duenoID, cerditoID uuid.UUID) (*dto.DiarioResponse, error) {
	cerdito, err := s.cerditoDe(ctx, duenoID, cerditoID)
	if err != nil {
		return nil, err
	}
	return s.diarioDe(ctx, cerdito)
}

// ActualizarChecklist reemplaza el set completo de ítems marcados.
func (s *diarioService) ActualizarChecklist(ctx context.Context, duenoID, cerditoID uuid.UUID, items []string) (*dto.DiarioResponse, error) {
	cerdito, err := s.cerditoDe(ctx, duenoID, cerditoID)
	if err != nil {
		return nil, err
	}
	cerdito.ChecklistCompletado = items
	if err := s.repo.Save(ctx, cerdito); err != nil {
		return nil, err
	}
	return s.diarioDe(ctx, cerdito)
}

func (s *diarioService) CrearHito(ctx context.Context, duenoID, cerditoID uuid.UUID, req dto.CrearHitoDiarioRequest) (*dto.HitoResponse, error) {
	if _, err := s.cerditoDe(ctx, duenoID, cerditoID); err != nil {
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
	if err := s.repo.CrearHito(ctx, &hito); err != nil {
		return nil, err
	}
	resp := hitoToResponse(&hito)
	return &resp, nil
}

// cerditoDe carga el cerdito y verifica la propiedad.
func (s *diarioService) cerditoDe(ctx context.Context, duenoID, cerditoID uuid.UUID) (*model.Cerdito, error) {
	cerdito, err := s.repo.FindByID(ctx, cerditoID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("cerdito no encontrado")
		}
		return nil, err
	}
	if cerdito.DuenoID == nil || *cerdito.DuenoID != duenoID {
		return nil, ErrNoEsDueno
	}
	return cerdito, nil
}

func (s *diarioService) diarioDe(ctx context.Context, cerdito *model.Cerdito) (*dto.DiarioResponse, error) {
	hitos, err := s.repo.ListHitos(ctx, cerdito.ID)
	if err != nil {
		return nil, err
	}
	hitosResp := make([]dto.HitoResponse, 0, len(hitos))
	for i := range hitos {
		hitosResp = append(hitosResp, hitoToResponse(&hitos[i]))
	}
	checklist := cerdito.ChecklistCompletado
	if checklist == nil {
		checklist = []string{}
	}
	return &dto.DiarioResponse{
		Cerdito:             cerditoToResponse(cerdito),
		Hitos:               hitosResp,
		ChecklistCompletado: checklist,
	}, nil
}
