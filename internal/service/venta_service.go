package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/promo"
	"minipigs/internal/repository"
	"minipigs/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// VentaService es el sincronizador del ciclo de vida venta/cerdito: el único
// escritor del estado, dueño e hito de adopción de un cerdito una vez que
// existe una venta. Cada operación corre dentro de una transacción atómica
// sobre los dos documentos (venta + cerdito): ambas escrituras se confirman
// juntas o ninguna.
type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ActualizarVenta(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*dto.VentaResponse, error)
	EliminarVenta(ctx context.Context, id uuid.UUID) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	dispatcher *worker.Dispatcher
}

func NewVentaService(repo repository.VentaRepository, dispatcher *worker.Dispatcher) VentaService {
	return &ventaService{repo: repo, dispatcher: dispatcher}
}

const fechaISO = "2006-01-02"

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Una transacción: inserta la venta (con snapshot del nombre del cerdito) y
// pasa el cerdito a "reservado".

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	cerditoID, err := uuid.Parse(req.CerditoID)
	if err != nil {
		return nil, fmt.Errorf("cerdito_id inválido: %w", err)
	}
	fechaVenta, err := time.Parse(fechaISO, req.FechaVenta)
	if err != nil {
		return nil, fmt.Errorf("fecha_venta inválida: %w", err)
	}
	clienteID, err := parseClienteID(req.ClienteID)
	if err != nil {
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = model.VentaConsulta
	}

	var venta model.Venta
	txErr := s.repo.InTx(ctx, func(tx repository.VentaTx) error {
		cerdito, err := tx.FindCerdito(cerditoID)
		if err != nil {
			if errors.Is(err, repository.ErrNoEncontrado) {
				return errors.New("cerdito no encontrado")
			}
			return err
		}

		venta = model.Venta{
			ID:        uuid.New(),
			CerditoID: cerdito.ID,
			// Snapshot al momento de la venta; no se re-sincroniza.
			NombreCerdito:   cerdito.Nombre,
			ClienteNombre:   req.ClienteNombre,
			ClienteTelefono: req.ClienteTelefono,
			ClienteEmail:    req.ClienteEmail,
			ClienteID:       clienteID,
			Estado:          estado,
			Precio:          req.Precio,
			FechaVenta:      fechaVenta,
		}
		if err := tx.CreateVenta(&venta); err != nil {
			return err
		}
		return tx.ActualizarEstadoCerdito(cerdito.ID, model.CerditoReservado)
	})
	if txErr != nil {
		return nil, txErr
	}

	return ventaToResponse(&venta), nil
}

// ── ActualizarVenta ───────────────────────────────────────────────────────────
// Una transacción: lee la venta, emite el cupón de bienvenida si corresponde
// (exactamente una vez, en la primera transición a "entregado"), guarda la
// venta fusionada y aplica la proyección sobre el cerdito.

func (s *ventaService) ActualizarVenta(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	fechaVenta, err := time.Parse(fechaISO, req.FechaVenta)
	if err != nil {
		return nil, fmt.Errorf("fecha_venta inválida: %w", err)
	}
	clienteID, err := parseClienteID(req.ClienteID)
	if err != nil {
		return nil, err
	}

	var venta *model.Venta
	cuponEmitido := false

	txErr := s.repo.InTx(ctx, func(tx repository.VentaTx) error {
		var err error
		venta, err = tx.FindVenta(id)
		if err != nil {
			if errors.Is(err, repository.ErrNoEncontrado) {
				return errors.New("venta no encontrada")
			}
			return err
		}
		estadoOriginal := venta.Estado

		venta.ClienteNombre = req.ClienteNombre
		venta.ClienteTelefono = req.ClienteTelefono
		venta.ClienteEmail = req.ClienteEmail
		venta.ClienteID = clienteID
		venta.Estado = req.Estado
		venta.Precio = req.Precio
		venta.FechaVenta = fechaVenta

		// Emisión idempotente del cupón: sólo en la primera transición a
		// "entregado" y sólo si la venta aún no tiene cupón.
		if venta.Estado == model.VentaEntregado &&
			estadoOriginal != model.VentaEntregado &&
			venta.CuponBienvenida == nil {
			venta.CuponBienvenida = &model.CuponBienvenida{
				Codigo:    promo.GenerarCodigoCupon(venta.NombreCerdito),
				Descuento: promo.DescuentoBienvenida,
				Estado:    model.CuponActivo,
			}
			cuponEmitido = true
		}

		if err := tx.SaveVenta(venta); err != nil {
			return err
		}

		proy := proyectarCerdito(estadoOriginal, venta.Estado, venta)
		if !proy.Actualizar {
			return nil
		}
		if err := tx.ActualizarEstadoYDueno(venta.CerditoID, proy.Estado, proy.DuenoID); err != nil {
			return err
		}
		if proy.Hito != nil {
			return tx.ReemplazarHitoAdopcion(venta.CerditoID, *proy.Hito)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Pipeline asíncrono, best-effort: el correo de bienvenida con el cupón y
	// el certificado de adopción nunca afecta la venta ya confirmada.
	if cuponEmitido && s.dispatcher != nil && venta.ClienteEmail != nil && *venta.ClienteEmail != "" {
		payload := worker.BienvenidaJobPayload{
			VentaID:       venta.ID.String(),
			ToEmail:       *venta.ClienteEmail,
			ClienteNombre: venta.ClienteNombre,
			NombreCerdito: venta.NombreCerdito,
			CodigoCupon:   venta.CuponBienvenida.Codigo,
			Descuento:     venta.CuponBienvenida.Descuento,
		}
		if err := s.dispatcher.EnqueueBienvenida(ctx, payload); err != nil {
			log.Error().Err(err).Str("venta_id", venta.ID.String()).
				Msg("no se pudo encolar el correo de bienvenida")
		}
	}

	return ventaToResponse(venta), nil
}

// ── EliminarVenta ─────────────────────────────────────────────────────────────
// Una sola transacción: lee la venta, devuelve el cerdito a "disponible" sin
// dueño y borra la venta. Un fallo en cualquier paso no deja efecto parcial.

func (s *ventaService) EliminarVenta(ctx context.Context, id uuid.UUID) error {
	return s.repo.InTx(ctx, func(tx repository.VentaTx) error {
		venta, err := tx.FindVenta(id)
		if err != nil {
			if errors.Is(err, repository.ErrNoEncontrado) {
				return errors.New("venta no encontrada")
			}
			return err
		}
		if err := tx.ActualizarEstadoYDueno(venta.CerditoID, model.CerditoDisponible, nil); err != nil {
			return err
		}
		return tx.DeleteVenta(venta.ID)
	})
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("venta no encontrada")
		}
		return nil, err
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func parseClienteID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	return &id, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:              v.ID.String(),
		CerditoID:       v.CerditoID.String(),
		NombreCerdito:   v.NombreCerdito,
		ClienteNombre:   v.ClienteNombre,
		ClienteTelefono: v.ClienteTelefono,
		ClienteEmail:    v.ClienteEmail,
		Estado:          v.Estado,
		Precio:          v.Precio,
		FechaVenta:      v.FechaVenta.Format(fechaISO),
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
	}
	if v.ClienteID != nil {
		id := v.ClienteID.String()
		resp.ClienteID = &id
	}
	if v.CuponBienvenida != nil {
		resp.CuponBienvenida = &dto.CuponResponse{
			Codigo:    v.CuponBienvenida.Codigo,
			Descuento: v.CuponBienvenida.Descuento,
			Estado:    v.CuponBienvenida.Estado,
		}
	}
	return resp
}
