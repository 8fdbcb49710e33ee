package service

import (
	"minipigs/internal/model"
	"minipigs/internal/promo"

	"github.com/google/uuid"
)

// proyeccionCerdito describe la mutación del cerdito derivada de una
// transición de estado de su venta. El estado/dueño del cerdito son una
// proyección del último estado de venta aplicado; esta función es la tabla de
// transiciones explícita que la calcula, sin tocar persistencia.
type proyeccionCerdito struct {
	Actualizar bool
	Estado     string
	DuenoID    *uuid.UUID
	// Hito no nulo → upsert del hito de adopción en el diario del cerdito.
	Hito *model.Hito
}

// proyectarCerdito calcula la proyección del cerdito para una transición de
// estado de la venta.
//
//   - reservado/pagado/entregado → cerdito vendido, dueño = cliente de la venta
//   - pagado/entregado además sintetizan el hito de adopción
//   - cancelado (desde un estado no cancelado) → cerdito disponible, sin dueño
//   - consulta, o re-guardar una venta ya cancelada → sin mutación
func proyectarCerdito(estadoOriginal, estadoNuevo string, venta *model.Venta) proyeccionCerdito {
	switch estadoNuevo {
	case model.VentaReservado, model.VentaPagado, model.VentaEntregado:
		p := proyeccionCerdito{
			Actualizar: true,
			Estado:     model.CerditoVendido,
			DuenoID:    venta.ClienteID,
		}
		if estadoNuevo == model.VentaPagado || estadoNuevo == model.VentaEntregado {
			h := promo.HitoAdopcion(venta.ID, venta.CerditoID, venta.FechaVenta, venta.ClienteNombre)
			p.Hito = &h
		}
		return p

	case model.VentaCancelado:
		if estadoOriginal == model.VentaCancelado {
			return proyeccionCerdito{}
		}
		return proyeccionCerdito{
			Actualizar: true,
			Estado:     model.CerditoDisponible,
			DuenoID:    nil,
		}

	default: // consulta
		return proyeccionCerdito{}
	}
}
