package service

import (
	"testing"
	"time"

	"minipigs/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProyectarCerdito(t *testing.T) {
	clienteID := uuid.New()
	venta := &model.Venta{
		ID:            uuid.New(),
		CerditoID:     uuid.New(),
		ClienteNombre: "María Solano",
		ClienteID:     &clienteID,
		FechaVenta:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	casos := []struct {
		nombre         string
		estadoOriginal string
		estadoNuevo    string
		actualizar     bool
		estadoCerdito  string
		conDueno       bool
		conHito        bool
	}{
		{"consulta no proyecta", model.VentaConsulta, model.VentaConsulta, false, "", false, false},
		{"reservado vende sin hito", model.VentaConsulta, model.VentaReservado, true, model.CerditoVendido, true, false},
		{"pagado vende con hito", model.VentaReservado, model.VentaPagado, true, model.CerditoVendido, true, true},
		{"entregado vende con hito", model.VentaPagado, model.VentaEntregado, true, model.CerditoVendido, true, true},
		{"cancelado libera", model.VentaPagado, model.VentaCancelado, true, model.CerditoDisponible, false, false},
		{"cancelado dos veces no proyecta", model.VentaCancelado, model.VentaCancelado, false, "", false, false},
		{"re-guardar entregado re-proyecta", model.VentaEntregado, model.VentaEntregado, true, model.CerditoVendido, true, true},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := proyectarCerdito(c.estadoOriginal, c.estadoNuevo, venta)

			assert.Equal(t, c.actualizar, p.Actualizar)
			if !c.actualizar {
				return
			}
			assert.Equal(t, c.estadoCerdito, p.Estado)
			if c.conDueno {
				require.NotNil(t, p.DuenoID)
				assert.Equal(t, clienteID, *p.DuenoID)
			} else {
				assert.Nil(t, p.DuenoID)
			}
			if c.conHito {
				require.NotNil(t, p.Hito)
				assert.Equal(t, "sale-"+venta.ID.String(), p.Hito.ID)
				assert.Equal(t, venta.CerditoID, p.Hito.CerditoID)
			} else {
				assert.Nil(t, p.Hito)
			}
		})
	}
}

func TestProyectarCerditoSinCuentaDeCliente(t *testing.T) {
	venta := &model.Venta{
		ID:            uuid.New(),
		CerditoID:     uuid.New(),
		ClienteNombre: "Cliente sin cuenta",
		FechaVenta:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	p := proyectarCerdito(model.VentaConsulta, model.VentaPagado, venta)

	// Sin cuenta enlazada el cerdito queda vendido pero sin dueño en el
	// área de clientes.
	assert.True(t, p.Actualizar)
	assert.Equal(t, model.CerditoVendido, p.Estado)
	assert.Nil(t, p.DuenoID)
	require.NotNil(t, p.Hito)
}
