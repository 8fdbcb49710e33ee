package handler

import (
	"testing"

	"minipigs/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidacionVentaPermitePrecioCero(t *testing.T) {
	// Una adopción gratuita (precio 0) es un registro válido.
	req := dto.RegistrarVentaRequest{
		CerditoID:     "7a9d3b1e-0000-4000-8000-000000000001",
		ClienteNombre: "María Solís",
		Precio:        0,
		FechaVenta:    "2026-05-10",
	}
	require.NoError(t, validate.Struct(req))

	upd := dto.ActualizarVentaRequest{
		ClienteNombre: "María Solís",
		Estado:        "entregado",
		Precio:        0,
		FechaVenta:    "2026-05-10",
	}
	require.NoError(t, validate.Struct(upd))
}

func TestValidacionVentaRechazaPrecioNegativo(t *testing.T) {
	req := dto.RegistrarVentaRequest{
		CerditoID:     "7a9d3b1e-0000-4000-8000-000000000001",
		ClienteNombre: "María Solís",
		Precio:        -1,
		FechaVenta:    "2026-05-10",
	}
	err := validate.Struct(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
}
