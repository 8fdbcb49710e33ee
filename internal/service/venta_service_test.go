package service

// Tests del sincronizador venta/cerdito contra un fake en memoria que honra
// el mismo contrato transaccional que la implementación GORM: las escrituras
// se hacen sobre copias y sólo se confirman si la función de transacción
// termina sin error. failOn permite inyectar un fallo en una operación puntual
// y verificar que nada queda a medias.

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory VentaRepository fake ───────────────────────────────────────────

type fakeVentaRepo struct {
	ventas   map[uuid.UUID]model.Venta
	cerditos map[uuid.UUID]model.Cerdito
	hitos    map[string]model.Hito
	// failOn hace fallar la operación nombrada dentro de la transacción.
	failOn string
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		ventas:   make(map[uuid.UUID]model.Venta),
		cerditos: make(map[uuid.UUID]model.Cerdito),
		hitos:    make(map[string]model.Hito),
	}
}

func (r *fakeVentaRepo) InTx(_ context.Context, fn func(tx repository.VentaTx) error) error {
	staged := &fakeVentaTx{
		ventas:   clonarMapa(r.ventas),
		cerditos: clonarMapa(r.cerditos),
		hitos:    clonarMapa(r.hitos),
		failOn:   r.failOn,
	}
	if err := fn(staged); err != nil {
		return err // rollback: las copias se descartan
	}
	r.ventas = staged.ventas
	r.cerditos = staged.cerditos
	r.hitos = staged.hitos
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &v, nil
}

func (r *fakeVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if filter.Estado != "" && filter.Estado != "all" && v.Estado != filter.Estado {
			continue
		}
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func clonarMapa[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type fakeVentaTx struct {
	ventas   map[uuid.UUID]model.Venta
	cerditos map[uuid.UUID]model.Cerdito
	hitos    map[string]model.Hito
	failOn   string
}

var errInyectado = errors.New("fallo inyectado")

func (t *fakeVentaTx) fail(op string) bool { return t.failOn == op }

func (t *fakeVentaTx) FindVenta(id uuid.UUID) (*model.Venta, error) {
	if t.fail("FindVenta") {
		return nil, errInyectado
	}
	v, ok := t.ventas[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &v, nil
}

func (t *fakeVentaTx) CreateVenta(v *model.Venta) error {
	if t.fail("CreateVenta") {
		return errInyectado
	}
	t.ventas[v.ID] = *v
	return nil
}

func (t *fakeVentaTx) SaveVenta(v *model.Venta) error {
	if t.fail("SaveVenta") {
		return errInyectado
	}
	t.ventas[v.ID] = *v
	return nil
}

func (t *fakeVentaTx) DeleteVenta(id uuid.UUID) error {
	if t.fail("DeleteVenta") {
		return errInyectado
	}
	delete(t.ventas, id)
	return nil
}

func (t *fakeVentaTx) FindCerdito(id uuid.UUID) (*model.Cerdito, error) {
	if t.fail("FindCerdito") {
		return nil, errInyectado
	}
	c, ok := t.cerditos[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &c, nil
}

func (t *fakeVentaTx) ActualizarEstadoCerdito(id uuid.UUID, estado string) error {
	if t.fail("ActualizarEstadoCerdito") {
		return errInyectado
	}
	c := t.cerditos[id]
	c.Estado = estado
	t.cerditos[id] = c
	return nil
}

func (t *fakeVentaTx) ActualizarEstadoYDueno(id uuid.UUID, estado string, duenoID *uuid.UUID) error {
	if t.fail("ActualizarEstadoYDueno") {
		return errInyectado
	}
	c := t.cerditos[id]
	c.Estado = estado
	c.DuenoID = duenoID
	t.cerditos[id] = c
	return nil
}

func (t *fakeVentaTx) ReemplazarHitoAdopcion(cerditoID uuid.UUID, h model.Hito) error {
	if t.fail("ReemplazarHitoAdopcion") {
		return errInyectado
	}
	for id, existente := range t.hitos {
		if existente.CerditoID == cerditoID && strings.HasPrefix(id, "sale-") {
			delete(t.hitos, id)
		}
	}
	t.hitos[h.ID] = h
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func sembrarCerdito(repo *fakeVentaRepo, nombre string) uuid.UUID {
	id := uuid.New()
	repo.cerditos[id] = model.Cerdito{
		ID:     id,
		Nombre: nombre,
		Estado: model.CerditoDisponible,
	}
	return id
}

func registrarVentaDePrueba(t *testing.T, svc VentaService, cerditoID uuid.UUID) *dto.VentaResponse {
	t.Helper()
	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		CerditoID:     cerditoID.String(),
		ClienteNombre: "María Solano",
		Precio:        85000,
		FechaVenta:    "2026-03-10",
	})
	require.NoError(t, err)
	return resp
}

func actualizarA(t *testing.T, svc VentaService, ventaID string, estado string) (*dto.VentaResponse, error) {
	t.Helper()
	id, err := uuid.Parse(ventaID)
	require.NoError(t, err)
	return svc.ActualizarVenta(context.Background(), id, dto.ActualizarVentaRequest{
		ClienteNombre: "María Solano",
		Estado:        estado,
		Precio:        85000,
		FechaVenta:    "2026-03-12",
	})
}

// ── RegistrarVenta ───────────────────────────────────────────────────────────

func TestRegistrarVentaReservaCerdito(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)

	resp := registrarVentaDePrueba(t, svc, cerditoID)

	assert.Equal(t, model.VentaConsulta, resp.Estado)
	assert.Equal(t, "Luna", resp.NombreCerdito)
	assert.Equal(t, model.CerditoReservado, repo.cerditos[cerditoID].Estado)
	assert.Len(t, repo.ventas, 1)
}

func TestRegistrarVentaSnapshotDelNombre(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)

	resp := registrarVentaDePrueba(t, svc, cerditoID)

	// Renombrar el cerdito no toca el snapshot de la venta.
	c := repo.cerditos[cerditoID]
	c.Nombre = "Estrella"
	repo.cerditos[cerditoID] = c

	ventaID, _ := uuid.Parse(resp.ID)
	guardada, err := svc.ObtenerPorID(context.Background(), ventaID)
	require.NoError(t, err)
	assert.Equal(t, "Luna", guardada.NombreCerdito)
}

func TestRegistrarVentaCerditoInexistente(t *testing.T) {
	repo := newFakeVentaRepo()
	svc := NewVentaService(repo, nil)

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		CerditoID:     uuid.New().String(),
		ClienteNombre: "María Solano",
		Precio:        85000,
		FechaVenta:    "2026-03-10",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cerdito no encontrado")
	assert.Empty(t, repo.ventas)
}

func TestRegistrarVentaAtomicaAnteFallo(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	repo.failOn = "ActualizarEstadoCerdito"
	svc := NewVentaService(repo, nil)

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		CerditoID:     cerditoID.String(),
		ClienteNombre: "María Solano",
		Precio:        85000,
		FechaVenta:    "2026-03-10",
	})
	require.Error(t, err)

	// Rollback completo: ni venta creada ni cerdito tocado.
	assert.Empty(t, repo.ventas)
	assert.Equal(t, model.CerditoDisponible, repo.cerditos[cerditoID].Estado)
}

// ── ActualizarVenta: proyección sobre el cerdito ─────────────────────────────

func TestActualizarVentaAReservadoProyectaVendido(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaReservado)
	require.NoError(t, err)

	assert.Equal(t, model.CerditoVendido, repo.cerditos[cerditoID].Estado)
	// reservado no sintetiza hito de adopción todavía
	assert.Empty(t, repo.hitos)
}

func TestActualizarVentaAPagadoSintetizaHito(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaPagado)
	require.NoError(t, err)

	assert.Equal(t, model.CerditoVendido, repo.cerditos[cerditoID].Estado)
	require.Len(t, repo.hitos, 1)
	hito := repo.hitos["sale-"+venta.ID]
	assert.Equal(t, "¡Llegó a su nuevo hogar!", hito.Titulo)
	assert.Contains(t, hito.Descripcion, "María Solano")
}

func TestActualizarVentaCanceladaLiberaCerdito(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaPagado)
	require.NoError(t, err)
	_, err = actualizarA(t, svc, venta.ID, model.VentaCancelado)
	require.NoError(t, err)

	c := repo.cerditos[cerditoID]
	assert.Equal(t, model.CerditoDisponible, c.Estado)
	assert.Nil(t, c.DuenoID)
}

func TestActualizarVentaNoEncontrada(t *testing.T) {
	repo := newFakeVentaRepo()
	svc := NewVentaService(repo, nil)

	_, err := svc.ActualizarVenta(context.Background(), uuid.New(), dto.ActualizarVentaRequest{
		ClienteNombre: "María Solano",
		Estado:        model.VentaPagado,
		Precio:        85000,
		FechaVenta:    "2026-03-12",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "venta no encontrada")
}

func TestActualizarVentaAtomicaAnteFallo(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	repo.failOn = "ActualizarEstadoYDueno"
	_, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.Error(t, err)

	// La venta tampoco se guardó: sin cupón, estado original intacto.
	ventaID, _ := uuid.Parse(venta.ID)
	guardada, err := svc.ObtenerPorID(context.Background(), ventaID)
	require.NoError(t, err)
	assert.Equal(t, model.VentaConsulta, guardada.Estado)
	assert.Nil(t, guardada.CuponBienvenida)
	assert.Equal(t, model.CerditoReservado, repo.cerditos[cerditoID].Estado)
}

// ── Cupón de bienvenida ──────────────────────────────────────────────────────

func TestCuponSeEmiteEnPrimeraEntrega(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna Bonita")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	resp, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	require.NotNil(t, resp.CuponBienvenida)
	assert.Equal(t, "BIENVENIDOLUNA15", resp.CuponBienvenida.Codigo)
	assert.Equal(t, 15, resp.CuponBienvenida.Descuento)
	// El literal viaja tal cual al front: "active", no su traducción.
	assert.Equal(t, "active", resp.CuponBienvenida.Estado)
}

func TestCuponNoSeReemiteEnSegundaEntrega(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	primera, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	// Salir de entregado y volver: el cupón original se conserva tal cual.
	_, err = actualizarA(t, svc, venta.ID, model.VentaPagado)
	require.NoError(t, err)
	segunda, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	require.NotNil(t, segunda.CuponBienvenida)
	assert.Equal(t, primera.CuponBienvenida.Codigo, segunda.CuponBienvenida.Codigo)
}

func TestCuponSobreviveCancelacion(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)
	resp, err := actualizarA(t, svc, venta.ID, model.VentaCancelado)
	require.NoError(t, err)

	// Cancelar libera el cerdito pero el cupón emitido queda en la venta.
	assert.NotNil(t, resp.CuponBienvenida)
}

// ── Hito de adopción: upsert, no duplicación ─────────────────────────────────

func TestHitoDeAdopcionNoSeDuplica(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)
	_, err = actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	assert.Len(t, repo.hitos, 1)
}

func TestHitoDeAdopcionPreservaHitosManuales(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	manualID := uuid.New().String()
	repo.hitos[manualID] = model.Hito{
		ID:        manualID,
		CerditoID: cerditoID,
		Fecha:     time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		Titulo:    "Nació en la granja",
	}
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	assert.Len(t, repo.hitos, 2)
	_, manualVive := repo.hitos[manualID]
	assert.True(t, manualVive)
}

// ── EliminarVenta ────────────────────────────────────────────────────────────

func TestEliminarVentaLiberaCerdito(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	_, err := actualizarA(t, svc, venta.ID, model.VentaEntregado)
	require.NoError(t, err)

	ventaID, _ := uuid.Parse(venta.ID)
	require.NoError(t, svc.EliminarVenta(context.Background(), ventaID))

	assert.Empty(t, repo.ventas)
	c := repo.cerditos[cerditoID]
	assert.Equal(t, model.CerditoDisponible, c.Estado)
	assert.Nil(t, c.DuenoID)
}

func TestEliminarVentaAtomicaAnteFallo(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Luna")
	svc := NewVentaService(repo, nil)
	venta := registrarVentaDePrueba(t, svc, cerditoID)

	repo.failOn = "DeleteVenta"
	ventaID, _ := uuid.Parse(venta.ID)
	err := svc.EliminarVenta(context.Background(), ventaID)
	require.Error(t, err)

	// El cerdito no quedó liberado con la venta todavía viva.
	assert.Len(t, repo.ventas, 1)
	assert.Equal(t, model.CerditoReservado, repo.cerditos[cerditoID].Estado)
}

// ── Escenario completo ───────────────────────────────────────────────────────

func TestCicloCompletoDeAdopcion(t *testing.T) {
	repo := newFakeVentaRepo()
	cerditoID := sembrarCerdito(repo, "Tocino")
	clienteID := uuid.New()
	svc := NewVentaService(repo, nil)

	email := "maria@example.com"
	cliente := clienteID.String()
	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		CerditoID:     cerditoID.String(),
		ClienteNombre: "María Solano",
		ClienteEmail:  &email,
		ClienteID:     &cliente,
		Estado:        model.VentaReservado,
		Precio:        95000,
		FechaVenta:    "2026-03-10",
	})
	require.NoError(t, err)
	// El alta siempre deja el cerdito en reservado, cualquiera sea el estado
	// inicial de la venta; la proyección a vendido ocurre al actualizar.
	assert.Equal(t, model.CerditoReservado, repo.cerditos[cerditoID].Estado)

	ventaID, _ := uuid.Parse(resp.ID)
	final, err := svc.ActualizarVenta(context.Background(), ventaID, dto.ActualizarVentaRequest{
		ClienteNombre: "María Solano",
		ClienteEmail:  &email,
		ClienteID:     &cliente,
		Estado:        model.VentaEntregado,
		Precio:        95000,
		FechaVenta:    "2026-03-15",
	})
	require.NoError(t, err)

	c := repo.cerditos[cerditoID]
	assert.Equal(t, model.CerditoVendido, c.Estado)
	require.NotNil(t, c.DuenoID)
	assert.Equal(t, clienteID, *c.DuenoID)

	require.NotNil(t, final.CuponBienvenida)
	assert.Equal(t, "BIENVENIDOTOCINO15", final.CuponBienvenida.Codigo)

	require.Len(t, repo.hitos, 1)
	hito := repo.hitos["sale-"+resp.ID]
	assert.Equal(t, cerditoID, hito.CerditoID)
}
