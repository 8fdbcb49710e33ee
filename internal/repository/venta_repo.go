package repository

import (
	"context"
	"errors"

	"minipigs/internal/dto"
	"minipigs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoEncontrado is the store-agnostic not-found error; the gorm
// implementation translates gorm.ErrRecordNotFound into it so services and
// in-memory test fakes share one sentinel.
var ErrNoEncontrado = errors.New("registro no encontrado")

// VentaTx is the staged view of the store inside one atomic transaction.
// Everything invoked through it commits together or not at all; the
// synchronizer in service.VentaService is its only consumer.
type VentaTx interface {
	FindVenta(id uuid.UUID) (*model.Venta, error)
	CreateVenta(v *model.Venta) error
	SaveVenta(v *model.Venta) error
	DeleteVenta(id uuid.UUID) error

	FindCerdito(id uuid.UUID) (*model.Cerdito, error)
	// ActualizarEstadoCerdito sets only the lifecycle status.
	ActualizarEstadoCerdito(id uuid.UUID, estado string) error
	// ActualizarEstadoYDueno sets status and owner together (owner may be nil).
	ActualizarEstadoYDueno(id uuid.UUID, estado string, duenoID *uuid.UUID) error
	// ReemplazarHitoAdopcion removes any previous sale-derived milestone of the
	// pig and inserts h. Manually-added milestones are left untouched.
	ReemplazarHitoAdopcion(cerditoID uuid.UUID, h model.Hito) error
}

// VentaRepository defines the data access contract for sales. Services depend
// on this interface, not on the concrete GORM implementation, enabling unit
// testing of the sale/pig synchronizer against an in-memory fake that honors
// the same transaction contract.
type VentaRepository interface {
	// InTx runs fn inside one atomic transaction over the staged VentaTx view.
	InTx(ctx context.Context, fn func(tx VentaTx) error) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) InTx(ctx context.Context, fn func(tx VentaTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormVentaTx{tx: tx})
	})
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha_venta) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

// ── gorm-backed transaction view ─────────────────────────────────────────────

type gormVentaTx struct{ tx *gorm.DB }

func (g *gormVentaTx) FindVenta(id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := g.tx.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return &v, err
}

func (g *gormVentaTx) CreateVenta(v *model.Venta) error {
	return g.tx.Create(v).Error
}

func (g *gormVentaTx) SaveVenta(v *model.Venta) error {
	return g.tx.Save(v).Error
}

func (g *gormVentaTx) DeleteVenta(id uuid.UUID) error {
	return g.tx.Delete(&model.Venta{}, id).Error
}

func (g *gormVentaTx) FindCerdito(id uuid.UUID) (*model.Cerdito, error) {
	var c model.Cerdito
	err := g.tx.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return &c, err
}

func (g *gormVentaTx) ActualizarEstadoCerdito(id uuid.UUID, estado string) error {
	return g.tx.Model(&model.Cerdito{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (g *gormVentaTx) ActualizarEstadoYDueno(id uuid.UUID, estado string, duenoID *uuid.UUID) error {
	return g.tx.Model(&model.Cerdito{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":   estado,
			"dueno_id": duenoID,
		}).Error
}

func (g *gormVentaTx) ReemplazarHitoAdopcion(cerditoID uuid.UUID, h model.Hito) error {
	// Sólo los hitos sintetizados por ventas llevan el prefijo "sale-".
	if err := g.tx.Where("cerdito_id = ? AND id LIKE 'sale-%'", cerditoID).
		Delete(&model.Hito{}).Error; err != nil {
		return err
	}
	return g.tx.Create(&h).Error
}
