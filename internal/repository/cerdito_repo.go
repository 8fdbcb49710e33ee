package repository

import (
	"context"
	"errors"

	"minipigs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CerditoRepository defines the data access contract for pigs.
// La proyección estado/dueño NO se escribe por aquí: eso es del sincronizador
// de ventas (VentaTx). Save persiste la ficha; el servicio cuida qué campos toca.
type CerditoRepository interface {
	Create(ctx context.Context, c *model.Cerdito) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cerdito, error)
	FindByIDConHitos(ctx context.Context, id uuid.UUID) (*model.Cerdito, error)
	ListPublicos(ctx context.Context) ([]model.Cerdito, error)
	ListTodos(ctx context.Context) ([]model.Cerdito, error)
	ListPorDueno(ctx context.Context, duenoID uuid.UUID) ([]model.Cerdito, error)
	Save(ctx context.Context, c *model.Cerdito) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExisteVentaParaCerdito(ctx context.Context, id uuid.UUID) (bool, error)

	// MarcarDelMes sets the flag on id and clears it everywhere else, in one
	// transaction, so at most one pig of the month can exist.
	MarcarDelMes(ctx context.Context, id uuid.UUID) error

	CrearHito(ctx context.Context, h *model.Hito) error
	EliminarHito(ctx context.Context, cerditoID uuid.UUID, hitoID string) error
	ListHitos(ctx context.Context, cerditoID uuid.UUID) ([]model.Hito, error)
}

type cerditoRepo struct{ db *gorm.DB }

func NewCerditoRepository(db *gorm.DB) CerditoRepository { return &cerditoRepo{db: db} }

func (r *cerditoRepo) Create(ctx context.Context, c *model.Cerdito) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cerditoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cerdito, error) {
	var c model.Cerdito
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return &c, err
}

func (r *cerditoRepo) FindByIDConHitos(ctx context.Context, id uuid.UUID) (*model.Cerdito, error) {
	var c model.Cerdito
	err := r.db.WithContext(ctx).
		Preload("Hitos", func(db *gorm.DB) *gorm.DB { return db.Order("fecha ASC") }).
		First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return &c, err
}

// ListPublicos: el catálogo de una granja es chico; se trae completo y el
// pipeline de internal/catalog filtra/ordena/pagina en memoria.
func (r *cerditoRepo) ListPublicos(ctx context.Context) ([]model.Cerdito, error) {
	var cerditos []model.Cerdito
	err := r.db.WithContext(ctx).
		Where("visibilidad = ?", model.VisibilidadPublica).
		Order("created_at DESC").
		Find(&cerditos).Error
	return cerditos, err
}

func (r *cerditoRepo) ListTodos(ctx context.Context) ([]model.Cerdito, error) {
	var cerditos []model.Cerdito
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cerditos).Error
	return cerditos, err
}

func (r *cerditoRepo) ListPorDueno(ctx context.Context, duenoID uuid.UUID) ([]model.Cerdito, error) {
	var cerditos []model.Cerdito
	err := r.db.WithContext(ctx).
		Where("dueno_id = ?", duenoID).
		Order("created_at DESC").
		Find(&cerditos).Error
	return cerditos, err
}

func (r *cerditoRepo) Save(ctx context.Context, c *model.Cerdito) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cerditoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cerdito_id = ?", id).Delete(&model.Hito{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cerdito{}, id).Error
	})
}

func (r *cerditoRepo) ExisteVentaParaCerdito(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("cerdito_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *cerditoRepo) MarcarDelMes(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Cerdito{}).
			Where("es_cerdito_del_mes = true").
			Update("es_cerdito_del_mes", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Cerdito{}).Where("id = ?", id).
			Update("es_cerdito_del_mes", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoEncontrado
		}
		return nil
	})
}

func (r *cerditoRepo) CrearHito(ctx context.Context, h *model.Hito) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *cerditoRepo) EliminarHito(ctx context.Context, cerditoID uuid.UUID, hitoID string) error {
	res := r.db.WithContext(ctx).
		Where("cerdito_id = ? AND id = ?", cerditoID, hitoID).
		Delete(&model.Hito{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *cerditoRepo) ListHitos(ctx context.Context, cerditoID uuid.UUID) ([]model.Hito, error) {
	var hitos []model.Hito
	err := r.db.WithContext(ctx).
		Where("cerdito_id = ?", cerditoID).
		Order("fecha ASC").
		Find(&hitos).Error
	return hitos, err
}
