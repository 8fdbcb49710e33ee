package repository

import (
	"context"

	"minipigs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonioRepository interface {
	Create(ctx context.Context, t *model.Testimonio) error
	ListAprobados(ctx context.Context) ([]model.Testimonio, error)
	ListTodos(ctx context.Context) ([]model.Testimonio, error)
	Aprobar(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonioRepo struct{ db *gorm.DB }

func NewTestimonioRepository(db *gorm.DB) TestimonioRepository { return &testimonioRepo{db: db} }

func (r *testimonioRepo) Create(ctx context.Context, t *model.Testimonio) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonioRepo) ListAprobados(ctx context.Context) ([]model.Testimonio, error) {
	var ts []model.Testimonio
	err := r.db.WithContext(ctx).
		Where("aprobado = true").
		Order("created_at DESC").
		Find(&ts).Error
	return ts, err
}

func (r *testimonioRepo) ListTodos(ctx context.Context) ([]model.Testimonio, error) {
	var ts []model.Testimonio
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

func (r *testimonioRepo) Aprobar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Testimonio{}).
		Where("id = ?", id).Update("aprobado", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *testimonioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Testimonio{}, id).Error
}
