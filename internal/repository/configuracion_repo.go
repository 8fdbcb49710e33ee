package repository

import (
	"context"

	"minipigs/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfiguracionRepository interface {
	GetTodas(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, valores map[string]string) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) GetTodas(ctx context.Context) (map[string]string, error) {
	var filas []model.Configuracion
	if err := r.db.WithContext(ctx).Find(&filas).Error; err != nil {
		return nil, err
	}
	valores := make(map[string]string, len(filas))
	for _, f := range filas {
		valores[f.Clave] = f.Valor
	}
	return valores, nil
}

func (r *configuracionRepo) Upsert(ctx context.Context, valores map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for clave, valor := range valores {
			fila := model.Configuracion{Clave: clave, Valor: valor}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "clave"}},
				DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
			}).Create(&fila).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
