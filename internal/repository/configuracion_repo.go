package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// porcentajeComisionInicial se usa cuando la tabla todavía no tiene fila:
// el 40% histórico del negocio.
var porcentajeComisionInicial = decimal.NewFromInt(40)

type ConfiguracionRepository interface {
	// Get devuelve la configuración global, creándola con el valor inicial si
	// el registro único aún no existe.
	Get(ctx context.Context) (*model.ConfiguracionGlobal, error)
	// Update persiste el nuevo porcentaje y agrega la entrada correspondiente
	// a la bitácora de comisiones.
	Update(ctx context.Context, porcentaje decimal.Decimal) (*model.ConfiguracionGlobal, error)
	ListHistorial(ctx context.Context) ([]model.ComisionHistorial, error)
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Get(ctx context.Context) (*model.ConfiguracionGlobal, error) {
	var cfg model.ConfiguracionGlobal
	err := r.db.WithContext(ctx).First(&cfg, "id = 1").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = model.ConfiguracionGlobal{ID: 1, PorcentajeComision: porcentajeComisionInicial}
		if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configuracionRepo) Update(ctx context.Context, porcentaje decimal.Decimal) (*model.ConfiguracionGlobal, error) {
	cfg := &model.ConfiguracionGlobal{ID: 1, PorcentajeComision: porcentaje}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(cfg).Error; err != nil {
			return err
		}
		hist := &model.ComisionHistorial{
			Porcentaje:   porcentaje,
			VigenteDesde: time.Now(),
		}
		return tx.Create(hist).Error
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *configuracionRepo) ListHistorial(ctx context.Context) ([]model.ComisionHistorial, error) {
	var hist []model.ComisionHistorial
	err := r.db.WithContext(ctx).Order("vigente_desde DESC").Find(&hist).Error
	return hist, err
}
