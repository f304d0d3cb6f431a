package repository

import (
	"context"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	Update(ctx context.Context, s *model.Servicio) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.ServicioFilter) ([]model.Servicio, int64, error)
	// FindByRango devuelve los servicios con createdAt dentro de [desde, hasta],
	// ambos inclusive, opcionalmente filtrados por lavador. Orden: más reciente
	// primero.
	FindByRango(ctx context.Context, desde, hasta time.Time, lavadorID *uuid.UUID) ([]model.Servicio, error)
	CountByLavador(ctx context.Context, lavadorID uuid.UUID) (int64, error)
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, "id = ?", id).Error
}

func (r *servicioRepo) List(ctx context.Context, filter dto.ServicioFilter) ([]model.Servicio, int64, error) {
	var servicios []model.Servicio
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Servicio{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.LavadorID != "" {
		q = q.Where("lavador_id = ?", filter.LavadorID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	} else {
		q = q.Where("DATE(created_at) = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&servicios).Error

	return servicios, total, err
}

func (r *servicioRepo) FindByRango(ctx context.Context, desde, hasta time.Time, lavadorID *uuid.UUID) ([]model.Servicio, error) {
	var servicios []model.Servicio
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", desde, hasta)
	if lavadorID != nil {
		q = q.Where("lavador_id = ?", *lavadorID)
	}
	err := q.Order("created_at DESC").Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) CountByLavador(ctx context.Context, lavadorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Servicio{}).
		Where("lavador_id = ?", lavadorID).Count(&n).Error
	return n, err
}
