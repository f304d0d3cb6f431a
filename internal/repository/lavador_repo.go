package repository

import (
	"context"

	"github.com/Elfoider/pulilavado-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LavadorRepository interface {
	Create(ctx context.Context, l *model.Lavador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lavador, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Lavador, error)
	Update(ctx context.Context, l *model.Lavador) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type lavadorRepo struct{ db *gorm.DB }

func NewLavadorRepository(db *gorm.DB) LavadorRepository { return &lavadorRepo{db: db} }

func (r *lavadorRepo) Create(ctx context.Context, l *model.Lavador) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lavadorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lavador, error) {
	var l model.Lavador
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *lavadorRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Lavador, error) {
	var lavadores []model.Lavador
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	err := q.Find(&lavadores).Error
	return lavadores, err
}

func (r *lavadorRepo) Update(ctx context.Context, l *model.Lavador) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *lavadorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lavador{}, "id = ?", id).Error
}
