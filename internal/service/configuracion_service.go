package service

import (
	"context"
	"errors"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/repository"

	"github.com/shopspring/decimal"
)

type ConfiguracionService interface {
	Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error)
	// Actualizar cambia el porcentaje por defecto para servicios NUEVOS y deja
	// constancia en la bitácora. No toca ningún servicio existente.
	Actualizar(ctx context.Context, req dto.ActualizarConfiguracionRequest) (*dto.ConfiguracionResponse, error)
	Historial(ctx context.Context) ([]dto.ComisionHistorialItem, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
}

func NewConfiguracionService(repo repository.ConfiguracionRepository) ConfiguracionService {
	return &configuracionService{repo: repo}
}

func (s *configuracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ConfiguracionResponse{
		PorcentajeComision: cfg.PorcentajeComision,
		UpdatedAt:          cfg.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *configuracionService) Actualizar(ctx context.Context, req dto.ActualizarConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	if req.PorcentajeComision.LessThan(decimal.Zero) ||
		req.PorcentajeComision.GreaterThan(decimal.NewFromInt(100)) {
		return nil, errors.New("el porcentaje debe estar entre 0 y 100")
	}
	cfg, err := s.repo.Update(ctx, req.PorcentajeComision)
	if err != nil {
		return nil, err
	}
	return &dto.ConfiguracionResponse{
		PorcentajeComision: cfg.PorcentajeComision,
		UpdatedAt:          cfg.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *configuracionService) Historial(ctx context.Context) ([]dto.ComisionHistorialItem, error) {
	hist, err := s.repo.ListHistorial(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComisionHistorialItem, len(hist))
	for i, h := range hist {
		items[i] = dto.ComisionHistorialItem{
			Porcentaje:   h.Porcentaje,
			VigenteDesde: h.VigenteDesde.UTC().Format(time.RFC3339),
		}
	}
	return items, nil
}
