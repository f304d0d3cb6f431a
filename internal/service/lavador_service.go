package service

import (
	"context"
	"errors"
	"time"

	"github.com/Elfoider/pulilavado-app/internal/dto"
	"github.com/Elfoider/pulilavado-app/internal/model"
	"github.com/Elfoider/pulilavado-app/internal/repository"

	"github.com/google/uuid"
)

type LavadorService interface {
	Crear(ctx context.Context, req dto.CrearLavadorRequest) (*dto.LavadorResponse, error)
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.LavadorResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.LavadorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarLavadorRequest) (*dto.LavadorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	// Eliminar borra físicamente. Se rechaza si existe cualquier servicio que
	// referencie al lavador: el historial financiero no puede quedar huérfano.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type lavadorService struct {
	repo         repository.LavadorRepository
	servicioRepo repository.ServicioRepository
}

func NewLavadorService(repo repository.LavadorRepository, servicioRepo repository.ServicioRepository) LavadorService {
	return &lavadorService{repo: repo, servicioRepo: servicioRepo}
}

func (s *lavadorService) Crear(ctx context.Context, req dto.CrearLavadorRequest) (*dto.LavadorResponse, error) {
	lavador := &model.Lavador{
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		Activo:      true,
		FechaInicio: time.Now(),
	}
	if err := s.repo.Create(ctx, lavador); err != nil {
		return nil, err
	}
	return lavadorToResponse(lavador), nil
}

func (s *lavadorService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.LavadorResponse, error) {
	lavadores, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LavadorResponse, len(lavadores))
	for i := range lavadores {
		resp[i] = *lavadorToResponse(&lavadores[i])
	}
	return resp, nil
}

func (s *lavadorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.LavadorResponse, error) {
	lavador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("lavador no encontrado")
	}
	return lavadorToResponse(lavador), nil
}

func (s *lavadorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarLavadorRequest) (*dto.LavadorResponse, error) {
	lavador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("lavador no encontrado")
	}
	if req.Nombre != nil {
		lavador.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		lavador.Telefono = *req.Telefono
	}
	if err := s.repo.Update(ctx, lavador); err != nil {
		return nil, err
	}
	return lavadorToResponse(lavador), nil
}

func (s *lavadorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	lavador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("lavador no encontrado")
	}
	lavador.Activo = false
	return s.repo.Update(ctx, lavador)
}

func (s *lavadorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	lavador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("lavador no encontrado")
	}
	lavador.Activo = true
	return s.repo.Update(ctx, lavador)
}

func (s *lavadorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("lavador no encontrado")
	}
	n, err := s.servicioRepo.CountByLavador(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("el lavador tiene servicios registrados; desactívelo en su lugar")
	}
	return s.repo.Delete(ctx, id)
}

func lavadorToResponse(l *model.Lavador) *dto.LavadorResponse {
	return &dto.LavadorResponse{
		ID:          l.ID.String(),
		Nombre:      l.Nombre,
		Telefono:    l.Telefono,
		Activo:      l.Activo,
		FechaInicio: l.FechaInicio.Format("2006-01-02"),
	}
}
