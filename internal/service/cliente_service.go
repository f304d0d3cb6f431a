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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, busqueda string) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if existing, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil && existing != nil {
		return nil, errors.New("ya existe un cliente con ese nombre")
	}
	cliente := &model.Cliente{
		Nombre:         req.Nombre,
		Telefono:       req.Telefono,
		Notas:          req.Notas,
		Frecuente:      req.Frecuente,
		VehiculoModelo: req.VehiculoModelo,
		VehiculoColor:  req.VehiculoColor,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, busqueda string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, busqueda)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		cliente.Telefono = *req.Telefono
	}
	if req.Notas != nil {
		cliente.Notas = *req.Notas
	}
	if req.Frecuente != nil {
		cliente.Frecuente = *req.Frecuente
	}
	if req.VehiculoModelo != nil {
		cliente.VehiculoModelo = *req.VehiculoModelo
	}
	if req.VehiculoColor != nil {
		cliente.VehiculoColor = *req.VehiculoColor
	}
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cliente no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	var ultimaVisita *string
	if c.UltimaVisita != nil {
		v := c.UltimaVisita.UTC().Format(time.RFC3339)
		ultimaVisita = &v
	}
	return &dto.ClienteResponse{
		ID:             c.ID.String(),
		Nombre:         c.Nombre,
		Telefono:       c.Telefono,
		Notas:          c.Notas,
		Frecuente:      c.Frecuente,
		VehiculoModelo: c.VehiculoModelo,
		VehiculoColor:  c.VehiculoColor,
		UltimaVisita:   ultimaVisita,
	}
}
