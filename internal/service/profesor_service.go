package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
)

// ── Errores del módulo de profesores ──

var (
	ErrProfesorNotFound = errors.New("el profesor no existe")
	ErrCedulaEnUso      = errors.New("ya existe un profesor con esa cédula")
)

// ProfesorService administración de profesores
type ProfesorService interface {
	Create(ctx context.Context, req *dto.CreateProfesorRequest) (*dto.ProfesorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProfesorResponse, error)
	List(ctx context.Context) ([]dto.ProfesorResponse, error)
	Update(ctx context.Context, req *dto.UpdateProfesorRequest) (*dto.ProfesorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type profesorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfesorService crea una instancia de ProfesorService
func NewProfesorService(repo *repository.Repository, logger *zap.Logger) ProfesorService {
	return &profesorService{repo: repo, logger: logger}
}

func (s *profesorService) Create(ctx context.Context, req *dto.CreateProfesorRequest) (*dto.ProfesorResponse, error) {
	if _, err := s.repo.Profesor.GetByCedula(ctx, req.Cedula); err == nil {
		return nil, ErrCedulaEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profesor := &model.Profesor{
		Cedula:       req.Cedula,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		Telefono:     req.Telefono,
		Especialidad: req.Especialidad,
		Activo:       true,
	}

	if err := s.repo.Profesor.Create(ctx, profesor); err != nil {
		s.logger.Error("creando profesor", zap.Error(err))
		return nil, err
	}

	return toProfesorResponse(profesor), nil
}

func (s *profesorService) GetByID(ctx context.Context, id int64) (*dto.ProfesorResponse, error) {
	profesor, err := s.repo.Profesor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfesorNotFound
		}
		s.logger.Error("consultando profesor", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toProfesorResponse(profesor), nil
}

func (s *profesorService) List(ctx context.Context) ([]dto.ProfesorResponse, error) {
	profesores, err := s.repo.Profesor.List(ctx)
	if err != nil {
		s.logger.Error("listando profesores", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProfesorResponse, 0, len(profesores))
	for i := range profesores {
		result = append(result, *toProfesorResponse(&profesores[i]))
	}
	return result, nil
}

func (s *profesorService) Update(ctx context.Context, req *dto.UpdateProfesorRequest) (*dto.ProfesorResponse, error) {
	profesor, err := s.repo.Profesor.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfesorNotFound
		}
		return nil, err
	}

	if req.Cedula != profesor.Cedula {
		if _, err := s.repo.Profesor.GetByCedula(ctx, req.Cedula); err == nil {
			return nil, ErrCedulaEnUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	profesor.Cedula = req.Cedula
	profesor.Nombre = req.Nombre
	profesor.Apellido = req.Apellido
	profesor.Email = req.Email
	profesor.Telefono = req.Telefono
	profesor.Especialidad = req.Especialidad
	profesor.Activo = *req.Activo

	if err := s.repo.Profesor.Update(ctx, profesor); err != nil {
		s.logger.Error("actualizando profesor", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	return toProfesorResponse(profesor), nil
}

func (s *profesorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Profesor.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfesorNotFound
		}
		return err
	}
	if err := s.repo.Profesor.Delete(ctx, id); err != nil {
		s.logger.Error("eliminando profesor", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toProfesorResponse(p *model.Profesor) *dto.ProfesorResponse {
	return &dto.ProfesorResponse{
		ID:           p.ID,
		Cedula:       p.Cedula,
		Nombre:       p.Nombre,
		Apellido:     p.Apellido,
		Email:        p.Email,
		Telefono:     p.Telefono,
		Especialidad: p.Especialidad,
		Activo:       p.Activo,
	}
}
