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

// ── Errores del módulo de aulas ──

var (
	ErrAulaNotFound    = errors.New("el aula no existe")
	ErrCodigoAulaEnUso = errors.New("ya existe un aula con ese código")
)

// AulaService administración de aulas
type AulaService interface {
	Create(ctx context.Context, req *dto.CreateAulaRequest) (*dto.AulaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AulaResponse, error)
	List(ctx context.Context) ([]dto.AulaResponse, error)
	Update(ctx context.Context, req *dto.UpdateAulaRequest) (*dto.AulaResponse, error)
	Delete(ctx context.Context, id int64) error
}

type aulaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAulaService crea una instancia de AulaService
func NewAulaService(repo *repository.Repository, logger *zap.Logger) AulaService {
	return &aulaService{repo: repo, logger: logger}
}

func (s *aulaService) Create(ctx context.Context, req *dto.CreateAulaRequest) (*dto.AulaResponse, error) {
	if _, err := s.repo.Aula.GetByCodigo(ctx, req.Codigo); err == nil {
		return nil, ErrCodigoAulaEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	aula := &model.Aula{
		Codigo:    req.Codigo,
		Capacidad: req.Capacidad,
		Tipo:      req.Tipo,
		Ubicacion: req.Ubicacion,
		Activo:    true,
	}

	if err := s.repo.Aula.Create(ctx, aula); err != nil {
		s.logger.Error("creando aula", zap.Error(err))
		return nil, err
	}

	return toAulaResponse(aula), nil
}

func (s *aulaService) GetByID(ctx context.Context, id int64) (*dto.AulaResponse, error) {
	aula, err := s.repo.Aula.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAulaNotFound
		}
		s.logger.Error("consultando aula", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toAulaResponse(aula), nil
}

func (s *aulaService) List(ctx context.Context) ([]dto.AulaResponse, error) {
	aulas, err := s.repo.Aula.List(ctx)
	if err != nil {
		s.logger.Error("listando aulas", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AulaResponse, 0, len(aulas))
	for i := range aulas {
		result = append(result, *toAulaResponse(&aulas[i]))
	}
	return result, nil
}

func (s *aulaService) Update(ctx context.Context, req *dto.UpdateAulaRequest) (*dto.AulaResponse, error) {
	aula, err := s.repo.Aula.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAulaNotFound
		}
		return nil, err
	}

	if req.Codigo != aula.Codigo {
		if _, err := s.repo.Aula.GetByCodigo(ctx, req.Codigo); err == nil {
			return nil, ErrCodigoAulaEnUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	aula.Codigo = req.Codigo
	aula.Capacidad = req.Capacidad
	aula.Tipo = req.Tipo
	aula.Ubicacion = req.Ubicacion
	aula.Activo = *req.Activo

	if err := s.repo.Aula.Update(ctx, aula); err != nil {
		s.logger.Error("actualizando aula", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	return toAulaResponse(aula), nil
}

func (s *aulaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Aula.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAulaNotFound
		}
		return err
	}
	if err := s.repo.Aula.Delete(ctx, id); err != nil {
		s.logger.Error("eliminando aula", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toAulaResponse(a *model.Aula) *dto.AulaResponse {
	return &dto.AulaResponse{
		ID:        a.ID,
		Codigo:    a.Codigo,
		Capacidad: a.Capacidad,
		Tipo:      a.Tipo,
		Ubicacion: a.Ubicacion,
		Activo:    a.Activo,
	}
}
