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

// ── Errores del módulo de disponibilidad ──

var (
	ErrDisponibilidadNotFound = errors.New("el registro de disponibilidad no existe")
	ErrCupoDuplicado          = errors.New("ya existe un registro de disponibilidad para ese cupo")
)

// DisponibilidadService administración de los registros de disponibilidad
// de profesores y aulas por día × bloque.
type DisponibilidadService interface {
	CreateProfesor(ctx context.Context, req *dto.CreateDisponibilidadProfesorRequest) (*dto.DisponibilidadProfesorVista, error)
	ListProfesores(ctx context.Context) ([]dto.DisponibilidadProfesorVista, error)
	UpdateProfesor(ctx context.Context, req *dto.UpdateDisponibilidadProfesorRequest) (*dto.DisponibilidadProfesorVista, error)
	DeleteProfesor(ctx context.Context, id int64) error

	CreateAula(ctx context.Context, req *dto.CreateDisponibilidadAulaRequest) (*dto.DisponibilidadAulaVista, error)
	ListAulas(ctx context.Context) ([]dto.DisponibilidadAulaVista, error)
	UpdateAula(ctx context.Context, req *dto.UpdateDisponibilidadAulaRequest) (*dto.DisponibilidadAulaVista, error)
	DeleteAula(ctx context.Context, id int64) error
}

type disponibilidadService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDisponibilidadService crea una instancia de DisponibilidadService
func NewDisponibilidadService(repo *repository.Repository, logger *zap.Logger) DisponibilidadService {
	return &disponibilidadService{repo: repo, logger: logger}
}

// validarCupo verifica que el día y el bloque existan
func (s *disponibilidadService) validarCupo(ctx context.Context, diaID, bloqueID int64) error {
	if _, err := s.repo.DiaSemana.GetByID(ctx, diaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDiaNotFound
		}
		return err
	}
	if _, err := s.repo.BloqueHorario.GetByID(ctx, bloqueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBloqueNotFound
		}
		return err
	}
	return nil
}

// ── Disponibilidad de profesores ──

func (s *disponibilidadService) CreateProfesor(ctx context.Context, req *dto.CreateDisponibilidadProfesorRequest) (*dto.DisponibilidadProfesorVista, error) {
	if _, err := s.repo.Profesor.GetByID(ctx, req.ProfesorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfesorNotFound
		}
		return nil, err
	}
	if err := s.validarCupo(ctx, req.DiaSemanaID, req.BloqueHorarioID); err != nil {
		return nil, err
	}

	if _, err := s.repo.DisponibilidadProfesor.GetBySlot(ctx, req.ProfesorID, req.DiaSemanaID, req.BloqueHorarioID); err == nil {
		return nil, ErrCupoDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &model.DisponibilidadProfesor{
		ProfesorID:      req.ProfesorID,
		DiaSemanaID:     req.DiaSemanaID,
		BloqueHorarioID: req.BloqueHorarioID,
		Disponible:      *req.Disponible,
	}
	if err := s.repo.DisponibilidadProfesor.Create(ctx, d); err != nil {
		s.logger.Error("creando disponibilidad de profesor", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.DisponibilidadProfesor.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDisponibilidadProfesorVista(creado), nil
}

func (s *disponibilidadService) ListProfesores(ctx context.Context) ([]dto.DisponibilidadProfesorVista, error) {
	ds, err := s.repo.DisponibilidadProfesor.List(ctx)
	if err != nil {
		s.logger.Error("listando disponibilidad de profesores", zap.Error(err))
		return nil, err
	}
	result := make([]dto.DisponibilidadProfesorVista, 0, len(ds))
	for i := range ds {
		result = append(result, *toDisponibilidadProfesorVista(&ds[i]))
	}
	return result, nil
}

func (s *disponibilidadService) UpdateProfesor(ctx context.Context, req *dto.UpdateDisponibilidadProfesorRequest) (*dto.DisponibilidadProfesorVista, error) {
	d, err := s.repo.DisponibilidadProfesor.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisponibilidadNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Profesor.GetByID(ctx, req.ProfesorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfesorNotFound
		}
		return nil, err
	}
	if err := s.validarCupo(ctx, req.DiaSemanaID, req.BloqueHorarioID); err != nil {
		return nil, err
	}

	cambiaCupo := req.ProfesorID != d.ProfesorID ||
		req.DiaSemanaID != d.DiaSemanaID ||
		req.BloqueHorarioID != d.BloqueHorarioID
	if cambiaCupo {
		if existente, err := s.repo.DisponibilidadProfesor.GetBySlot(ctx, req.ProfesorID, req.DiaSemanaID, req.BloqueHorarioID); err == nil && existente.ID != d.ID {
			return nil, ErrCupoDuplicado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	d.ProfesorID = req.ProfesorID
	d.DiaSemanaID = req.DiaSemanaID
	d.BloqueHorarioID = req.BloqueHorarioID
	d.Disponible = *req.Disponible
	d.Profesor = nil
	d.DiaSemana = nil
	d.BloqueHorario = nil

	if err := s.repo.DisponibilidadProfesor.Update(ctx, d); err != nil {
		s.logger.Error("actualizando disponibilidad de profesor", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.DisponibilidadProfesor.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDisponibilidadProfesorVista(actualizado), nil
}

func (s *disponibilidadService) DeleteProfesor(ctx context.Context, id int64) error {
	if _, err := s.repo.DisponibilidadProfesor.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDisponibilidadNotFound
		}
		return err
	}
	return s.repo.DisponibilidadProfesor.Delete(ctx, id)
}

// ── Disponibilidad de aulas ──

func (s *disponibilidadService) CreateAula(ctx context.Context, req *dto.CreateDisponibilidadAulaRequest) (*dto.DisponibilidadAulaVista, error) {
	if _, err := s.repo.Aula.GetByID(ctx, req.AulaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAulaNotFound
		}
		return nil, err
	}
	if err := s.validarCupo(ctx, req.DiaSemanaID, req.BloqueHorarioID); err != nil {
		return nil, err
	}

	if _, err := s.repo.DisponibilidadAula.GetBySlot(ctx, req.AulaID, req.DiaSemanaID, req.BloqueHorarioID); err == nil {
		return nil, ErrCupoDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &model.DisponibilidadAula{
		AulaID:          req.AulaID,
		DiaSemanaID:     req.DiaSemanaID,
		BloqueHorarioID: req.BloqueHorarioID,
		Disponible:      *req.Disponible,
	}
	if err := s.repo.DisponibilidadAula.Create(ctx, d); err != nil {
		s.logger.Error("creando disponibilidad de aula", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.DisponibilidadAula.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDisponibilidadAulaVista(creado), nil
}

func (s *disponibilidadService) ListAulas(ctx context.Context) ([]dto.DisponibilidadAulaVista, error) {
	ds, err := s.repo.DisponibilidadAula.List(ctx)
	if err != nil {
		s.logger.Error("listando disponibilidad de aulas", zap.Error(err))
		return nil, err
	}
	result := make([]dto.DisponibilidadAulaVista, 0, len(ds))
	for i := range ds {
		result = append(result, *toDisponibilidadAulaVista(&ds[i]))
	}
	return result, nil
}

func (s *disponibilidadService) UpdateAula(ctx context.Context, req *dto.UpdateDisponibilidadAulaRequest) (*dto.DisponibilidadAulaVista, error) {
	d, err := s.repo.DisponibilidadAula.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisponibilidadNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Aula.GetByID(ctx, req.AulaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAulaNotFound
		}
		return nil, err
	}
	if err := s.validarCupo(ctx, req.DiaSemanaID, req.BloqueHorarioID); err != nil {
		return nil, err
	}

	cambiaCupo := req.AulaID != d.AulaID ||
		req.DiaSemanaID != d.DiaSemanaID ||
		req.BloqueHorarioID != d.BloqueHorarioID
	if cambiaCupo {
		if existente, err := s.repo.DisponibilidadAula.GetBySlot(ctx, req.AulaID, req.DiaSemanaID, req.BloqueHorarioID); err == nil && existente.ID != d.ID {
			return nil, ErrCupoDuplicado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	d.AulaID = req.AulaID
	d.DiaSemanaID = req.DiaSemanaID
	d.BloqueHorarioID = req.BloqueHorarioID
	d.Disponible = *req.Disponible
	d.Aula = nil
	d.DiaSemana = nil
	d.BloqueHorario = nil

	if err := s.repo.DisponibilidadAula.Update(ctx, d); err != nil {
		s.logger.Error("actualizando disponibilidad de aula", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.DisponibilidadAula.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDisponibilidadAulaVista(actualizado), nil
}

func (s *disponibilidadService) DeleteAula(ctx context.Context, id int64) error {
	if _, err := s.repo.DisponibilidadAula.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDisponibilidadNotFound
		}
		return err
	}
	return s.repo.DisponibilidadAula.Delete(ctx, id)
}

// ── Mapeadores ──

func toDisponibilidadProfesorVista(d *model.DisponibilidadProfesor) *dto.DisponibilidadProfesorVista {
	vista := &dto.DisponibilidadProfesorVista{
		ID:              d.ID,
		ProfesorID:      d.ProfesorID,
		DiaSemanaID:     d.DiaSemanaID,
		BloqueHorarioID: d.BloqueHorarioID,
		Disponible:      d.Disponible,
	}
	if d.Profesor != nil {
		vista.Profesor = d.Profesor.Apellido + ", " + d.Profesor.Nombre
		vista.Cedula = d.Profesor.Cedula
	}
	if d.DiaSemana != nil {
		vista.Dia = d.DiaSemana.Nombre
	}
	if d.BloqueHorario != nil {
		vista.Bloque = d.BloqueHorario.Nombre
		vista.HoraInicio = d.BloqueHorario.HoraInicio
		vista.HoraFin = d.BloqueHorario.HoraFin
	}
	return vista
}

func toDisponibilidadAulaVista(d *model.DisponibilidadAula) *dto.DisponibilidadAulaVista {
	vista := &dto.DisponibilidadAulaVista{
		ID:              d.ID,
		AulaID:          d.AulaID,
		DiaSemanaID:     d.DiaSemanaID,
		BloqueHorarioID: d.BloqueHorarioID,
		Disponible:      d.Disponible,
	}
	if d.Aula != nil {
		vista.Aula = d.Aula.Codigo
	}
	if d.DiaSemana != nil {
		vista.Dia = d.DiaSemana.Nombre
	}
	if d.BloqueHorario != nil {
		vista.Bloque = d.BloqueHorario.Nombre
		vista.HoraInicio = d.BloqueHorario.HoraInicio
		vista.HoraFin = d.BloqueHorario.HoraFin
	}
	return vista
}
