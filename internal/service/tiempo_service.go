package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
)

// ── Errores del módulo de bloques y días ──

var (
	ErrBloqueNotFound    = errors.New("el bloque horario no existe")
	ErrDiaNotFound       = errors.New("el día no existe")
	ErrHoraInvalida      = errors.New("formato de hora inválido, use HH:MM o HH:MM:SS")
	ErrRangoHoraInvalido = errors.New("la hora de inicio debe ser anterior a la hora de fin")
)

// TiempoService administración del eje de tiempo: bloques horarios y días
type TiempoService interface {
	CreateBloque(ctx context.Context, req *dto.CreateBloqueRequest) (*dto.BloqueResponse, error)
	GetBloque(ctx context.Context, id int64) (*dto.BloqueResponse, error)
	ListBloques(ctx context.Context) ([]dto.BloqueResponse, error)
	UpdateBloque(ctx context.Context, req *dto.UpdateBloqueRequest) (*dto.BloqueResponse, error)
	DeleteBloque(ctx context.Context, id int64) error

	CreateDia(ctx context.Context, req *dto.CreateDiaRequest) (*dto.DiaResponse, error)
	GetDia(ctx context.Context, id int64) (*dto.DiaResponse, error)
	ListDias(ctx context.Context) ([]dto.DiaResponse, error)
	UpdateDia(ctx context.Context, req *dto.UpdateDiaRequest) (*dto.DiaResponse, error)
	DeleteDia(ctx context.Context, id int64) error
}

type tiempoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTiempoService crea una instancia de TiempoService
func NewTiempoService(repo *repository.Repository, logger *zap.Logger) TiempoService {
	return &tiempoService{repo: repo, logger: logger}
}

// normalizarHora acepta "HH:MM" o "HH:MM:SS" y devuelve siempre "HH:MM:SS".
func normalizarHora(valor string) (string, error) {
	if t, err := time.Parse("15:04:05", valor); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", valor); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", ErrHoraInvalida
}

// ── Bloques horarios ──

func (s *tiempoService) CreateBloque(ctx context.Context, req *dto.CreateBloqueRequest) (*dto.BloqueResponse, error) {
	inicio, err := normalizarHora(req.HoraInicio)
	if err != nil {
		return nil, err
	}
	fin, err := normalizarHora(req.HoraFin)
	if err != nil {
		return nil, err
	}
	if inicio >= fin {
		return nil, ErrRangoHoraInvalido
	}

	bloque := &model.BloqueHorario{
		Nombre:      req.Nombre,
		HoraInicio:  inicio,
		HoraFin:     fin,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.BloqueHorario.Create(ctx, bloque); err != nil {
		s.logger.Error("creando bloque horario", zap.Error(err))
		return nil, err
	}
	return toBloqueResponse(bloque), nil
}

func (s *tiempoService) GetBloque(ctx context.Context, id int64) (*dto.BloqueResponse, error) {
	bloque, err := s.repo.BloqueHorario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}
	return toBloqueResponse(bloque), nil
}

func (s *tiempoService) ListBloques(ctx context.Context) ([]dto.BloqueResponse, error) {
	bloques, err := s.repo.BloqueHorario.List(ctx)
	if err != nil {
		s.logger.Error("listando bloques horarios", zap.Error(err))
		return nil, err
	}
	result := make([]dto.BloqueResponse, 0, len(bloques))
	for i := range bloques {
		result = append(result, *toBloqueResponse(&bloques[i]))
	}
	return result, nil
}

func (s *tiempoService) UpdateBloque(ctx context.Context, req *dto.UpdateBloqueRequest) (*dto.BloqueResponse, error) {
	bloque, err := s.repo.BloqueHorario.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}

	inicio, err := normalizarHora(req.HoraInicio)
	if err != nil {
		return nil, err
	}
	fin, err := normalizarHora(req.HoraFin)
	if err != nil {
		return nil, err
	}
	if inicio >= fin {
		return nil, ErrRangoHoraInvalido
	}

	bloque.Nombre = req.Nombre
	bloque.HoraInicio = inicio
	bloque.HoraFin = fin
	bloque.Descripcion = req.Descripcion
	bloque.Activo = *req.Activo

	if err := s.repo.BloqueHorario.Update(ctx, bloque); err != nil {
		s.logger.Error("actualizando bloque horario", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toBloqueResponse(bloque), nil
}

func (s *tiempoService) DeleteBloque(ctx context.Context, id int64) error {
	if _, err := s.repo.BloqueHorario.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBloqueNotFound
		}
		return err
	}
	return s.repo.BloqueHorario.Delete(ctx, id)
}

// ── Días de la semana ──

func (s *tiempoService) CreateDia(ctx context.Context, req *dto.CreateDiaRequest) (*dto.DiaResponse, error) {
	dia := &model.DiaSemana{
		Nombre:      req.Nombre,
		Abreviatura: req.Abreviatura,
	}
	if err := s.repo.DiaSemana.Create(ctx, dia); err != nil {
		s.logger.Error("creando día", zap.Error(err))
		return nil, err
	}
	return toDiaResponse(dia), nil
}

func (s *tiempoService) GetDia(ctx context.Context, id int64) (*dto.DiaResponse, error) {
	dia, err := s.repo.DiaSemana.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiaNotFound
		}
		return nil, err
	}
	return toDiaResponse(dia), nil
}

func (s *tiempoService) ListDias(ctx context.Context) ([]dto.DiaResponse, error) {
	dias, err := s.repo.DiaSemana.List(ctx)
	if err != nil {
		s.logger.Error("listando días", zap.Error(err))
		return nil, err
	}
	result := make([]dto.DiaResponse, 0, len(dias))
	for i := range dias {
		result = append(result, *toDiaResponse(&dias[i]))
	}
	return result, nil
}

func (s *tiempoService) UpdateDia(ctx context.Context, req *dto.UpdateDiaRequest) (*dto.DiaResponse, error) {
	dia, err := s.repo.DiaSemana.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiaNotFound
		}
		return nil, err
	}

	dia.Nombre = req.Nombre
	dia.Abreviatura = req.Abreviatura

	if err := s.repo.DiaSemana.Update(ctx, dia); err != nil {
		s.logger.Error("actualizando día", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toDiaResponse(dia), nil
}

func (s *tiempoService) DeleteDia(ctx context.Context, id int64) error {
	if _, err := s.repo.DiaSemana.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDiaNotFound
		}
		return err
	}
	return s.repo.DiaSemana.Delete(ctx, id)
}

// ── Mapeadores ──

func toBloqueResponse(b *model.BloqueHorario) *dto.BloqueResponse {
	return &dto.BloqueResponse{
		ID:          b.ID,
		Nombre:      b.Nombre,
		HoraInicio:  b.HoraInicio,
		HoraFin:     b.HoraFin,
		Descripcion: b.Descripcion,
		Activo:      b.Activo,
	}
}

func toDiaResponse(d *model.DiaSemana) *dto.DiaResponse {
	return &dto.DiaResponse{
		ID:          d.ID,
		Nombre:      d.Nombre,
		Abreviatura: d.Abreviatura,
	}
}
