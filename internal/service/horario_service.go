package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/grid"
)

// ── Errores del módulo de horarios ──

var (
	ErrHorarioNotFound      = errors.New("el horario no existe")
	ErrProfesorNoDisponible = errors.New("el profesor no está disponible en ese día y bloque")
	ErrAulaNoDisponible     = errors.New("el aula no está disponible en ese día y bloque")
	ErrProfesorOcupado      = errors.New("el profesor ya tiene una asignación activa en ese día y bloque")
	ErrAulaOcupada          = errors.New("el aula ya tiene una asignación activa en ese día y bloque")
)

// HorarioService asignaciones de la cuadrícula de horarios.
//
// Toda escritura re-valida la disponibilidad contra la base de datos: sin un
// registro explícito con disponible=true para el cupo, la asignación se
// rechaza, y nunca se permite la doble reserva de profesor o aula en un mismo
// día × bloque.
type HorarioService interface {
	Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioVista, error)
	GetByID(ctx context.Context, id int64) (*dto.HorarioVista, error)
	List(ctx context.Context) ([]dto.HorarioVista, error)
	ListByProfesor(ctx context.Context, profesorID int64) ([]dto.HorarioVista, error)
	Update(ctx context.Context, req *dto.UpdateHorarioRequest) (*dto.HorarioVista, error)
	Delete(ctx context.Context, id int64) error

	// AulasDisponibles calcula las aulas candidatas para un día × bloque:
	// activas, con disponibilidad explícita y sin asignación activa en el cupo.
	AulasDisponibles(ctx context.Context, diaID, bloqueID int64) ([]dto.AulaResponse, error)
}

type horarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHorarioService crea una instancia de HorarioService
func NewHorarioService(repo *repository.Repository, logger *zap.Logger) HorarioService {
	return &horarioService{repo: repo, logger: logger}
}

// validarReferencias verifica que todas las claves foráneas de la asignación existan
func (s *horarioService) validarReferencias(ctx context.Context, tuID, diaID, bloqueID, aulaID, profesorID int64) error {
	if _, err := s.repo.TrayectoUnidad.GetByID(ctx, tuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrayectoUnidadNotFound
		}
		return err
	}
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
	if _, err := s.repo.Aula.GetByID(ctx, aulaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAulaNotFound
		}
		return err
	}
	if _, err := s.repo.Profesor.GetByID(ctx, profesorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfesorNotFound
		}
		return err
	}
	return nil
}

// validarDisponibilidad aplica la política de cierre por defecto: sin registro
// de disponibilidad, o con disponible=false, el cupo se rechaza.
func (s *horarioService) validarDisponibilidad(ctx context.Context, profesorID, aulaID, diaID, bloqueID int64) error {
	dp, err := s.repo.DisponibilidadProfesor.GetBySlot(ctx, profesorID, diaID, bloqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfesorNoDisponible
		}
		return err
	}
	if !dp.Disponible {
		return ErrProfesorNoDisponible
	}

	da, err := s.repo.DisponibilidadAula.GetBySlot(ctx, aulaID, diaID, bloqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAulaNoDisponible
		}
		return err
	}
	if !da.Disponible {
		return ErrAulaNoDisponible
	}
	return nil
}

// validarConflictos rechaza la doble reserva del profesor o del aula.
// excluirID permite omitir la propia asignación al editar.
func (s *horarioService) validarConflictos(ctx context.Context, profesorID, aulaID, diaID, bloqueID, excluirID int64) error {
	if h, err := s.repo.Horario.FindActivoProfesorSlot(ctx, profesorID, diaID, bloqueID); err == nil {
		if h.ID != excluirID {
			return ErrProfesorOcupado
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if h, err := s.repo.Horario.FindActivoAulaSlot(ctx, aulaID, diaID, bloqueID); err == nil {
		if h.ID != excluirID {
			return ErrAulaOcupada
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *horarioService) Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioVista, error) {
	if err := s.validarReferencias(ctx, req.TrayectoUnidadCurricularID, req.DiaSemanaID, req.BloqueHorarioID, req.AulaID, req.ProfesorID); err != nil {
		return nil, err
	}
	if err := s.validarDisponibilidad(ctx, req.ProfesorID, req.AulaID, req.DiaSemanaID, req.BloqueHorarioID); err != nil {
		return nil, err
	}
	if err := s.validarConflictos(ctx, req.ProfesorID, req.AulaID, req.DiaSemanaID, req.BloqueHorarioID, 0); err != nil {
		return nil, err
	}

	h := &model.Horario{
		TrayectoUnidadCurricularID: req.TrayectoUnidadCurricularID,
		DiaSemanaID:                req.DiaSemanaID,
		BloqueHorarioID:            req.BloqueHorarioID,
		AulaID:                     req.AulaID,
		ProfesorID:                 req.ProfesorID,
		Color:                      req.Color,
		Activo:                     true,
	}
	if err := s.repo.Horario.Create(ctx, h); err != nil {
		s.logger.Error("creando horario", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.Horario.GetByID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("horario asignado",
		zap.Int64("id", creado.ID),
		zap.Int64("profesor_id", creado.ProfesorID),
		zap.Int64("aula_id", creado.AulaID),
		zap.Int64("dia_semana_id", creado.DiaSemanaID),
		zap.Int64("bloque_horario_id", creado.BloqueHorarioID))
	return toHorarioVista(creado), nil
}

func (s *horarioService) GetByID(ctx context.Context, id int64) (*dto.HorarioVista, error) {
	h, err := s.repo.Horario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHorarioNotFound
		}
		return nil, err
	}
	return toHorarioVista(h), nil
}

func (s *horarioService) List(ctx context.Context) ([]dto.HorarioVista, error) {
	hs, err := s.repo.Horario.List(ctx)
	if err != nil {
		s.logger.Error("listando horarios", zap.Error(err))
		return nil, err
	}
	result := make([]dto.HorarioVista, 0, len(hs))
	for i := range hs {
		result = append(result, *toHorarioVista(&hs[i]))
	}
	return result, nil
}

func (s *horarioService) ListByProfesor(ctx context.Context, profesorID int64) ([]dto.HorarioVista, error) {
	if _, err := s.repo.Profesor.GetByID(ctx, profesorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfesorNotFound
		}
		return nil, err
	}
	hs, err := s.repo.Horario.ListByProfesor(ctx, profesorID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HorarioVista, 0, len(hs))
	for i := range hs {
		result = append(result, *toHorarioVista(&hs[i]))
	}
	return result, nil
}

func (s *horarioService) Update(ctx context.Context, req *dto.UpdateHorarioRequest) (*dto.HorarioVista, error) {
	h, err := s.repo.Horario.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHorarioNotFound
		}
		return nil, err
	}

	if _, err := s.repo.TrayectoUnidad.GetByID(ctx, req.TrayectoUnidadCurricularID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoUnidadNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Aula.GetByID(ctx, req.AulaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAulaNotFound
		}
		return nil, err
	}

	// Al reactivar o cambiar de aula la celda vuelve a validarse completa.
	if *req.Activo {
		if err := s.validarDisponibilidad(ctx, h.ProfesorID, req.AulaID, h.DiaSemanaID, h.BloqueHorarioID); err != nil {
			return nil, err
		}
		if err := s.validarConflictos(ctx, h.ProfesorID, req.AulaID, h.DiaSemanaID, h.BloqueHorarioID, h.ID); err != nil {
			return nil, err
		}
	}

	h.TrayectoUnidadCurricularID = req.TrayectoUnidadCurricularID
	h.AulaID = req.AulaID
	h.Color = req.Color
	h.Activo = *req.Activo
	h.TrayectoUnidadCurricular = nil
	h.DiaSemana = nil
	h.BloqueHorario = nil
	h.Aula = nil
	h.Profesor = nil

	if err := s.repo.Horario.Update(ctx, h); err != nil {
		s.logger.Error("actualizando horario", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.Horario.GetByID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	return toHorarioVista(actualizado), nil
}

func (s *horarioService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Horario.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHorarioNotFound
		}
		return err
	}
	if err := s.repo.Horario.Delete(ctx, id); err != nil {
		s.logger.Error("eliminando horario", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *horarioService) AulasDisponibles(ctx context.Context, diaID, bloqueID int64) ([]dto.AulaResponse, error) {
	if _, err := s.repo.DiaSemana.GetByID(ctx, diaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiaNotFound
		}
		return nil, err
	}
	if _, err := s.repo.BloqueHorario.GetByID(ctx, bloqueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}

	ds, err := s.repo.DisponibilidadAula.ListBySlot(ctx, diaID, bloqueID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AulaResponse, 0, len(ds))
	for i := range ds {
		d := &ds[i]
		if !d.Disponible || d.Aula == nil || !d.Aula.Activo {
			continue
		}
		if _, err := s.repo.Horario.FindActivoAulaSlot(ctx, d.AulaID, diaID, bloqueID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		result = append(result, *toAulaResponse(d.Aula))
	}
	return result, nil
}

// toHorarioVista arma la fila de vista con etiquetas resueltas. Si la
// asignación no trae color, se deriva uno determinista del nombre de la unidad.
func toHorarioVista(h *model.Horario) *dto.HorarioVista {
	vista := &dto.HorarioVista{
		ID:                         h.ID,
		TrayectoUnidadCurricularID: h.TrayectoUnidadCurricularID,
		DiaSemanaID:                h.DiaSemanaID,
		BloqueHorarioID:            h.BloqueHorarioID,
		AulaID:                     h.AulaID,
		ProfesorID:                 h.ProfesorID,
		Color:                      h.Color,
		Activo:                     h.Activo,
	}
	if tu := h.TrayectoUnidadCurricular; tu != nil {
		if tu.UnidadCurricular != nil {
			vista.UnidadCurricular = tu.UnidadCurricular.Nombre
			vista.CodigoUnidad = tu.UnidadCurricular.Codigo
		}
		if tu.Trayecto != nil {
			vista.Trayecto = tu.Trayecto.Nombre
		}
	}
	if h.DiaSemana != nil {
		vista.Dia = h.DiaSemana.Nombre
	}
	if h.BloqueHorario != nil {
		vista.Bloque = h.BloqueHorario.Nombre
		vista.HoraInicio = h.BloqueHorario.HoraInicio
		vista.HoraFin = h.BloqueHorario.HoraFin
	}
	if h.Aula != nil {
		vista.Aula = h.Aula.Codigo
	}
	if h.Profesor != nil {
		vista.Profesor = h.Profesor.Apellido + ", " + h.Profesor.Nombre
	}
	if vista.Color == "" {
		vista.Color = grid.ColorPara(vista.UnidadCurricular)
	}
	return vista
}
