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

// ── Errores del módulo académico ──

var (
	ErrTrayectoNotFound       = errors.New("el trayecto no existe")
	ErrUnidadNotFound         = errors.New("la unidad curricular no existe")
	ErrCodigoUnidadEnUso      = errors.New("ya existe una unidad curricular con ese código")
	ErrTrayectoUnidadNotFound = errors.New("la asociación trayecto-unidad no existe")
	ErrTrayectoUnidadDuplica  = errors.New("la unidad curricular ya está asociada a ese trayecto")
)

// AcademicoService administración de trayectos, unidades curriculares y
// la malla que los asocia.
type AcademicoService interface {
	CreateTrayecto(ctx context.Context, req *dto.CreateTrayectoRequest) (*dto.TrayectoResponse, error)
	GetTrayecto(ctx context.Context, id int64) (*dto.TrayectoResponse, error)
	ListTrayectos(ctx context.Context) ([]dto.TrayectoResponse, error)
	UpdateTrayecto(ctx context.Context, req *dto.UpdateTrayectoRequest) (*dto.TrayectoResponse, error)
	DeleteTrayecto(ctx context.Context, id int64) error

	CreateUnidad(ctx context.Context, req *dto.CreateUnidadCurricularRequest) (*dto.UnidadCurricularResponse, error)
	GetUnidad(ctx context.Context, id int64) (*dto.UnidadCurricularResponse, error)
	ListUnidades(ctx context.Context) ([]dto.UnidadCurricularResponse, error)
	UpdateUnidad(ctx context.Context, req *dto.UpdateUnidadCurricularRequest) (*dto.UnidadCurricularResponse, error)
	DeleteUnidad(ctx context.Context, id int64) error

	CreateTrayectoUnidad(ctx context.Context, req *dto.CreateTrayectoUnidadRequest) (*dto.TrayectoUnidadVista, error)
	ListTrayectoUnidades(ctx context.Context) ([]dto.TrayectoUnidadVista, error)
	ListTrayectoUnidadesPorTrayecto(ctx context.Context, trayectoID int64) ([]dto.TrayectoUnidadVista, error)
	UpdateTrayectoUnidad(ctx context.Context, req *dto.UpdateTrayectoUnidadRequest) (*dto.TrayectoUnidadVista, error)
	DeleteTrayectoUnidad(ctx context.Context, id int64) error
}

type academicoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAcademicoService crea una instancia de AcademicoService
func NewAcademicoService(repo *repository.Repository, logger *zap.Logger) AcademicoService {
	return &academicoService{repo: repo, logger: logger}
}

// ── Trayectos ──

func (s *academicoService) CreateTrayecto(ctx context.Context, req *dto.CreateTrayectoRequest) (*dto.TrayectoResponse, error) {
	trayecto := &model.Trayecto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.Trayecto.Create(ctx, trayecto); err != nil {
		s.logger.Error("creando trayecto", zap.Error(err))
		return nil, err
	}
	return toTrayectoResponse(trayecto), nil
}

func (s *academicoService) GetTrayecto(ctx context.Context, id int64) (*dto.TrayectoResponse, error) {
	trayecto, err := s.repo.Trayecto.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoNotFound
		}
		return nil, err
	}
	return toTrayectoResponse(trayecto), nil
}

func (s *academicoService) ListTrayectos(ctx context.Context) ([]dto.TrayectoResponse, error) {
	trayectos, err := s.repo.Trayecto.List(ctx)
	if err != nil {
		s.logger.Error("listando trayectos", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TrayectoResponse, 0, len(trayectos))
	for i := range trayectos {
		result = append(result, *toTrayectoResponse(&trayectos[i]))
	}
	return result, nil
}

func (s *academicoService) UpdateTrayecto(ctx context.Context, req *dto.UpdateTrayectoRequest) (*dto.TrayectoResponse, error) {
	trayecto, err := s.repo.Trayecto.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoNotFound
		}
		return nil, err
	}

	trayecto.Nombre = req.Nombre
	trayecto.Descripcion = req.Descripcion
	trayecto.Activo = *req.Activo

	if err := s.repo.Trayecto.Update(ctx, trayecto); err != nil {
		s.logger.Error("actualizando trayecto", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toTrayectoResponse(trayecto), nil
}

func (s *academicoService) DeleteTrayecto(ctx context.Context, id int64) error {
	if _, err := s.repo.Trayecto.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrayectoNotFound
		}
		return err
	}
	return s.repo.Trayecto.Delete(ctx, id)
}

// ── Unidades curriculares ──

func (s *academicoService) CreateUnidad(ctx context.Context, req *dto.CreateUnidadCurricularRequest) (*dto.UnidadCurricularResponse, error) {
	if _, err := s.repo.UnidadCurricular.GetByCodigo(ctx, req.Codigo); err == nil {
		return nil, ErrCodigoUnidadEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unidad := &model.UnidadCurricular{
		Codigo:         req.Codigo,
		Nombre:         req.Nombre,
		Creditos:       req.Creditos,
		HorasTeoricas:  req.HorasTeoricas,
		HorasPracticas: req.HorasPracticas,
		Descripcion:    req.Descripcion,
		Activo:         true,
	}
	if err := s.repo.UnidadCurricular.Create(ctx, unidad); err != nil {
		s.logger.Error("creando unidad curricular", zap.Error(err))
		return nil, err
	}
	return toUnidadResponse(unidad), nil
}

func (s *academicoService) GetUnidad(ctx context.Context, id int64) (*dto.UnidadCurricularResponse, error) {
	unidad, err := s.repo.UnidadCurricular.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadNotFound
		}
		return nil, err
	}
	return toUnidadResponse(unidad), nil
}

func (s *academicoService) ListUnidades(ctx context.Context) ([]dto.UnidadCurricularResponse, error) {
	unidades, err := s.repo.UnidadCurricular.List(ctx)
	if err != nil {
		s.logger.Error("listando unidades curriculares", zap.Error(err))
		return nil, err
	}
	result := make([]dto.UnidadCurricularResponse, 0, len(unidades))
	for i := range unidades {
		result = append(result, *toUnidadResponse(&unidades[i]))
	}
	return result, nil
}

func (s *academicoService) UpdateUnidad(ctx context.Context, req *dto.UpdateUnidadCurricularRequest) (*dto.UnidadCurricularResponse, error) {
	unidad, err := s.repo.UnidadCurricular.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadNotFound
		}
		return nil, err
	}

	if req.Codigo != unidad.Codigo {
		if _, err := s.repo.UnidadCurricular.GetByCodigo(ctx, req.Codigo); err == nil {
			return nil, ErrCodigoUnidadEnUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	unidad.Codigo = req.Codigo
	unidad.Nombre = req.Nombre
	unidad.Creditos = req.Creditos
	unidad.HorasTeoricas = req.HorasTeoricas
	unidad.HorasPracticas = req.HorasPracticas
	unidad.Descripcion = req.Descripcion
	unidad.Activo = *req.Activo

	if err := s.repo.UnidadCurricular.Update(ctx, unidad); err != nil {
		s.logger.Error("actualizando unidad curricular", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toUnidadResponse(unidad), nil
}

func (s *academicoService) DeleteUnidad(ctx context.Context, id int64) error {
	if _, err := s.repo.UnidadCurricular.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnidadNotFound
		}
		return err
	}
	return s.repo.UnidadCurricular.Delete(ctx, id)
}

// ── Asociación trayecto × unidad curricular ──

func (s *academicoService) CreateTrayectoUnidad(ctx context.Context, req *dto.CreateTrayectoUnidadRequest) (*dto.TrayectoUnidadVista, error) {
	if _, err := s.repo.Trayecto.GetByID(ctx, req.TrayectoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoNotFound
		}
		return nil, err
	}
	if _, err := s.repo.UnidadCurricular.GetByID(ctx, req.UnidadCurricularID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadNotFound
		}
		return nil, err
	}

	existentes, err := s.repo.TrayectoUnidad.ListByTrayecto(ctx, req.TrayectoID)
	if err != nil {
		return nil, err
	}
	for i := range existentes {
		if existentes[i].UnidadCurricularID == req.UnidadCurricularID {
			return nil, ErrTrayectoUnidadDuplica
		}
	}

	tu := &model.TrayectoUnidadCurricular{
		TrayectoID:         req.TrayectoID,
		UnidadCurricularID: req.UnidadCurricularID,
	}
	if err := s.repo.TrayectoUnidad.Create(ctx, tu); err != nil {
		s.logger.Error("asociando unidad a trayecto", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.TrayectoUnidad.GetByID(ctx, tu.ID)
	if err != nil {
		return nil, err
	}
	return toTrayectoUnidadVista(creado), nil
}

func (s *academicoService) ListTrayectoUnidades(ctx context.Context) ([]dto.TrayectoUnidadVista, error) {
	tus, err := s.repo.TrayectoUnidad.List(ctx)
	if err != nil {
		s.logger.Error("listando asociaciones trayecto-unidad", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TrayectoUnidadVista, 0, len(tus))
	for i := range tus {
		result = append(result, *toTrayectoUnidadVista(&tus[i]))
	}
	return result, nil
}

func (s *academicoService) ListTrayectoUnidadesPorTrayecto(ctx context.Context, trayectoID int64) ([]dto.TrayectoUnidadVista, error) {
	tus, err := s.repo.TrayectoUnidad.ListByTrayecto(ctx, trayectoID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TrayectoUnidadVista, 0, len(tus))
	for i := range tus {
		result = append(result, *toTrayectoUnidadVista(&tus[i]))
	}
	return result, nil
}

func (s *academicoService) UpdateTrayectoUnidad(ctx context.Context, req *dto.UpdateTrayectoUnidadRequest) (*dto.TrayectoUnidadVista, error) {
	tu, err := s.repo.TrayectoUnidad.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoUnidadNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Trayecto.GetByID(ctx, req.TrayectoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrayectoNotFound
		}
		return nil, err
	}
	if _, err := s.repo.UnidadCurricular.GetByID(ctx, req.UnidadCurricularID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadNotFound
		}
		return nil, err
	}

	if req.TrayectoID != tu.TrayectoID || req.UnidadCurricularID != tu.UnidadCurricularID {
		existentes, err := s.repo.TrayectoUnidad.ListByTrayecto(ctx, req.TrayectoID)
		if err != nil {
			return nil, err
		}
		for i := range existentes {
			if existentes[i].ID != tu.ID && existentes[i].UnidadCurricularID == req.UnidadCurricularID {
				return nil, ErrTrayectoUnidadDuplica
			}
		}
	}

	tu.TrayectoID = req.TrayectoID
	tu.UnidadCurricularID = req.UnidadCurricularID
	tu.Trayecto = nil
	tu.UnidadCurricular = nil

	if err := s.repo.TrayectoUnidad.Update(ctx, tu); err != nil {
		s.logger.Error("actualizando asociación trayecto-unidad", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.TrayectoUnidad.GetByID(ctx, tu.ID)
	if err != nil {
		return nil, err
	}
	return toTrayectoUnidadVista(actualizado), nil
}

func (s *academicoService) DeleteTrayectoUnidad(ctx context.Context, id int64) error {
	if _, err := s.repo.TrayectoUnidad.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrayectoUnidadNotFound
		}
		return err
	}
	return s.repo.TrayectoUnidad.Delete(ctx, id)
}

// ── Mapeadores ──

func toTrayectoResponse(t *model.Trayecto) *dto.TrayectoResponse {
	return &dto.TrayectoResponse{
		ID:          t.ID,
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Activo:      t.Activo,
	}
}

func toUnidadResponse(u *model.UnidadCurricular) *dto.UnidadCurricularResponse {
	return &dto.UnidadCurricularResponse{
		ID:             u.ID,
		Codigo:         u.Codigo,
		Nombre:         u.Nombre,
		Creditos:       u.Creditos,
		HorasTeoricas:  u.HorasTeoricas,
		HorasPracticas: u.HorasPracticas,
		Descripcion:    u.Descripcion,
		Activo:         u.Activo,
	}
}

func toTrayectoUnidadVista(tu *model.TrayectoUnidadCurricular) *dto.TrayectoUnidadVista {
	vista := &dto.TrayectoUnidadVista{
		ID:                 tu.ID,
		TrayectoID:         tu.TrayectoID,
		UnidadCurricularID: tu.UnidadCurricularID,
	}
	if tu.Trayecto != nil {
		vista.Trayecto = tu.Trayecto.Nombre
	}
	if tu.UnidadCurricular != nil {
		vista.UnidadCurricular = tu.UnidadCurricular.Nombre
		vista.CodigoUnidad = tu.UnidadCurricular.Codigo
	}
	return vista
}
