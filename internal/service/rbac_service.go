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

// ── Errores del módulo RBAC ──

var (
	ErrRolNotFound        = errors.New("el rol no existe")
	ErrRolEnUso           = errors.New("ya existe un rol con ese nombre")
	ErrPermisoNotFound    = errors.New("el permiso no existe")
	ErrUsuarioRolNotFound = errors.New("la asignación usuario-rol no existe")
	ErrRolPermisoNotFound = errors.New("la asignación rol-permiso no existe")
)

// RBACService administración del grafo de control de acceso: roles,
// permisos y sus tablas de unión.
type RBACService interface {
	CreateRol(ctx context.Context, req *dto.CreateRolRequest) (*dto.RolResponse, error)
	GetRol(ctx context.Context, id int64) (*dto.RolResponse, error)
	ListRoles(ctx context.Context) ([]dto.RolResponse, error)
	UpdateRol(ctx context.Context, req *dto.UpdateRolRequest) (*dto.RolResponse, error)
	DeleteRol(ctx context.Context, id int64) error

	CreatePermiso(ctx context.Context, req *dto.CreatePermisoRequest) (*dto.PermisoResponse, error)
	GetPermiso(ctx context.Context, id int64) (*dto.PermisoResponse, error)
	ListPermisos(ctx context.Context) ([]dto.PermisoResponse, error)
	UpdatePermiso(ctx context.Context, req *dto.UpdatePermisoRequest) (*dto.PermisoResponse, error)
	DeletePermiso(ctx context.Context, id int64) error

	CreateUsuarioRol(ctx context.Context, req *dto.CreateUsuarioRolRequest) (*dto.UsuarioRolVista, error)
	ListUsuarioRoles(ctx context.Context) ([]dto.UsuarioRolVista, error)
	UpdateUsuarioRol(ctx context.Context, req *dto.UpdateUsuarioRolRequest) (*dto.UsuarioRolVista, error)
	DeleteUsuarioRol(ctx context.Context, id int64) error

	CreateRolPermiso(ctx context.Context, req *dto.CreateRolPermisoRequest) (*dto.RolPermisoVista, error)
	ListRolPermisos(ctx context.Context) ([]dto.RolPermisoVista, error)
	UpdateRolPermiso(ctx context.Context, req *dto.UpdateRolPermisoRequest) (*dto.RolPermisoVista, error)
	DeleteRolPermiso(ctx context.Context, id int64) error
}

type rbacService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRBACService crea una instancia de RBACService
func NewRBACService(repo *repository.Repository, logger *zap.Logger) RBACService {
	return &rbacService{repo: repo, logger: logger}
}

// ── Roles ──

func (s *rbacService) CreateRol(ctx context.Context, req *dto.CreateRolRequest) (*dto.RolResponse, error) {
	if _, err := s.repo.Rol.GetByNombre(ctx, req.Nombre); err == nil {
		return nil, ErrRolEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rol := &model.Rol{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Rol.Create(ctx, rol); err != nil {
		s.logger.Error("creando rol", zap.Error(err))
		return nil, err
	}
	return toRolResponse(rol), nil
}

func (s *rbacService) GetRol(ctx context.Context, id int64) (*dto.RolResponse, error) {
	rol, err := s.repo.Rol.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}
	return toRolResponse(rol), nil
}

func (s *rbacService) ListRoles(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.repo.Rol.List(ctx)
	if err != nil {
		s.logger.Error("listando roles", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RolResponse, 0, len(roles))
	for i := range roles {
		result = append(result, *toRolResponse(&roles[i]))
	}
	return result, nil
}

func (s *rbacService) UpdateRol(ctx context.Context, req *dto.UpdateRolRequest) (*dto.RolResponse, error) {
	rol, err := s.repo.Rol.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}

	if req.Nombre != rol.Nombre {
		if _, err := s.repo.Rol.GetByNombre(ctx, req.Nombre); err == nil {
			return nil, ErrRolEnUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	rol.Nombre = req.Nombre
	rol.Descripcion = req.Descripcion

	if err := s.repo.Rol.Update(ctx, rol); err != nil {
		s.logger.Error("actualizando rol", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toRolResponse(rol), nil
}

func (s *rbacService) DeleteRol(ctx context.Context, id int64) error {
	if _, err := s.repo.Rol.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRolNotFound
		}
		return err
	}
	return s.repo.Rol.Delete(ctx, id)
}

// ── Permisos ──

func (s *rbacService) CreatePermiso(ctx context.Context, req *dto.CreatePermisoRequest) (*dto.PermisoResponse, error) {
	permiso := &model.Permiso{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Permiso.Create(ctx, permiso); err != nil {
		s.logger.Error("creando permiso", zap.Error(err))
		return nil, err
	}
	return toPermisoResponse(permiso), nil
}

func (s *rbacService) GetPermiso(ctx context.Context, id int64) (*dto.PermisoResponse, error) {
	permiso, err := s.repo.Permiso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermisoNotFound
		}
		return nil, err
	}
	return toPermisoResponse(permiso), nil
}

func (s *rbacService) ListPermisos(ctx context.Context) ([]dto.PermisoResponse, error) {
	permisos, err := s.repo.Permiso.List(ctx)
	if err != nil {
		s.logger.Error("listando permisos", zap.Error(err))
		return nil, err
	}
	result := make([]dto.PermisoResponse, 0, len(permisos))
	for i := range permisos {
		result = append(result, *toPermisoResponse(&permisos[i]))
	}
	return result, nil
}

func (s *rbacService) UpdatePermiso(ctx context.Context, req *dto.UpdatePermisoRequest) (*dto.PermisoResponse, error) {
	permiso, err := s.repo.Permiso.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermisoNotFound
		}
		return nil, err
	}

	permiso.Nombre = req.Nombre
	permiso.Descripcion = req.Descripcion

	if err := s.repo.Permiso.Update(ctx, permiso); err != nil {
		s.logger.Error("actualizando permiso", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toPermisoResponse(permiso), nil
}

func (s *rbacService) DeletePermiso(ctx context.Context, id int64) error {
	if _, err := s.repo.Permiso.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermisoNotFound
		}
		return err
	}
	return s.repo.Permiso.Delete(ctx, id)
}

// ── Asignaciones usuario × rol ──

func (s *rbacService) CreateUsuarioRol(ctx context.Context, req *dto.CreateUsuarioRolRequest) (*dto.UsuarioRolVista, error) {
	if _, err := s.repo.Usuario.GetByID(ctx, req.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Rol.GetByID(ctx, req.RolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}

	ur := &model.UsuarioRol{UsuarioID: req.UsuarioID, RolID: req.RolID}
	if err := s.repo.UsuarioRol.Create(ctx, ur); err != nil {
		s.logger.Error("asignando rol a usuario", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.UsuarioRol.GetByID(ctx, ur.ID)
	if err != nil {
		return nil, err
	}
	return toUsuarioRolVista(creado), nil
}

func (s *rbacService) ListUsuarioRoles(ctx context.Context) ([]dto.UsuarioRolVista, error) {
	urs, err := s.repo.UsuarioRol.List(ctx)
	if err != nil {
		s.logger.Error("listando asignaciones usuario-rol", zap.Error(err))
		return nil, err
	}
	result := make([]dto.UsuarioRolVista, 0, len(urs))
	for i := range urs {
		result = append(result, *toUsuarioRolVista(&urs[i]))
	}
	return result, nil
}

func (s *rbacService) UpdateUsuarioRol(ctx context.Context, req *dto.UpdateUsuarioRolRequest) (*dto.UsuarioRolVista, error) {
	ur, err := s.repo.UsuarioRol.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioRolNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Usuario.GetByID(ctx, req.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Rol.GetByID(ctx, req.RolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}

	ur.UsuarioID = req.UsuarioID
	ur.RolID = req.RolID
	ur.Usuario = nil
	ur.Rol = nil

	if err := s.repo.UsuarioRol.Update(ctx, ur); err != nil {
		s.logger.Error("actualizando asignación usuario-rol", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.UsuarioRol.GetByID(ctx, ur.ID)
	if err != nil {
		return nil, err
	}
	return toUsuarioRolVista(actualizado), nil
}

func (s *rbacService) DeleteUsuarioRol(ctx context.Context, id int64) error {
	if _, err := s.repo.UsuarioRol.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioRolNotFound
		}
		return err
	}
	return s.repo.UsuarioRol.Delete(ctx, id)
}

// ── Asignaciones rol × permiso ──

func (s *rbacService) CreateRolPermiso(ctx context.Context, req *dto.CreateRolPermisoRequest) (*dto.RolPermisoVista, error) {
	if _, err := s.repo.Rol.GetByID(ctx, req.RolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Permiso.GetByID(ctx, req.PermisoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermisoNotFound
		}
		return nil, err
	}

	rp := &model.RolPermiso{RolID: req.RolID, PermisoID: req.PermisoID}
	if err := s.repo.RolPermiso.Create(ctx, rp); err != nil {
		s.logger.Error("asignando permiso a rol", zap.Error(err))
		return nil, err
	}

	creado, err := s.repo.RolPermiso.GetByID(ctx, rp.ID)
	if err != nil {
		return nil, err
	}
	return toRolPermisoVista(creado), nil
}

func (s *rbacService) ListRolPermisos(ctx context.Context) ([]dto.RolPermisoVista, error) {
	rps, err := s.repo.RolPermiso.List(ctx)
	if err != nil {
		s.logger.Error("listando asignaciones rol-permiso", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RolPermisoVista, 0, len(rps))
	for i := range rps {
		result = append(result, *toRolPermisoVista(&rps[i]))
	}
	return result, nil
}

func (s *rbacService) UpdateRolPermiso(ctx context.Context, req *dto.UpdateRolPermisoRequest) (*dto.RolPermisoVista, error) {
	rp, err := s.repo.RolPermiso.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolPermisoNotFound
		}
		return nil, err
	}

	if _, err := s.repo.Rol.GetByID(ctx, req.RolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Permiso.GetByID(ctx, req.PermisoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermisoNotFound
		}
		return nil, err
	}

	rp.RolID = req.RolID
	rp.PermisoID = req.PermisoID
	rp.Rol = nil
	rp.Permiso = nil

	if err := s.repo.RolPermiso.Update(ctx, rp); err != nil {
		s.logger.Error("actualizando asignación rol-permiso", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	actualizado, err := s.repo.RolPermiso.GetByID(ctx, rp.ID)
	if err != nil {
		return nil, err
	}
	return toRolPermisoVista(actualizado), nil
}

func (s *rbacService) DeleteRolPermiso(ctx context.Context, id int64) error {
	if _, err := s.repo.RolPermiso.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRolPermisoNotFound
		}
		return err
	}
	return s.repo.RolPermiso.Delete(ctx, id)
}

// ── Mapeadores ──

func toRolResponse(r *model.Rol) *dto.RolResponse {
	return &dto.RolResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}
}

func toPermisoResponse(p *model.Permiso) *dto.PermisoResponse {
	return &dto.PermisoResponse{ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion}
}

func toUsuarioRolVista(ur *model.UsuarioRol) *dto.UsuarioRolVista {
	vista := &dto.UsuarioRolVista{ID: ur.ID, UsuarioID: ur.UsuarioID, RolID: ur.RolID}
	if ur.Usuario != nil {
		vista.Usuario = ur.Usuario.Username
	}
	if ur.Rol != nil {
		vista.Rol = ur.Rol.Nombre
	}
	return vista
}

func toRolPermisoVista(rp *model.RolPermiso) *dto.RolPermisoVista {
	vista := &dto.RolPermisoVista{ID: rp.ID, RolID: rp.RolID, PermisoID: rp.PermisoID}
	if rp.Rol != nil {
		vista.Rol = rp.Rol.Nombre
	}
	if rp.Permiso != nil {
		vista.Permiso = rp.Permiso.Nombre
	}
	return vista
}
