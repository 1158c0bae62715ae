package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// RolRepository acceso a datos de roles
type RolRepository interface {
	Create(ctx context.Context, rol *model.Rol) error
	GetByID(ctx context.Context, id int64) (*model.Rol, error)
	GetByNombre(ctx context.Context, nombre string) (*model.Rol, error)
	List(ctx context.Context) ([]model.Rol, error)
	Update(ctx context.Context, rol *model.Rol) error
	Delete(ctx context.Context, id int64) error
}

type rolRepo struct {
	db *gorm.DB
}

// NewRolRepo crea una instancia de RolRepository
func NewRolRepo(db *gorm.DB) RolRepository {
	return &rolRepo{db: db}
}

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) GetByID(ctx context.Context, id int64) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Preload("Permisos").Where("id = ?", id).First(&rol).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) GetByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Preload("Permisos").Where("nombre = ?", nombre).First(&rol).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Preload("Permisos").Order("nombre ASC").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) Update(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Omit("Permisos").Save(rol).Error
}

func (r *rolRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Rol{}, id).Error
}

// PermisoRepository acceso a datos de permisos
type PermisoRepository interface {
	Create(ctx context.Context, permiso *model.Permiso) error
	GetByID(ctx context.Context, id int64) (*model.Permiso, error)
	List(ctx context.Context) ([]model.Permiso, error)
	Update(ctx context.Context, permiso *model.Permiso) error
	Delete(ctx context.Context, id int64) error
}

type permisoRepo struct {
	db *gorm.DB
}

// NewPermisoRepo crea una instancia de PermisoRepository
func NewPermisoRepo(db *gorm.DB) PermisoRepository {
	return &permisoRepo{db: db}
}

func (r *permisoRepo) Create(ctx context.Context, permiso *model.Permiso) error {
	return r.db.WithContext(ctx).Create(permiso).Error
}

func (r *permisoRepo) GetByID(ctx context.Context, id int64) (*model.Permiso, error) {
	var permiso model.Permiso
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&permiso).Error
	if err != nil {
		return nil, err
	}
	return &permiso, nil
}

func (r *permisoRepo) List(ctx context.Context) ([]model.Permiso, error) {
	var permisos []model.Permiso
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&permisos).Error
	return permisos, err
}

func (r *permisoRepo) Update(ctx context.Context, permiso *model.Permiso) error {
	return r.db.WithContext(ctx).Save(permiso).Error
}

func (r *permisoRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Permiso{}, id).Error
}

// UsuarioRolRepository acceso a la asociación usuario × rol
type UsuarioRolRepository interface {
	Create(ctx context.Context, ur *model.UsuarioRol) error
	GetByID(ctx context.Context, id int64) (*model.UsuarioRol, error)
	List(ctx context.Context) ([]model.UsuarioRol, error)
	Update(ctx context.Context, ur *model.UsuarioRol) error
	Delete(ctx context.Context, id int64) error
}

type usuarioRolRepo struct {
	db *gorm.DB
}

// NewUsuarioRolRepo crea una instancia de UsuarioRolRepository
func NewUsuarioRolRepo(db *gorm.DB) UsuarioRolRepository {
	return &usuarioRolRepo{db: db}
}

func (r *usuarioRolRepo) Create(ctx context.Context, ur *model.UsuarioRol) error {
	return r.db.WithContext(ctx).Create(ur).Error
}

func (r *usuarioRolRepo) GetByID(ctx context.Context, id int64) (*model.UsuarioRol, error) {
	var ur model.UsuarioRol
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Rol").
		Where("id = ?", id).
		First(&ur).Error
	if err != nil {
		return nil, err
	}
	return &ur, nil
}

func (r *usuarioRolRepo) List(ctx context.Context) ([]model.UsuarioRol, error) {
	var urs []model.UsuarioRol
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Rol").
		Order("id ASC").
		Find(&urs).Error
	return urs, err
}

func (r *usuarioRolRepo) Update(ctx context.Context, ur *model.UsuarioRol) error {
	return r.db.WithContext(ctx).Save(ur).Error
}

func (r *usuarioRolRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.UsuarioRol{}, id).Error
}

// RolPermisoRepository acceso a la asociación rol × permiso
type RolPermisoRepository interface {
	Create(ctx context.Context, rp *model.RolPermiso) error
	GetByID(ctx context.Context, id int64) (*model.RolPermiso, error)
	List(ctx context.Context) ([]model.RolPermiso, error)
	Update(ctx context.Context, rp *model.RolPermiso) error
	Delete(ctx context.Context, id int64) error
}

type rolPermisoRepo struct {
	db *gorm.DB
}

// NewRolPermisoRepo crea una instancia de RolPermisoRepository
func NewRolPermisoRepo(db *gorm.DB) RolPermisoRepository {
	return &rolPermisoRepo{db: db}
}

func (r *rolPermisoRepo) Create(ctx context.Context, rp *model.RolPermiso) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *rolPermisoRepo) GetByID(ctx context.Context, id int64) (*model.RolPermiso, error) {
	var rp model.RolPermiso
	err := r.db.WithContext(ctx).
		Preload("Rol").
		Preload("Permiso").
		Where("id = ?", id).
		First(&rp).Error
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *rolPermisoRepo) List(ctx context.Context) ([]model.RolPermiso, error) {
	var rps []model.RolPermiso
	err := r.db.WithContext(ctx).
		Preload("Rol").
		Preload("Permiso").
		Order("id ASC").
		Find(&rps).Error
	return rps, err
}

func (r *rolPermisoRepo) Update(ctx context.Context, rp *model.RolPermiso) error {
	return r.db.WithContext(ctx).Save(rp).Error
}

func (r *rolPermisoRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.RolPermiso{}, id).Error
}
