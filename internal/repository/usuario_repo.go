package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// UsuarioRepository acceso a datos de usuarios
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	// GetByID carga el usuario con sus roles y los permisos de cada rol.
	GetByID(ctx context.Context, id int64) (*model.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, usuario *model.Usuario) error
	Delete(ctx context.Context, id int64) error
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo crea una instancia de UsuarioRepository
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Roles.Permisos").
		Where("id = ?", id).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Roles.Permisos").
		Where("username = ?", username).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Roles.Permisos").
		Order("username ASC").
		Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&total).Error
	return total, err
}

func (r *usuarioRepo) Update(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Omit("Roles").Save(usuario).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, id).Error
}
