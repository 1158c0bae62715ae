package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// ProfesorRepository acceso a datos de profesores
type ProfesorRepository interface {
	Create(ctx context.Context, profesor *model.Profesor) error
	GetByID(ctx context.Context, id int64) (*model.Profesor, error)
	GetByCedula(ctx context.Context, cedula string) (*model.Profesor, error)
	List(ctx context.Context) ([]model.Profesor, error)
	Update(ctx context.Context, profesor *model.Profesor) error
	Delete(ctx context.Context, id int64) error
}

type profesorRepo struct {
	db *gorm.DB
}

// NewProfesorRepo crea una instancia de ProfesorRepository
func NewProfesorRepo(db *gorm.DB) ProfesorRepository {
	return &profesorRepo{db: db}
}

func (r *profesorRepo) Create(ctx context.Context, profesor *model.Profesor) error {
	return r.db.WithContext(ctx).Create(profesor).Error
}

func (r *profesorRepo) GetByID(ctx context.Context, id int64) (*model.Profesor, error) {
	var profesor model.Profesor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profesor).Error
	if err != nil {
		return nil, err
	}
	return &profesor, nil
}

func (r *profesorRepo) GetByCedula(ctx context.Context, cedula string) (*model.Profesor, error) {
	var profesor model.Profesor
	err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&profesor).Error
	if err != nil {
		return nil, err
	}
	return &profesor, nil
}

func (r *profesorRepo) List(ctx context.Context) ([]model.Profesor, error) {
	var profesores []model.Profesor
	err := r.db.WithContext(ctx).Order("apellido ASC, nombre ASC").Find(&profesores).Error
	return profesores, err
}

func (r *profesorRepo) Update(ctx context.Context, profesor *model.Profesor) error {
	return r.db.WithContext(ctx).Save(profesor).Error
}

func (r *profesorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Profesor{}, id).Error
}
