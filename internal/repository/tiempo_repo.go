package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// BloqueHorarioRepository acceso a datos de bloques horarios
type BloqueHorarioRepository interface {
	Create(ctx context.Context, bloque *model.BloqueHorario) error
	GetByID(ctx context.Context, id int64) (*model.BloqueHorario, error)
	List(ctx context.Context) ([]model.BloqueHorario, error)
	Update(ctx context.Context, bloque *model.BloqueHorario) error
	Delete(ctx context.Context, id int64) error
}

type bloqueHorarioRepo struct {
	db *gorm.DB
}

// NewBloqueHorarioRepo crea una instancia de BloqueHorarioRepository
func NewBloqueHorarioRepo(db *gorm.DB) BloqueHorarioRepository {
	return &bloqueHorarioRepo{db: db}
}

func (r *bloqueHorarioRepo) Create(ctx context.Context, bloque *model.BloqueHorario) error {
	return r.db.WithContext(ctx).Create(bloque).Error
}

func (r *bloqueHorarioRepo) GetByID(ctx context.Context, id int64) (*model.BloqueHorario, error) {
	var bloque model.BloqueHorario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bloque).Error
	if err != nil {
		return nil, err
	}
	return &bloque, nil
}

func (r *bloqueHorarioRepo) List(ctx context.Context) ([]model.BloqueHorario, error) {
	var bloques []model.BloqueHorario
	err := r.db.WithContext(ctx).Order("hora_inicio ASC").Find(&bloques).Error
	return bloques, err
}

func (r *bloqueHorarioRepo) Update(ctx context.Context, bloque *model.BloqueHorario) error {
	return r.db.WithContext(ctx).Save(bloque).Error
}

func (r *bloqueHorarioRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.BloqueHorario{}, id).Error
}

// DiaSemanaRepository acceso a datos de días de la semana
type DiaSemanaRepository interface {
	Create(ctx context.Context, dia *model.DiaSemana) error
	GetByID(ctx context.Context, id int64) (*model.DiaSemana, error)
	List(ctx context.Context) ([]model.DiaSemana, error)
	Update(ctx context.Context, dia *model.DiaSemana) error
	Delete(ctx context.Context, id int64) error
}

type diaSemanaRepo struct {
	db *gorm.DB
}

// NewDiaSemanaRepo crea una instancia de DiaSemanaRepository
func NewDiaSemanaRepo(db *gorm.DB) DiaSemanaRepository {
	return &diaSemanaRepo{db: db}
}

func (r *diaSemanaRepo) Create(ctx context.Context, dia *model.DiaSemana) error {
	return r.db.WithContext(ctx).Create(dia).Error
}

func (r *diaSemanaRepo) GetByID(ctx context.Context, id int64) (*model.DiaSemana, error) {
	var dia model.DiaSemana
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dia).Error
	if err != nil {
		return nil, err
	}
	return &dia, nil
}

func (r *diaSemanaRepo) List(ctx context.Context) ([]model.DiaSemana, error) {
	var dias []model.DiaSemana
	err := r.db.WithContext(ctx).Order("id ASC").Find(&dias).Error
	return dias, err
}

func (r *diaSemanaRepo) Update(ctx context.Context, dia *model.DiaSemana) error {
	return r.db.WithContext(ctx).Save(dia).Error
}

func (r *diaSemanaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.DiaSemana{}, id).Error
}
