package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// DisponibilidadProfesorRepository acceso a la disponibilidad de profesores
type DisponibilidadProfesorRepository interface {
	Create(ctx context.Context, d *model.DisponibilidadProfesor) error
	GetByID(ctx context.Context, id int64) (*model.DisponibilidadProfesor, error)
	// GetBySlot busca el registro exacto profesor × día × bloque.
	GetBySlot(ctx context.Context, profesorID, diaID, bloqueID int64) (*model.DisponibilidadProfesor, error)
	List(ctx context.Context) ([]model.DisponibilidadProfesor, error)
	Update(ctx context.Context, d *model.DisponibilidadProfesor) error
	Delete(ctx context.Context, id int64) error
}

type disponibilidadProfesorRepo struct {
	db *gorm.DB
}

// NewDisponibilidadProfesorRepo crea una instancia del repositorio
func NewDisponibilidadProfesorRepo(db *gorm.DB) DisponibilidadProfesorRepository {
	return &disponibilidadProfesorRepo{db: db}
}

func (r *disponibilidadProfesorRepo) Create(ctx context.Context, d *model.DisponibilidadProfesor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *disponibilidadProfesorRepo) GetByID(ctx context.Context, id int64) (*model.DisponibilidadProfesor, error) {
	var d model.DisponibilidadProfesor
	err := r.db.WithContext(ctx).
		Preload("Profesor").
		Preload("DiaSemana").
		Preload("BloqueHorario").
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disponibilidadProfesorRepo) GetBySlot(ctx context.Context, profesorID, diaID, bloqueID int64) (*model.DisponibilidadProfesor, error) {
	var d model.DisponibilidadProfesor
	err := r.db.WithContext(ctx).
		Where("profesor_id = ? AND dia_semana_id = ? AND bloque_horario_id = ?", profesorID, diaID, bloqueID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disponibilidadProfesorRepo) List(ctx context.Context) ([]model.DisponibilidadProfesor, error) {
	var ds []model.DisponibilidadProfesor
	err := r.db.WithContext(ctx).
		Preload("Profesor").
		Preload("DiaSemana").
		Preload("BloqueHorario").
		Order("id ASC").
		Find(&ds).Error
	return ds, err
}

func (r *disponibilidadProfesorRepo) Update(ctx context.Context, d *model.DisponibilidadProfesor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *disponibilidadProfesorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.DisponibilidadProfesor{}, id).Error
}

// DisponibilidadAulaRepository acceso a la disponibilidad de aulas
type DisponibilidadAulaRepository interface {
	Create(ctx context.Context, d *model.DisponibilidadAula) error
	GetByID(ctx context.Context, id int64) (*model.DisponibilidadAula, error)
	GetBySlot(ctx context.Context, aulaID, diaID, bloqueID int64) (*model.DisponibilidadAula, error)
	// ListBySlot devuelve todas las filas del día × bloque indicado, para
	// calcular las aulas candidatas de una asignación.
	ListBySlot(ctx context.Context, diaID, bloqueID int64) ([]model.DisponibilidadAula, error)
	List(ctx context.Context) ([]model.DisponibilidadAula, error)
	Update(ctx context.Context, d *model.DisponibilidadAula) error
	Delete(ctx context.Context, id int64) error
}

type disponibilidadAulaRepo struct {
	db *gorm.DB
}

// NewDisponibilidadAulaRepo crea una instancia del repositorio
func NewDisponibilidadAulaRepo(db *gorm.DB) DisponibilidadAulaRepository {
	return &disponibilidadAulaRepo{db: db}
}

func (r *disponibilidadAulaRepo) Create(ctx context.Context, d *model.DisponibilidadAula) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *disponibilidadAulaRepo) GetByID(ctx context.Context, id int64) (*model.DisponibilidadAula, error) {
	var d model.DisponibilidadAula
	err := r.db.WithContext(ctx).
		Preload("Aula").
		Preload("DiaSemana").
		Preload("BloqueHorario").
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disponibilidadAulaRepo) GetBySlot(ctx context.Context, aulaID, diaID, bloqueID int64) (*model.DisponibilidadAula, error) {
	var d model.DisponibilidadAula
	err := r.db.WithContext(ctx).
		Where("aula_id = ? AND dia_semana_id = ? AND bloque_horario_id = ?", aulaID, diaID, bloqueID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disponibilidadAulaRepo) ListBySlot(ctx context.Context, diaID, bloqueID int64) ([]model.DisponibilidadAula, error) {
	var ds []model.DisponibilidadAula
	err := r.db.WithContext(ctx).
		Preload("Aula").
		Where("dia_semana_id = ? AND bloque_horario_id = ?", diaID, bloqueID).
		Find(&ds).Error
	return ds, err
}

func (r *disponibilidadAulaRepo) List(ctx context.Context) ([]model.DisponibilidadAula, error) {
	var ds []model.DisponibilidadAula
	err := r.db.WithContext(ctx).
		Preload("Aula").
		Preload("DiaSemana").
		Preload("BloqueHorario").
		Order("id ASC").
		Find(&ds).Error
	return ds, err
}

func (r *disponibilidadAulaRepo) Update(ctx context.Context, d *model.DisponibilidadAula) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *disponibilidadAulaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.DisponibilidadAula{}, id).Error
}
