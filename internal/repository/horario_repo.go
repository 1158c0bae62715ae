package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// HorarioRepository acceso a datos de horarios
type HorarioRepository interface {
	Create(ctx context.Context, h *model.Horario) error
	GetByID(ctx context.Context, id int64) (*model.Horario, error)
	List(ctx context.Context) ([]model.Horario, error)
	ListByProfesor(ctx context.Context, profesorID int64) ([]model.Horario, error)
	// FindActivoProfesorSlot busca una asignación activa del profesor en el
	// día × bloque indicado (detección de doble reserva).
	FindActivoProfesorSlot(ctx context.Context, profesorID, diaID, bloqueID int64) (*model.Horario, error)
	// FindActivoAulaSlot busca una asignación activa del aula en el día × bloque.
	FindActivoAulaSlot(ctx context.Context, aulaID, diaID, bloqueID int64) (*model.Horario, error)
	Update(ctx context.Context, h *model.Horario) error
	Delete(ctx context.Context, id int64) error
}

type horarioRepo struct {
	db *gorm.DB
}

// NewHorarioRepo crea una instancia de HorarioRepository
func NewHorarioRepo(db *gorm.DB) HorarioRepository {
	return &horarioRepo{db: db}
}

func (r *horarioRepo) preloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("TrayectoUnidadCurricular").
		Preload("TrayectoUnidadCurricular.Trayecto").
		Preload("TrayectoUnidadCurricular.UnidadCurricular").
		Preload("DiaSemana").
		Preload("BloqueHorario").
		Preload("Aula").
		Preload("Profesor")
}

func (r *horarioRepo) Create(ctx context.Context, h *model.Horario) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *horarioRepo) GetByID(ctx context.Context, id int64) (*model.Horario, error) {
	var h model.Horario
	err := r.preloads(r.db.WithContext(ctx)).Where("id = ?", id).First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepo) List(ctx context.Context) ([]model.Horario, error) {
	var hs []model.Horario
	err := r.preloads(r.db.WithContext(ctx)).Order("id ASC").Find(&hs).Error
	return hs, err
}

func (r *horarioRepo) ListByProfesor(ctx context.Context, profesorID int64) ([]model.Horario, error) {
	var hs []model.Horario
	err := r.preloads(r.db.WithContext(ctx)).
		Where("profesor_id = ?", profesorID).
		Order("id ASC").
		Find(&hs).Error
	return hs, err
}

func (r *horarioRepo) FindActivoProfesorSlot(ctx context.Context, profesorID, diaID, bloqueID int64) (*model.Horario, error) {
	var h model.Horario
	err := r.db.WithContext(ctx).
		Where("profesor_id = ? AND dia_semana_id = ? AND bloque_horario_id = ? AND activo", profesorID, diaID, bloqueID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepo) FindActivoAulaSlot(ctx context.Context, aulaID, diaID, bloqueID int64) (*model.Horario, error) {
	var h model.Horario
	err := r.db.WithContext(ctx).
		Where("aula_id = ? AND dia_semana_id = ? AND bloque_horario_id = ? AND activo", aulaID, diaID, bloqueID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepo) Update(ctx context.Context, h *model.Horario) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *horarioRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Horario{}, id).Error
}
