package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// TrayectoRepository acceso a datos de trayectos
type TrayectoRepository interface {
	Create(ctx context.Context, trayecto *model.Trayecto) error
	GetByID(ctx context.Context, id int64) (*model.Trayecto, error)
	List(ctx context.Context) ([]model.Trayecto, error)
	Update(ctx context.Context, trayecto *model.Trayecto) error
	Delete(ctx context.Context, id int64) error
}

type trayectoRepo struct {
	db *gorm.DB
}

// NewTrayectoRepo crea una instancia de TrayectoRepository
func NewTrayectoRepo(db *gorm.DB) TrayectoRepository {
	return &trayectoRepo{db: db}
}

func (r *trayectoRepo) Create(ctx context.Context, trayecto *model.Trayecto) error {
	return r.db.WithContext(ctx).Create(trayecto).Error
}

func (r *trayectoRepo) GetByID(ctx context.Context, id int64) (*model.Trayecto, error) {
	var trayecto model.Trayecto
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trayecto).Error
	if err != nil {
		return nil, err
	}
	return &trayecto, nil
}

func (r *trayectoRepo) List(ctx context.Context) ([]model.Trayecto, error) {
	var trayectos []model.Trayecto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&trayectos).Error
	return trayectos, err
}

func (r *trayectoRepo) Update(ctx context.Context, trayecto *model.Trayecto) error {
	return r.db.WithContext(ctx).Save(trayecto).Error
}

func (r *trayectoRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Trayecto{}, id).Error
}

// UnidadCurricularRepository acceso a datos de unidades curriculares
type UnidadCurricularRepository interface {
	Create(ctx context.Context, unidad *model.UnidadCurricular) error
	GetByID(ctx context.Context, id int64) (*model.UnidadCurricular, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.UnidadCurricular, error)
	List(ctx context.Context) ([]model.UnidadCurricular, error)
	Update(ctx context.Context, unidad *model.UnidadCurricular) error
	Delete(ctx context.Context, id int64) error
}

type unidadCurricularRepo struct {
	db *gorm.DB
}

// NewUnidadCurricularRepo crea una instancia de UnidadCurricularRepository
func NewUnidadCurricularRepo(db *gorm.DB) UnidadCurricularRepository {
	return &unidadCurricularRepo{db: db}
}

func (r *unidadCurricularRepo) Create(ctx context.Context, unidad *model.UnidadCurricular) error {
	return r.db.WithContext(ctx).Create(unidad).Error
}

func (r *unidadCurricularRepo) GetByID(ctx context.Context, id int64) (*model.UnidadCurricular, error) {
	var unidad model.UnidadCurricular
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&unidad).Error
	if err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadCurricularRepo) GetByCodigo(ctx context.Context, codigo string) (*model.UnidadCurricular, error) {
	var unidad model.UnidadCurricular
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&unidad).Error
	if err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadCurricularRepo) List(ctx context.Context) ([]model.UnidadCurricular, error) {
	var unidades []model.UnidadCurricular
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&unidades).Error
	return unidades, err
}

func (r *unidadCurricularRepo) Update(ctx context.Context, unidad *model.UnidadCurricular) error {
	return r.db.WithContext(ctx).Save(unidad).Error
}

func (r *unidadCurricularRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.UnidadCurricular{}, id).Error
}

// TrayectoUnidadRepository acceso a la asociación trayecto × unidad curricular
type TrayectoUnidadRepository interface {
	Create(ctx context.Context, tu *model.TrayectoUnidadCurricular) error
	GetByID(ctx context.Context, id int64) (*model.TrayectoUnidadCurricular, error)
	List(ctx context.Context) ([]model.TrayectoUnidadCurricular, error)
	ListByTrayecto(ctx context.Context, trayectoID int64) ([]model.TrayectoUnidadCurricular, error)
	Update(ctx context.Context, tu *model.TrayectoUnidadCurricular) error
	Delete(ctx context.Context, id int64) error
}

type trayectoUnidadRepo struct {
	db *gorm.DB
}

// NewTrayectoUnidadRepo crea una instancia de TrayectoUnidadRepository
func NewTrayectoUnidadRepo(db *gorm.DB) TrayectoUnidadRepository {
	return &trayectoUnidadRepo{db: db}
}

func (r *trayectoUnidadRepo) Create(ctx context.Context, tu *model.TrayectoUnidadCurricular) error {
	return r.db.WithContext(ctx).Create(tu).Error
}

func (r *trayectoUnidadRepo) GetByID(ctx context.Context, id int64) (*model.TrayectoUnidadCurricular, error) {
	var tu model.TrayectoUnidadCurricular
	err := r.db.WithContext(ctx).
		Preload("Trayecto").
		Preload("UnidadCurricular").
		Where("id = ?", id).
		First(&tu).Error
	if err != nil {
		return nil, err
	}
	return &tu, nil
}

func (r *trayectoUnidadRepo) List(ctx context.Context) ([]model.TrayectoUnidadCurricular, error) {
	var tus []model.TrayectoUnidadCurricular
	err := r.db.WithContext(ctx).
		Preload("Trayecto").
		Preload("UnidadCurricular").
		Order("id ASC").
		Find(&tus).Error
	return tus, err
}

func (r *trayectoUnidadRepo) ListByTrayecto(ctx context.Context, trayectoID int64) ([]model.TrayectoUnidadCurricular, error) {
	var tus []model.TrayectoUnidadCurricular
	err := r.db.WithContext(ctx).
		Preload("Trayecto").
		Preload("UnidadCurricular").
		Where("trayecto_id = ?", trayectoID).
		Order("id ASC").
		Find(&tus).Error
	return tus, err
}

func (r *trayectoUnidadRepo) Update(ctx context.Context, tu *model.TrayectoUnidadCurricular) error {
	return r.db.WithContext(ctx).Save(tu).Error
}

func (r *trayectoUnidadRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.TrayectoUnidadCurricular{}, id).Error
}
