package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
)

// AulaRepository acceso a datos de aulas
type AulaRepository interface {
	Create(ctx context.Context, aula *model.Aula) error
	GetByID(ctx context.Context, id int64) (*model.Aula, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.Aula, error)
	List(ctx context.Context) ([]model.Aula, error)
	Update(ctx context.Context, aula *model.Aula) error
	Delete(ctx context.Context, id int64) error
}

type aulaRepo struct {
	db *gorm.DB
}

// NewAulaRepo crea una instancia de AulaRepository
func NewAulaRepo(db *gorm.DB) AulaRepository {
	return &aulaRepo{db: db}
}

func (r *aulaRepo) Create(ctx context.Context, aula *model.Aula) error {
	return r.db.WithContext(ctx).Create(aula).Error
}

func (r *aulaRepo) GetByID(ctx context.Context, id int64) (*model.Aula, error) {
	var aula model.Aula
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&aula).Error
	if err != nil {
		return nil, err
	}
	return &aula, nil
}

func (r *aulaRepo) GetByCodigo(ctx context.Context, codigo string) (*model.Aula, error) {
	var aula model.Aula
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&aula).Error
	if err != nil {
		return nil, err
	}
	return &aula, nil
}

func (r *aulaRepo) List(ctx context.Context) ([]model.Aula, error) {
	var aulas []model.Aula
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&aulas).Error
	return aulas, err
}

func (r *aulaRepo) Update(ctx context.Context, aula *model.Aula) error {
	return r.db.WithContext(ctx).Save(aula).Error
}

func (r *aulaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Aula{}, id).Error
}
