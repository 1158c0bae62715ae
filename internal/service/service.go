package service

import (
	"go.uber.org/zap"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Auth           AuthService
	Usuario        UsuarioService
	RBAC           RBACService
	Aula           AulaService
	Profesor       ProfesorService
	Academico      AcademicoService
	Tiempo         TiempoService
	Disponibilidad DisponibilidadService
	Horario        HorarioService
	Export         ExportService
}

// NewService crea el agregado de servicios
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Usuario:        NewUsuarioService(repo, logger),
		RBAC:           NewRBACService(repo, logger),
		Aula:           NewAulaService(repo, logger),
		Profesor:       NewProfesorService(repo, logger),
		Academico:      NewAcademicoService(repo, logger),
		Tiempo:         NewTiempoService(repo, logger),
		Disponibilidad: NewDisponibilidadService(repo, logger),
		Horario:        NewHorarioService(repo, logger),
		Export:         NewExportService(repo, logger),
	}
}
