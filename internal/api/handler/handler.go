package handler

import "github.com/wolf0dev/gestion-horario-sub000/internal/service"

// Handler agregado de todos los handlers HTTP
type Handler struct {
	Auth           *AuthHandler
	Usuario        *UsuarioHandler
	RBAC           *RBACHandler
	Aula           *AulaHandler
	Profesor       *ProfesorHandler
	Academico      *AcademicoHandler
	Tiempo         *TiempoHandler
	Disponibilidad *DisponibilidadHandler
	Horario        *HorarioHandler
	Export         *ExportHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		Usuario:        NewUsuarioHandler(svc.Usuario),
		RBAC:           NewRBACHandler(svc.RBAC),
		Aula:           NewAulaHandler(svc.Aula),
		Profesor:       NewProfesorHandler(svc.Profesor),
		Academico:      NewAcademicoHandler(svc.Academico),
		Tiempo:         NewTiempoHandler(svc.Tiempo),
		Disponibilidad: NewDisponibilidadHandler(svc.Disponibilidad),
		Horario:        NewHorarioHandler(svc.Horario),
		Export:         NewExportHandler(svc.Export),
	}
}
