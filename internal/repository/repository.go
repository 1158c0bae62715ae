package repository

import "gorm.io/gorm"

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Usuario                UsuarioRepository
	Rol                    RolRepository
	Permiso                PermisoRepository
	UsuarioRol             UsuarioRolRepository
	RolPermiso             RolPermisoRepository
	Aula                   AulaRepository
	Profesor               ProfesorRepository
	Trayecto               TrayectoRepository
	UnidadCurricular       UnidadCurricularRepository
	TrayectoUnidad         TrayectoUnidadRepository
	BloqueHorario          BloqueHorarioRepository
	DiaSemana              DiaSemanaRepository
	DisponibilidadProfesor DisponibilidadProfesorRepository
	DisponibilidadAula     DisponibilidadAulaRepository
	Horario                HorarioRepository
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:                NewUsuarioRepo(db),
		Rol:                    NewRolRepo(db),
		Permiso:                NewPermisoRepo(db),
		UsuarioRol:             NewUsuarioRolRepo(db),
		RolPermiso:             NewRolPermisoRepo(db),
		Aula:                   NewAulaRepo(db),
		Profesor:               NewProfesorRepo(db),
		Trayecto:               NewTrayectoRepo(db),
		UnidadCurricular:       NewUnidadCurricularRepo(db),
		TrayectoUnidad:         NewTrayectoUnidadRepo(db),
		BloqueHorario:          NewBloqueHorarioRepo(db),
		DiaSemana:              NewDiaSemanaRepo(db),
		DisponibilidadProfesor: NewDisponibilidadProfesorRepo(db),
		DisponibilidadAula:     NewDisponibilidadAulaRepo(db),
		Horario:                NewHorarioRepo(db),
	}
}
