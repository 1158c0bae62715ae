package cliente

import (
	"context"
	"fmt"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
)

// Llamadas tipadas por recurso. Todas devuelven los DTO del servidor tal
// cual; el cliente no mantiene caché: cada lectura va al servidor.

// ── Sesión ──

func (c *Cliente) Perfil(ctx context.Context) (*dto.UsuarioResponse, error) {
	var u dto.UsuarioResponse
	if err := c.get(ctx, "/api/usuarios/perfil", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ── Usuarios ──

func (c *Cliente) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	var filas []dto.UsuarioResponse
	return filas, c.get(ctx, "/api/usuarios/todos", &filas)
}

func (c *Cliente) RegistrarUsuario(ctx context.Context, req *dto.RegistroUsuarioRequest) (*dto.UsuarioResponse, error) {
	var u dto.UsuarioResponse
	if err := c.post(ctx, "/api/auth/registro", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Cliente) ActualizarUsuario(ctx context.Context, req *dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	var u dto.UsuarioResponse
	if err := c.put(ctx, "/api/usuarios/actualizar", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Cliente) EliminarUsuario(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/usuarios/eliminar/%d", id))
}

// ── Roles y permisos ──

func (c *Cliente) ListarRoles(ctx context.Context) ([]dto.RolResponse, error) {
	var filas []dto.RolResponse
	return filas, c.get(ctx, "/api/roles/todos", &filas)
}

func (c *Cliente) ListarPermisos(ctx context.Context) ([]dto.PermisoResponse, error) {
	var filas []dto.PermisoResponse
	return filas, c.get(ctx, "/api/permisos/todos", &filas)
}

func (c *Cliente) VistaUsuariosRoles(ctx context.Context) ([]dto.UsuarioRolVista, error) {
	var filas []dto.UsuarioRolVista
	return filas, c.get(ctx, "/api/usuarios-roles/vista", &filas)
}

func (c *Cliente) VistaRolesPermisos(ctx context.Context) ([]dto.RolPermisoVista, error) {
	var filas []dto.RolPermisoVista
	return filas, c.get(ctx, "/api/roles-permisos/vista", &filas)
}

// ── Aulas ──

func (c *Cliente) ListarAulas(ctx context.Context) ([]dto.AulaResponse, error) {
	var filas []dto.AulaResponse
	return filas, c.get(ctx, "/api/aulas/todas", &filas)
}

func (c *Cliente) RegistrarAula(ctx context.Context, req *dto.CreateAulaRequest) (*dto.AulaResponse, error) {
	var a dto.AulaResponse
	if err := c.post(ctx, "/api/aulas/registro", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Cliente) ActualizarAula(ctx context.Context, req *dto.UpdateAulaRequest) (*dto.AulaResponse, error) {
	var a dto.AulaResponse
	if err := c.put(ctx, "/api/aulas/actualizar", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Cliente) EliminarAula(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/aulas/eliminar/%d", id))
}

// ── Profesores ──

func (c *Cliente) ListarProfesores(ctx context.Context) ([]dto.ProfesorResponse, error) {
	var filas []dto.ProfesorResponse
	return filas, c.get(ctx, "/api/profesores/todos", &filas)
}

func (c *Cliente) RegistrarProfesor(ctx context.Context, req *dto.CreateProfesorRequest) (*dto.ProfesorResponse, error) {
	var p dto.ProfesorResponse
	if err := c.post(ctx, "/api/profesores/registro", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Cliente) ActualizarProfesor(ctx context.Context, req *dto.UpdateProfesorRequest) (*dto.ProfesorResponse, error) {
	var p dto.ProfesorResponse
	if err := c.put(ctx, "/api/profesores/actualizar", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Cliente) EliminarProfesor(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/profesores/eliminar/%d", id))
}

// ── Malla académica ──

func (c *Cliente) ListarTrayectos(ctx context.Context) ([]dto.TrayectoResponse, error) {
	var filas []dto.TrayectoResponse
	return filas, c.get(ctx, "/api/trayectos/todos", &filas)
}

func (c *Cliente) ListarUnidades(ctx context.Context) ([]dto.UnidadCurricularResponse, error) {
	var filas []dto.UnidadCurricularResponse
	return filas, c.get(ctx, "/api/unidades-curriculares/todas", &filas)
}

func (c *Cliente) VistaTrayectosUnidades(ctx context.Context) ([]dto.TrayectoUnidadVista, error) {
	var filas []dto.TrayectoUnidadVista
	return filas, c.get(ctx, "/api/trayectos-unidades/vista", &filas)
}

// ── Eje de tiempo ──

func (c *Cliente) ListarBloques(ctx context.Context) ([]dto.BloqueResponse, error) {
	var filas []dto.BloqueResponse
	return filas, c.get(ctx, "/api/bloques/todos", &filas)
}

func (c *Cliente) ListarDias(ctx context.Context) ([]dto.DiaResponse, error) {
	var filas []dto.DiaResponse
	return filas, c.get(ctx, "/api/dias/todos", &filas)
}

// ── Disponibilidad ──

func (c *Cliente) VistaDisponibilidadProfesores(ctx context.Context) ([]dto.DisponibilidadProfesorVista, error) {
	var filas []dto.DisponibilidadProfesorVista
	return filas, c.get(ctx, "/api/disponibilidad-profesores/vista", &filas)
}

func (c *Cliente) VistaDisponibilidadAulas(ctx context.Context) ([]dto.DisponibilidadAulaVista, error) {
	var filas []dto.DisponibilidadAulaVista
	return filas, c.get(ctx, "/api/disponibilidad-aulas/vista", &filas)
}

// ── Horarios ──

// VistaHorarios profesorID cero trae la cuadrícula completa
func (c *Cliente) VistaHorarios(ctx context.Context, profesorID int64) ([]dto.HorarioVista, error) {
	ruta := "/api/horarios/vista"
	if profesorID > 0 {
		ruta = fmt.Sprintf("%s?profesor_id=%d", ruta, profesorID)
	}
	var filas []dto.HorarioVista
	return filas, c.get(ctx, ruta, &filas)
}

func (c *Cliente) AulasDisponibles(ctx context.Context, diaID, bloqueID int64) ([]dto.AulaResponse, error) {
	ruta := fmt.Sprintf("/api/horarios/aulas-disponibles?dia_semana_id=%d&bloque_horario_id=%d", diaID, bloqueID)
	var filas []dto.AulaResponse
	return filas, c.get(ctx, ruta, &filas)
}

func (c *Cliente) CrearHorario(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioVista, error) {
	var v dto.HorarioVista
	if err := c.post(ctx, "/api/horarios/registro", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Cliente) ActualizarHorario(ctx context.Context, req *dto.UpdateHorarioRequest) (*dto.HorarioVista, error) {
	var v dto.HorarioVista
	if err := c.put(ctx, "/api/horarios/actualizar", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Cliente) EliminarHorario(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/horarios/eliminar/%d", id))
}

// ── Exportaciones ──

func (c *Cliente) ExportarXLSX(ctx context.Context, profesorID int64) ([]byte, error) {
	return c.descargar(ctx, fmt.Sprintf("/api/horarios/exportar/xlsx/%d", profesorID))
}

func (c *Cliente) ExportarICS(ctx context.Context, profesorID int64) ([]byte, error) {
	return c.descargar(ctx, fmt.Sprintf("/api/horarios/exportar/ics/%d", profesorID))
}
