package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/api/handler"
	"github.com/wolf0dev/gestion-horario-sub000/internal/api/middleware"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
)

// Permisos del sistema, sembrados por las migraciones
const (
	permGestionHorarios       = "gestion_horarios"
	permConsultarHorarios     = "consultar_horarios"
	permGestionUsuarios       = "gestion_usuarios"
	permGestionRoles          = "gestion_roles"
	permGestionAulas          = "gestion_aulas"
	permGestionProfesores     = "gestion_profesores"
	permGestionAcademica      = "gestion_academica"
	permGestionDisponibilidad = "gestion_disponibilidad"
)

// puedeVer lectura de los catálogos que alimentan la cuadrícula: basta
// cualquiera de consultar, gestionar horarios o gestionar el propio recurso.
func puedeVer(extra ...string) gin.HandlerFunc {
	permisos := append([]string{permConsultarHorarios, permGestionHorarios}, extra...)
	return middleware.Authorize(middleware.Requisitos{Permisos: permisos})
}

func puedeGestionar(permiso string) gin.HandlerFunc {
	return middleware.Authorize(middleware.Requisitos{Permisos: []string{permiso}})
}

// Setup inicializa y devuelve el motor de rutas
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Verificación de salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Autenticación (login y registro públicos, con límite de intentos).
		// El registro asigna siempre el rol usuario_asignado.
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/registro", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Registro)
		}

		// Rutas autenticadas
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// Usuarios
			usuarios := authorized.Group("/usuarios")
			{
				usuarios.GET("/perfil", h.Usuario.Perfil)
				usuarios.GET("/todos", puedeGestionar(permGestionUsuarios), h.Usuario.Todos)
				usuarios.GET("/:id", puedeGestionar(permGestionUsuarios), h.Usuario.PorID)
				usuarios.PUT("/actualizar", puedeGestionar(permGestionUsuarios), h.Usuario.Actualizar)
				usuarios.DELETE("/eliminar/:id", puedeGestionar(permGestionUsuarios), h.Usuario.Eliminar)
			}

			// Grafo RBAC
			roles := authorized.Group("/roles", puedeGestionar(permGestionRoles))
			{
				roles.GET("/todos", h.RBAC.TodosRoles)
				roles.POST("/registro", h.RBAC.RegistroRol)
				roles.PUT("/actualizar", h.RBAC.ActualizarRol)
				roles.DELETE("/eliminar/:id", h.RBAC.EliminarRol)
			}
			permisos := authorized.Group("/permisos", puedeGestionar(permGestionRoles))
			{
				permisos.GET("/todos", h.RBAC.TodosPermisos)
				permisos.POST("/registro", h.RBAC.RegistroPermiso)
				permisos.PUT("/actualizar", h.RBAC.ActualizarPermiso)
				permisos.DELETE("/eliminar/:id", h.RBAC.EliminarPermiso)
			}
			usuariosRoles := authorized.Group("/usuarios-roles", puedeGestionar(permGestionRoles))
			{
				usuariosRoles.GET("/vista", h.RBAC.VistaUsuarioRoles)
				usuariosRoles.POST("/registro", h.RBAC.RegistroUsuarioRol)
				usuariosRoles.PUT("/actualizar", h.RBAC.ActualizarUsuarioRol)
				usuariosRoles.DELETE("/eliminar/:id", h.RBAC.EliminarUsuarioRol)
			}
			rolesPermisos := authorized.Group("/roles-permisos", puedeGestionar(permGestionRoles))
			{
				rolesPermisos.GET("/vista", h.RBAC.VistaRolPermisos)
				rolesPermisos.POST("/registro", h.RBAC.RegistroRolPermiso)
				rolesPermisos.PUT("/actualizar", h.RBAC.ActualizarRolPermiso)
				rolesPermisos.DELETE("/eliminar/:id", h.RBAC.EliminarRolPermiso)
			}

			// Aulas
			aulas := authorized.Group("/aulas")
			{
				aulas.GET("/todas", puedeVer(permGestionAulas), h.Aula.Todas)
				aulas.POST("/registro", puedeGestionar(permGestionAulas), h.Aula.Registro)
				aulas.PUT("/actualizar", puedeGestionar(permGestionAulas), h.Aula.Actualizar)
				aulas.DELETE("/eliminar/:id", puedeGestionar(permGestionAulas), h.Aula.Eliminar)
			}

			// Profesores
			profesores := authorized.Group("/profesores")
			{
				profesores.GET("/todos", puedeVer(permGestionProfesores), h.Profesor.Todos)
				profesores.POST("/registro", puedeGestionar(permGestionProfesores), h.Profesor.Registro)
				profesores.PUT("/actualizar", puedeGestionar(permGestionProfesores), h.Profesor.Actualizar)
				profesores.DELETE("/eliminar/:id", puedeGestionar(permGestionProfesores), h.Profesor.Eliminar)
			}

			// Malla académica
			trayectos := authorized.Group("/trayectos")
			{
				trayectos.GET("/todos", puedeVer(permGestionAcademica), h.Academico.TodosTrayectos)
				trayectos.POST("/registro", puedeGestionar(permGestionAcademica), h.Academico.RegistroTrayecto)
				trayectos.PUT("/actualizar", puedeGestionar(permGestionAcademica), h.Academico.ActualizarTrayecto)
				trayectos.DELETE("/eliminar/:id", puedeGestionar(permGestionAcademica), h.Academico.EliminarTrayecto)
			}
			unidades := authorized.Group("/unidades-curriculares")
			{
				unidades.GET("/todas", puedeVer(permGestionAcademica), h.Academico.TodasUnidades)
				unidades.POST("/registro", puedeGestionar(permGestionAcademica), h.Academico.RegistroUnidad)
				unidades.PUT("/actualizar", puedeGestionar(permGestionAcademica), h.Academico.ActualizarUnidad)
				unidades.DELETE("/eliminar/:id", puedeGestionar(permGestionAcademica), h.Academico.EliminarUnidad)
			}
			trayectosUnidades := authorized.Group("/trayectos-unidades")
			{
				trayectosUnidades.GET("/vista", puedeVer(permGestionAcademica), h.Academico.VistaTrayectoUnidades)
				trayectosUnidades.POST("/registro", puedeGestionar(permGestionAcademica), h.Academico.RegistroTrayectoUnidad)
				trayectosUnidades.PUT("/actualizar", puedeGestionar(permGestionAcademica), h.Academico.ActualizarTrayectoUnidad)
				trayectosUnidades.DELETE("/eliminar/:id", puedeGestionar(permGestionAcademica), h.Academico.EliminarTrayectoUnidad)
			}

			// Eje de tiempo
			bloques := authorized.Group("/bloques")
			{
				bloques.GET("/todos", puedeVer(), h.Tiempo.TodosBloques)
				bloques.POST("/registro", puedeGestionar(permGestionHorarios), h.Tiempo.RegistroBloque)
				bloques.PUT("/actualizar", puedeGestionar(permGestionHorarios), h.Tiempo.ActualizarBloque)
				bloques.DELETE("/eliminar/:id", puedeGestionar(permGestionHorarios), h.Tiempo.EliminarBloque)
			}
			dias := authorized.Group("/dias")
			{
				dias.GET("/todos", puedeVer(), h.Tiempo.TodosDias)
				dias.POST("/registro", puedeGestionar(permGestionHorarios), h.Tiempo.RegistroDia)
				dias.PUT("/actualizar", puedeGestionar(permGestionHorarios), h.Tiempo.ActualizarDia)
				dias.DELETE("/eliminar/:id", puedeGestionar(permGestionHorarios), h.Tiempo.EliminarDia)
			}

			// Disponibilidad
			dispProfesores := authorized.Group("/disponibilidad-profesores")
			{
				dispProfesores.GET("/vista", puedeVer(permGestionDisponibilidad), h.Disponibilidad.VistaProfesores)
				dispProfesores.POST("/registro", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.RegistroProfesor)
				dispProfesores.PUT("/actualizar", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.ActualizarProfesor)
				dispProfesores.DELETE("/eliminar/:id", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.EliminarProfesor)
			}
			dispAulas := authorized.Group("/disponibilidad-aulas")
			{
				dispAulas.GET("/vista", puedeVer(permGestionDisponibilidad), h.Disponibilidad.VistaAulas)
				dispAulas.POST("/registro", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.RegistroAula)
				dispAulas.PUT("/actualizar", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.ActualizarAula)
				dispAulas.DELETE("/eliminar/:id", puedeGestionar(permGestionDisponibilidad), h.Disponibilidad.EliminarAula)
			}

			// Horarios
			horarios := authorized.Group("/horarios")
			{
				horarios.GET("/vista", puedeVer(), h.Horario.Vista)
				horarios.GET("/aulas-disponibles", puedeVer(), h.Horario.AulasDisponibles)
				horarios.POST("/registro", puedeGestionar(permGestionHorarios), h.Horario.Registro)
				horarios.PUT("/actualizar", puedeGestionar(permGestionHorarios), h.Horario.Actualizar)
				horarios.DELETE("/eliminar/:id", puedeGestionar(permGestionHorarios), h.Horario.Eliminar)
				horarios.GET("/exportar/xlsx/:id", puedeVer(), h.Export.XLSX)
				horarios.GET("/exportar/ics/:id", puedeVer(), h.Export.ICS)
			}
		}
	}

	return r
}
