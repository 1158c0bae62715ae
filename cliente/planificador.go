package cliente

import (
	"context"
	"errors"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/grid"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
)

// ErrAsignacionBloqueada la verificación previa no permite enviar la
// asignación: el profesor no está disponible o no hay aula candidata. No se
// emite ninguna llamada al servidor en este caso.
var ErrAsignacionBloqueada = errors.New("asignación bloqueada por disponibilidad")

// ErrAulaNoCandidata el aula elegida no pertenece a la lista de candidatas
var ErrAulaNoCandidata = errors.New("el aula elegida no está disponible en ese bloque")

// Planificador flujo de asignación de celdas de la cuadrícula. Las
// verificaciones de disponibilidad son previas y cierran en negativo: un
// error al consultar equivale a no disponible. El servidor revalida de todos
// modos al escribir; esto solo evita envíos destinados al rechazo.
type Planificador struct {
	cli *Cliente
}

func NewPlanificador(cli *Cliente) *Planificador {
	return &Planificador{cli: cli}
}

// PlanAsignacion estado de la verificación previa para una celda concreta
type PlanAsignacion struct {
	ProfesorID      int64
	DiaSemanaID     int64
	BloqueHorarioID int64

	ProfesorDisponible bool
	AulasCandidatas    []dto.AulaResponse
	Unidades           []dto.TrayectoUnidadVista
}

// Ejecutable indica si el plan permite enviar una asignación
func (p *PlanAsignacion) Ejecutable() bool {
	return p.ProfesorDisponible && len(p.AulasCandidatas) > 0
}

// FiltrarPorTrayecto reduce la oferta de unidades al trayecto indicado,
// vacío devuelve todas. Filtro local, no se persiste.
func (p *PlanAsignacion) FiltrarPorTrayecto(trayecto string) []dto.TrayectoUnidadVista {
	if trayecto == "" {
		return p.Unidades
	}
	var filtradas []dto.TrayectoUnidadVista
	for _, u := range p.Unidades {
		if u.Trayecto == trayecto {
			filtradas = append(filtradas, u)
		}
	}
	return filtradas
}

var camposUnidadOferta = []listquery.Campo[dto.TrayectoUnidadVista]{
	{Clave: "unidad_curricular", Valor: func(u dto.TrayectoUnidadVista) any { return u.UnidadCurricular }},
	{Clave: "codigo_unidad", Valor: func(u dto.TrayectoUnidadVista) any { return u.CodigoUnidad }},
	{Clave: "trayecto", Valor: func(u dto.TrayectoUnidadVista) any { return u.Trayecto }},
}

// BuscarUnidades búsqueda por subcadena sobre la oferta de unidades del plan
// (nombre, código y trayecto), ordenada por nombre de unidad. Término vacío
// devuelve la oferta completa ordenada.
func (p *PlanAsignacion) BuscarUnidades(termino string) []dto.TrayectoUnidadVista {
	return listquery.Aplicar(p.Unidades, camposUnidadOferta, listquery.Consulta{
		Termino: termino,
		Orden:   "unidad_curricular",
	}).Filas
}

// Preparar arma el plan para la celda profesor × día × bloque: disponibilidad
// del profesor, aulas candidatas y oferta de unidades. Cada consulta fallida
// cierra en negativo su parte del plan en lugar de propagar el error.
func (p *Planificador) Preparar(ctx context.Context, profesorID, diaID, bloqueID int64) *PlanAsignacion {
	plan := &PlanAsignacion{
		ProfesorID:      profesorID,
		DiaSemanaID:     diaID,
		BloqueHorarioID: bloqueID,
	}

	disponibilidad, err := p.cli.VistaDisponibilidadProfesores(ctx)
	if err == nil {
		for _, d := range disponibilidad {
			if d.ProfesorID == profesorID && d.DiaSemanaID == diaID &&
				d.BloqueHorarioID == bloqueID && d.Disponible {
				plan.ProfesorDisponible = true
				break
			}
		}
	}

	if aulas, err := p.cli.AulasDisponibles(ctx, diaID, bloqueID); err == nil {
		plan.AulasCandidatas = aulas
	}

	if unidades, err := p.cli.VistaTrayectosUnidades(ctx); err == nil {
		plan.Unidades = unidades
	}

	return plan
}

// Confirmar envía la asignación y vuelve a traer la colección completa de
// horarios. Si el plan no es ejecutable, no se emite ninguna llamada.
func (p *Planificador) Confirmar(ctx context.Context, plan *PlanAsignacion, trayectoUnidadID, aulaID int64, color string) ([]dto.HorarioVista, error) {
	if !plan.Ejecutable() {
		return nil, ErrAsignacionBloqueada
	}
	candidata := false
	for _, a := range plan.AulasCandidatas {
		if a.ID == aulaID {
			candidata = true
			break
		}
	}
	if !candidata {
		return nil, ErrAulaNoCandidata
	}

	req := &dto.CreateHorarioRequest{
		TrayectoUnidadCurricularID: trayectoUnidadID,
		DiaSemanaID:                plan.DiaSemanaID,
		BloqueHorarioID:            plan.BloqueHorarioID,
		AulaID:                     aulaID,
		ProfesorID:                 plan.ProfesorID,
		Color:                      color,
	}
	if _, err := p.cli.CrearHorario(ctx, req); err != nil {
		return nil, err
	}
	return p.cli.VistaHorarios(ctx, 0)
}

// Editar modifica una asignación existente. Día, bloque y profesor son
// inmutables: solo cambian unidad, aula, color y estado. Tras el éxito se
// vuelve a traer la colección completa.
func (p *Planificador) Editar(ctx context.Context, actual *dto.HorarioVista, trayectoUnidadID, aulaID int64, color string, activo bool) ([]dto.HorarioVista, error) {
	req := &dto.UpdateHorarioRequest{
		ID:                         actual.ID,
		TrayectoUnidadCurricularID: trayectoUnidadID,
		AulaID:                     aulaID,
		Color:                      color,
		Activo:                     &activo,
	}
	if _, err := p.cli.ActualizarHorario(ctx, req); err != nil {
		return nil, err
	}
	return p.cli.VistaHorarios(ctx, 0)
}

// Eliminar quita una asignación y vuelve a traer la colección completa
func (p *Planificador) Eliminar(ctx context.Context, id int64) ([]dto.HorarioVista, error) {
	if err := p.cli.EliminarHorario(ctx, id); err != nil {
		return nil, err
	}
	return p.cli.VistaHorarios(ctx, 0)
}

// Cuadricula resuelve la malla bloques × días de un profesor a partir del
// estado actual del servidor.
func (p *Planificador) Cuadricula(ctx context.Context, profesorID int64) ([][]grid.Celda, []dto.DiaResponse, []dto.BloqueResponse, error) {
	dias, err := p.cli.ListarDias(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	bloques, err := p.cli.ListarBloques(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	horarios, err := p.cli.VistaHorarios(ctx, profesorID)
	if err != nil {
		return nil, nil, nil, err
	}

	entradas := make([]grid.Entrada, 0, len(horarios))
	for _, h := range horarios {
		entradas = append(entradas, grid.Entrada{
			ID:              h.ID,
			ProfesorID:      h.ProfesorID,
			DiaSemanaID:     h.DiaSemanaID,
			BloqueHorarioID: h.BloqueHorarioID,
			Unidad:          h.UnidadCurricular,
			Trayecto:        h.Trayecto,
			Aula:            h.Aula,
			Color:           h.Color,
			Activa:          h.Activo,
		})
	}

	idsDias := make([]int64, len(dias))
	for i, d := range dias {
		idsDias[i] = d.ID
	}
	idsBloques := make([]int64, len(bloques))
	for i, b := range bloques {
		idsBloques[i] = b.ID
	}

	return grid.Cuadricula(entradas, profesorID, idsDias, idsBloques), dias, bloques, nil
}
