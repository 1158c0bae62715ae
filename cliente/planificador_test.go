package cliente

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/grid"
)

// servidorHorarios doble del servidor para el flujo de asignación: sirve
// las vistas de disponibilidad y registra las escrituras recibidas.
type servidorHorarios struct {
	disponibilidadProfesores []dto.DisponibilidadProfesorVista
	aulasDisponibles         []dto.AulaResponse
	unidades                 []dto.TrayectoUnidadVista
	dias                     []dto.DiaResponse
	bloques                  []dto.BloqueResponse
	horarios                 []dto.HorarioVista

	registros int // POST /api/horarios/registro recibidos
}

func (s *servidorHorarios) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disponibilidad-profesores/vista", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.disponibilidadProfesores)
	})
	mux.HandleFunc("/api/horarios/aulas-disponibles", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.aulasDisponibles)
	})
	mux.HandleFunc("/api/trayectos-unidades/vista", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.unidades)
	})
	mux.HandleFunc("/api/dias/todos", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.dias)
	})
	mux.HandleFunc("/api/bloques/todos", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.bloques)
	})
	mux.HandleFunc("/api/horarios/vista", func(w http.ResponseWriter, r *http.Request) {
		escribirOK(w, s.horarios)
	})
	mux.HandleFunc("/api/horarios/registro", func(w http.ResponseWriter, r *http.Request) {
		s.registros++
		var req dto.CreateHorarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			escribirError(w, http.StatusBadRequest, 10001, "cuerpo ilegible")
			return
		}
		vista := dto.HorarioVista{
			ID:                         int64(len(s.horarios) + 1),
			TrayectoUnidadCurricularID: req.TrayectoUnidadCurricularID,
			UnidadCurricular:           "Programación I",
			Trayecto:                   "Trayecto 1",
			DiaSemanaID:                req.DiaSemanaID,
			BloqueHorarioID:            req.BloqueHorarioID,
			AulaID:                     req.AulaID,
			Aula:                       "A-101",
			ProfesorID:                 req.ProfesorID,
			Color:                      req.Color,
			Activo:                     true,
		}
		s.horarios = append(s.horarios, vista)
		escribirOK(w, vista)
	})
	return mux
}

func planificadorDePrueba(t *testing.T, estado *servidorHorarios) (*Planificador, func()) {
	t.Helper()
	srv := httptest.NewServer(estado.handler())
	return NewPlanificador(NewCliente(srv.URL, nil)), srv.Close
}

func TestPrepararProfesorNoDisponibleBloqueaElEnvio(t *testing.T) {
	estado := &servidorHorarios{
		// hay registro para el profesor pero marcado como no disponible
		disponibilidadProfesores: []dto.DisponibilidadProfesorVista{
			{ProfesorID: 7, DiaSemanaID: 1, BloqueHorarioID: 2, Disponible: false},
		},
		aulasDisponibles: []dto.AulaResponse{{ID: 3, Codigo: "A-101"}},
	}
	planificador, cerrar := planificadorDePrueba(t, estado)
	defer cerrar()

	plan := planificador.Preparar(context.Background(), 7, 1, 2)
	if plan.ProfesorDisponible {
		t.Fatal("disponible=false debe cerrar en negativo")
	}
	if plan.Ejecutable() {
		t.Fatal("el plan no debe ser ejecutable")
	}

	_, err := planificador.Confirmar(context.Background(), plan, 1, 3, "")
	if !errors.Is(err, ErrAsignacionBloqueada) {
		t.Fatalf("se esperaba ErrAsignacionBloqueada, llegó %v", err)
	}
	if estado.registros != 0 {
		t.Fatalf("no debe emitirse ningún registro, hubo %d", estado.registros)
	}
}

func TestPrepararSinRegistroDeDisponibilidadCierraEnNegativo(t *testing.T) {
	estado := &servidorHorarios{
		aulasDisponibles: []dto.AulaResponse{{ID: 3, Codigo: "A-101"}},
	}
	planificador, cerrar := planificadorDePrueba(t, estado)
	defer cerrar()

	plan := planificador.Preparar(context.Background(), 7, 1, 2)
	if plan.ProfesorDisponible {
		t.Fatal("sin registro de disponibilidad el profesor no está disponible")
	}
}

func TestPrepararOfreceSoloLasAulasCandidatas(t *testing.T) {
	estado := &servidorHorarios{
		disponibilidadProfesores: []dto.DisponibilidadProfesorVista{
			{ProfesorID: 7, DiaSemanaID: 1, BloqueHorarioID: 2, Disponible: true},
		},
		aulasDisponibles: []dto.AulaResponse{{ID: 3, Codigo: "A-101"}},
	}
	planificador, cerrar := planificadorDePrueba(t, estado)
	defer cerrar()

	plan := planificador.Preparar(context.Background(), 7, 1, 2)
	if len(plan.AulasCandidatas) != 1 || plan.AulasCandidatas[0].ID != 3 {
		t.Fatalf("se esperaba una sola aula candidata, llegó %+v", plan.AulasCandidatas)
	}

	// el aula 9 no es candidata: el envío se rechaza sin llamar al servidor
	_, err := planificador.Confirmar(context.Background(), plan, 1, 9, "")
	if !errors.Is(err, ErrAulaNoCandidata) {
		t.Fatalf("se esperaba ErrAulaNoCandidata, llegó %v", err)
	}
	if estado.registros != 0 {
		t.Fatalf("no debe emitirse ningún registro, hubo %d", estado.registros)
	}
}

func TestFiltrarUnidadesPorTrayecto(t *testing.T) {
	plan := &PlanAsignacion{Unidades: []dto.TrayectoUnidadVista{
		{ID: 1, Trayecto: "Trayecto 1", UnidadCurricular: "Programación I"},
		{ID: 2, Trayecto: "Trayecto 2", UnidadCurricular: "Programación II"},
		{ID: 3, Trayecto: "Trayecto 1", UnidadCurricular: "Matemática I"},
	}}

	todas := plan.FiltrarPorTrayecto("")
	if len(todas) != 3 {
		t.Fatalf("sin filtro deben ofrecerse todas, llegaron %d", len(todas))
	}
	primero := plan.FiltrarPorTrayecto("Trayecto 1")
	if len(primero) != 2 {
		t.Fatalf("se esperaban 2 unidades del trayecto 1, llegaron %d", len(primero))
	}
	for _, u := range primero {
		if u.Trayecto != "Trayecto 1" {
			t.Fatalf("unidad fuera del trayecto filtrado: %+v", u)
		}
	}
}

func TestBuscarUnidadesPorSubcadena(t *testing.T) {
	plan := &PlanAsignacion{Unidades: []dto.TrayectoUnidadVista{
		{ID: 1, Trayecto: "Trayecto 1", UnidadCurricular: "Programación I", CodigoUnidad: "PRG-1"},
		{ID: 2, Trayecto: "Trayecto 2", UnidadCurricular: "Programación II", CodigoUnidad: "PRG-2"},
		{ID: 3, Trayecto: "Trayecto 1", UnidadCurricular: "Matemática I", CodigoUnidad: "MAT-1"},
	}}

	porNombre := plan.BuscarUnidades("programación")
	if len(porNombre) != 2 {
		t.Fatalf("la búsqueda por nombre debía dar 2 unidades, llegaron %d", len(porNombre))
	}
	porCodigo := plan.BuscarUnidades("mat-1")
	if len(porCodigo) != 1 || porCodigo[0].ID != 3 {
		t.Fatalf("la búsqueda por código debía dar la unidad 3, llegó %+v", porCodigo)
	}
	todas := plan.BuscarUnidades("")
	if len(todas) != 3 || todas[0].UnidadCurricular != "Matemática I" {
		t.Fatalf("término vacío debía dar la oferta completa ordenada por nombre, llegó %+v", todas)
	}
}

func TestAsignacionExtremoAExtremo(t *testing.T) {
	estado := &servidorHorarios{
		disponibilidadProfesores: []dto.DisponibilidadProfesorVista{
			{ProfesorID: 7, DiaSemanaID: 1, BloqueHorarioID: 2, Disponible: true},
		},
		aulasDisponibles: []dto.AulaResponse{{ID: 3, Codigo: "A-101"}},
		unidades: []dto.TrayectoUnidadVista{
			{ID: 1, Trayecto: "Trayecto 1", UnidadCurricular: "Programación I"},
		},
		dias:    []dto.DiaResponse{{ID: 1, Nombre: "Lunes"}, {ID: 2, Nombre: "Martes"}},
		bloques: []dto.BloqueResponse{{ID: 1, Nombre: "Bloque 1"}, {ID: 2, Nombre: "Bloque 2"}},
	}
	planificador, cerrar := planificadorDePrueba(t, estado)
	defer cerrar()

	ctx := context.Background()
	plan := planificador.Preparar(ctx, 7, 1, 2)
	if !plan.Ejecutable() {
		t.Fatal("el plan debe ser ejecutable")
	}

	horarios, err := planificador.Confirmar(ctx, plan, 1, 3, "")
	if err != nil {
		t.Fatalf("Confirmar: %v", err)
	}
	if estado.registros != 1 {
		t.Fatalf("debe emitirse exactamente un registro, hubo %d", estado.registros)
	}
	if len(horarios) != 1 {
		t.Fatalf("la recarga completa debe traer la asignación, llegaron %d filas", len(horarios))
	}

	// la celda día 1 × bloque 2 de la cuadrícula queda ocupada
	celdas, _, _, err := planificador.Cuadricula(ctx, 7)
	if err != nil {
		t.Fatalf("Cuadricula: %v", err)
	}
	celda := celdas[1][0] // fila bloque 2, columna lunes
	if celda.Entrada == nil {
		t.Fatal("la celda asignada debe estar ocupada")
	}
	if celda.Entrada.Unidad != "Programación I" || celda.Entrada.Aula != "A-101" {
		t.Fatalf("la celda no refleja la asignación: %+v", celda.Entrada)
	}
	if celda.Color != grid.ColorPara("Programación I") {
		t.Fatalf("sin color almacenado debe derivarse de la unidad, llegó %q", celda.Color)
	}

	// la celda martes × bloque 2 sigue vacía
	if celdas[1][1].Entrada != nil {
		t.Fatal("las demás celdas deben seguir vacías")
	}
}
