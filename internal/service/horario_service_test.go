package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/grid"
)

// escenarioHorario cupo completo listo para asignar: profesor 1, aula 1,
// día 1, bloque 1, trayecto-unidad 1, con ambas disponibilidades en true
func escenarioHorario(t *testing.T) *repository.Repository {
	t.Helper()
	ctx := context.Background()
	repo := repoDePrueba()

	if err := repo.Profesor.Create(ctx, &model.Profesor{
		Cedula: "V-11111111", Nombre: "Ana", Apellido: "Pérez", Activo: true,
	}); err != nil {
		t.Fatalf("sembrando profesor: %v", err)
	}
	if err := repo.Aula.Create(ctx, &model.Aula{Codigo: "A-101", Capacidad: 30, Tipo: "teorica", Activo: true}); err != nil {
		t.Fatalf("sembrando aula: %v", err)
	}
	if err := repo.DiaSemana.Create(ctx, &model.DiaSemana{Nombre: "Lunes", Abreviatura: "Lun"}); err != nil {
		t.Fatalf("sembrando día: %v", err)
	}
	if err := repo.BloqueHorario.Create(ctx, &model.BloqueHorario{
		Nombre: "Bloque 1", HoraInicio: "07:00:00", HoraFin: "08:30:00", Activo: true,
	}); err != nil {
		t.Fatalf("sembrando bloque: %v", err)
	}
	if err := repo.TrayectoUnidad.Create(ctx, &model.TrayectoUnidadCurricular{
		TrayectoID: 1, UnidadCurricularID: 1,
	}); err != nil {
		t.Fatalf("sembrando trayecto-unidad: %v", err)
	}
	if err := repo.DisponibilidadProfesor.Create(ctx, &model.DisponibilidadProfesor{
		ProfesorID: 1, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
	}); err != nil {
		t.Fatalf("sembrando disponibilidad de profesor: %v", err)
	}
	if err := repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 1, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
	}); err != nil {
		t.Fatalf("sembrando disponibilidad de aula: %v", err)
	}
	return repo
}

func peticionHorario() *dto.CreateHorarioRequest {
	return &dto.CreateHorarioRequest{
		TrayectoUnidadCurricularID: 1,
		DiaSemanaID:                1,
		BloqueHorarioID:            1,
		AulaID:                     1,
		ProfesorID:                 1,
	}
}

func TestCreateHorarioExitoso(t *testing.T) {
	repo := escenarioHorario(t)
	svc := NewHorarioService(repo, zap.NewNop())

	vista, err := svc.Create(context.Background(), peticionHorario())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !vista.Activo {
		t.Fatal("la asignación debe nacer activa")
	}
	if vista.ProfesorID != 1 || vista.AulaID != 1 {
		t.Fatalf("la vista no refleja la asignación: %+v", vista)
	}
	if vista.Color == "" {
		t.Fatal("sin color almacenado debe derivarse uno determinista")
	}
	if vista.Color != grid.ColorPara(vista.UnidadCurricular) {
		t.Fatalf("color derivado inesperado: %q", vista.Color)
	}
}

func TestCreateHorarioSinRegistroDeDisponibilidadSeRechaza(t *testing.T) {
	repo := escenarioHorario(t)
	// profesor 2 existe pero no registró disponibilidad alguna
	repo.Profesor.Create(context.Background(), &model.Profesor{
		Cedula: "V-22222222", Nombre: "Luis", Apellido: "Gómez", Activo: true,
	})
	svc := NewHorarioService(repo, zap.NewNop())

	req := peticionHorario()
	req.ProfesorID = 2
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrProfesorNoDisponible) {
		t.Fatalf("sin registro debe rechazarse con ErrProfesorNoDisponible, llegó %v", err)
	}
}

func TestCreateHorarioDisponibleEnFalsoSeRechaza(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	repo.Profesor.Create(ctx, &model.Profesor{
		Cedula: "V-22222222", Nombre: "Luis", Apellido: "Gómez", Activo: true,
	})
	repo.DisponibilidadProfesor.Create(ctx, &model.DisponibilidadProfesor{
		ProfesorID: 2, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: false,
	})
	svc := NewHorarioService(repo, zap.NewNop())

	req := peticionHorario()
	req.ProfesorID = 2
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrProfesorNoDisponible) {
		t.Fatalf("disponible=false debe rechazarse, llegó %v", err)
	}
}

func TestCreateHorarioAulaNoDisponibleSeRechaza(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	repo.Aula.Create(ctx, &model.Aula{Codigo: "B-202", Capacidad: 20, Tipo: "laboratorio", Activo: true})
	svc := NewHorarioService(repo, zap.NewNop())

	req := peticionHorario()
	req.AulaID = 2
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrAulaNoDisponible) {
		t.Fatalf("el aula sin disponibilidad debe rechazarse, llegó %v", err)
	}
}

func TestCreateHorarioDobleReservaDeProfesor(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	// segunda aula disponible en el mismo cupo
	repo.Aula.Create(ctx, &model.Aula{Codigo: "B-202", Capacidad: 20, Tipo: "laboratorio", Activo: true})
	repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 2, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
	})
	svc := NewHorarioService(repo, zap.NewNop())

	if _, err := svc.Create(ctx, peticionHorario()); err != nil {
		t.Fatalf("primera asignación: %v", err)
	}

	req := peticionHorario()
	req.AulaID = 2
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrProfesorOcupado) {
		t.Fatalf("la segunda asignación del profesor en el cupo debe rechazarse, llegó %v", err)
	}
}

func TestCreateHorarioDobleReservaDeAula(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	// segundo profesor disponible en el mismo cupo
	repo.Profesor.Create(ctx, &model.Profesor{
		Cedula: "V-22222222", Nombre: "Luis", Apellido: "Gómez", Activo: true,
	})
	repo.DisponibilidadProfesor.Create(ctx, &model.DisponibilidadProfesor{
		ProfesorID: 2, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
	})
	svc := NewHorarioService(repo, zap.NewNop())

	if _, err := svc.Create(ctx, peticionHorario()); err != nil {
		t.Fatalf("primera asignación: %v", err)
	}

	req := peticionHorario()
	req.ProfesorID = 2
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrAulaOcupada) {
		t.Fatalf("la doble reserva del aula debe rechazarse, llegó %v", err)
	}
}

func TestUpdateHorarioActivoPermiteSuPropiaCelda(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	svc := NewHorarioService(repo, zap.NewNop())

	creado, err := svc.Create(ctx, peticionHorario())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	activo := true
	vista, err := svc.Update(ctx, &dto.UpdateHorarioRequest{
		ID:                         creado.ID,
		TrayectoUnidadCurricularID: 1,
		AulaID:                     1,
		Color:                      "#112233",
		Activo:                     &activo,
	})
	if err != nil {
		t.Fatalf("la edición sin mover la celda no debe chocar consigo misma: %v", err)
	}
	if vista.Color != "#112233" {
		t.Fatalf("el color almacenado debe prevalecer, llegó %q", vista.Color)
	}
}

func TestUpdateHorarioReactivarRevalidaElCupo(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	// segunda aula disponible para la asignación que tomará el cupo
	repo.Aula.Create(ctx, &model.Aula{Codigo: "B-202", Capacidad: 20, Tipo: "laboratorio", Activo: true})
	repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 2, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
	})
	svc := NewHorarioService(repo, zap.NewNop())

	primera, err := svc.Create(ctx, peticionHorario())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactivo := false
	if _, err := svc.Update(ctx, &dto.UpdateHorarioRequest{
		ID:                         primera.ID,
		TrayectoUnidadCurricularID: 1,
		AulaID:                     1,
		Activo:                     &inactivo,
	}); err != nil {
		t.Fatalf("desactivar no requiere revalidación: %v", err)
	}

	// el cupo liberado lo toma otra asignación del mismo profesor
	req := peticionHorario()
	req.AulaID = 2
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("el cupo liberado debe poder asignarse: %v", err)
	}

	activo := true
	_, err = svc.Update(ctx, &dto.UpdateHorarioRequest{
		ID:                         primera.ID,
		TrayectoUnidadCurricularID: 1,
		AulaID:                     1,
		Activo:                     &activo,
	})
	if !errors.Is(err, ErrProfesorOcupado) {
		t.Fatalf("reactivar sobre un cupo tomado debe rechazarse, llegó %v", err)
	}
}

func TestDeleteHorarioInexistente(t *testing.T) {
	svc := NewHorarioService(repoDePrueba(), zap.NewNop())
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrHorarioNotFound) {
		t.Fatalf("se esperaba ErrHorarioNotFound, llegó %v", err)
	}
}

func TestAulasDisponiblesFiltraOcupadasEInhabilitadas(t *testing.T) {
	ctx := context.Background()
	repo := escenarioHorario(t)
	svc := NewHorarioService(repo, zap.NewNop())

	// aula 2: disponible y libre — única candidata esperada tras ocupar la 1
	repo.Aula.Create(ctx, &model.Aula{Codigo: "B-202", Capacidad: 20, Tipo: "laboratorio", Activo: true})
	repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 2, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
		Aula: &model.Aula{ID: 2, Codigo: "B-202", Activo: true},
	})
	// aula 3: registro con disponible=false
	repo.Aula.Create(ctx, &model.Aula{Codigo: "C-303", Capacidad: 15, Tipo: "taller", Activo: true})
	repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 3, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: false,
		Aula: &model.Aula{ID: 3, Codigo: "C-303", Activo: true},
	})
	// aula 4: disponible pero inactiva
	repo.Aula.Create(ctx, &model.Aula{Codigo: "D-404", Capacidad: 10, Tipo: "teorica", Activo: false})
	repo.DisponibilidadAula.Create(ctx, &model.DisponibilidadAula{
		AulaID: 4, DiaSemanaID: 1, BloqueHorarioID: 1, Disponible: true,
		Aula: &model.Aula{ID: 4, Codigo: "D-404", Activo: false},
	})

	// la fila sembrada del aula 1 necesita su asociación para la vista
	if fila, err := repo.DisponibilidadAula.GetByID(ctx, 1); err == nil {
		fila.Aula = &model.Aula{ID: 1, Codigo: "A-101", Activo: true}
		repo.DisponibilidadAula.Update(ctx, fila)
	}

	// el aula 1 queda ocupada por la asignación
	if _, err := svc.Create(ctx, peticionHorario()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	candidatas, err := svc.AulasDisponibles(ctx, 1, 1)
	if err != nil {
		t.Fatalf("AulasDisponibles: %v", err)
	}
	if len(candidatas) != 1 || candidatas[0].Codigo != "B-202" {
		t.Fatalf("solo B-202 debe quedar como candidata, llegó %+v", candidatas)
	}
}
