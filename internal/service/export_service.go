package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/grid"
)

// ── Errores del módulo de exportación ──

var (
	ErrExportSinAsignaciones = errors.New("el profesor no tiene asignaciones activas")
	ErrExportGenerar         = errors.New("no se pudo generar el archivo de exportación")
)

// ExportService exportación del horario de un profesor.
//
// El Excel reproduce la cuadrícula de la vista: una fila por bloque, una
// columna por día, celdas con unidad/trayecto/aula. El ICS emite un evento
// semanal recurrente por asignación. Ambos se devuelven como buffer; el
// handler pone las cabeceras HTTP.
type ExportService interface {
	// ExportXLSX exporta la cuadrícula del profesor como libro de Excel.
	ExportXLSX(ctx context.Context, profesorID int64) (*bytes.Buffer, string, error)
	// ExportICS exporta las asignaciones del profesor como calendario ICS.
	ExportICS(ctx context.Context, profesorID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea una instancia de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// cargarCuadricula reúne profesor, ejes y entradas activas de la cuadrícula
func (s *exportService) cargarCuadricula(ctx context.Context, profesorID int64) (*model.Profesor, []model.DiaSemana, []model.BloqueHorario, []model.Horario, error) {
	profesor, err := s.repo.Profesor.GetByID(ctx, profesorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, ErrProfesorNotFound
		}
		return nil, nil, nil, nil, err
	}

	dias, err := s.repo.DiaSemana.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	bloques, err := s.repo.BloqueHorario.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	horarios, err := s.repo.Horario.ListByProfesor(ctx, profesorID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	activos := horarios[:0]
	for _, h := range horarios {
		if h.Activo {
			activos = append(activos, h)
		}
	}
	if len(activos) == 0 {
		return nil, nil, nil, nil, ErrExportSinAsignaciones
	}
	return profesor, dias, bloques, activos, nil
}

func aEntradas(horarios []model.Horario) []grid.Entrada {
	entradas := make([]grid.Entrada, 0, len(horarios))
	for _, h := range horarios {
		e := grid.Entrada{
			ID:              h.ID,
			ProfesorID:      h.ProfesorID,
			DiaSemanaID:     h.DiaSemanaID,
			BloqueHorarioID: h.BloqueHorarioID,
			Color:           h.Color,
			Activa:          h.Activo,
		}
		if tu := h.TrayectoUnidadCurricular; tu != nil {
			if tu.UnidadCurricular != nil {
				e.Unidad = tu.UnidadCurricular.Nombre
			}
			if tu.Trayecto != nil {
				e.Trayecto = tu.Trayecto.Nombre
			}
		}
		if h.Aula != nil {
			e.Aula = h.Aula.Codigo
		}
		entradas = append(entradas, e)
	}
	return entradas
}

func (s *exportService) ExportXLSX(ctx context.Context, profesorID int64) (*bytes.Buffer, string, error) {
	profesor, dias, bloques, horarios, err := s.cargarCuadricula(ctx, profesorID)
	if err != nil {
		return nil, "", err
	}

	diaIDs := make([]int64, 0, len(dias))
	for _, d := range dias {
		diaIDs = append(diaIDs, d.ID)
	}
	bloqueIDs := make([]int64, 0, len(bloques))
	for _, b := range bloques {
		bloqueIDs = append(bloqueIDs, b.ID)
	}
	filas := grid.Cuadricula(aEntradas(horarios), profesorID, diaIDs, bloqueIDs)

	f := excelize.NewFile()
	defer f.Close()

	hoja := "Horario"
	idx, _ := f.NewSheet(hoja)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(hoja, "A", "A", 18)
	for i := range dias {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(hoja, col, col, 26)
	}

	estiloCabecera, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Título
	titulo := fmt.Sprintf("Horario — %s, %s", profesor.Apellido, profesor.Nombre)
	f.SetCellValue(hoja, "A1", titulo)
	ultimaCol, _ := excelize.ColumnNumberToName(1 + len(dias))
	f.MergeCell(hoja, "A1", fmt.Sprintf("%s1", ultimaCol))
	f.SetCellStyle(hoja, "A1", "A1", estiloCabecera)

	// Cabecera: bloque + un día por columna
	f.SetCellValue(hoja, "A2", "Bloque")
	for i, d := range dias {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetCellValue(hoja, fmt.Sprintf("%s2", col), d.Nombre)
		f.SetCellStyle(hoja, fmt.Sprintf("%s2", col), fmt.Sprintf("%s2", col), estiloCabecera)
	}
	f.SetCellStyle(hoja, "A2", "A2", estiloCabecera)

	// Filas de datos: un bloque por fila
	for fi, b := range bloques {
		filaNum := 3 + fi
		f.SetCellValue(hoja, fmt.Sprintf("A%d", filaNum),
			fmt.Sprintf("%s %s-%s", b.Nombre, b.HoraInicio, b.HoraFin))
		for ci := range dias {
			col, _ := excelize.ColumnNumberToName(2 + ci)
			celda := filas[fi][ci]
			texto := "-"
			if celda.Entrada != nil {
				texto = fmt.Sprintf("%s\n%s\nAula %s",
					celda.Entrada.Unidad, celda.Entrada.Trayecto, celda.Entrada.Aula)
				estilo, _ := f.NewStyle(&excelize.Style{
					Fill:      excelize.Fill{Type: "pattern", Color: []string{celda.Color}, Pattern: 1},
					Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
				})
				f.SetCellStyle(hoja, fmt.Sprintf("%s%d", col, filaNum), fmt.Sprintf("%s%d", col, filaNum), estilo)
			}
			f.SetCellValue(hoja, fmt.Sprintf("%s%d", col, filaNum), texto)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("escribiendo Excel", zap.Error(err))
		return nil, "", ErrExportGenerar
	}

	nombre := fmt.Sprintf("horario_%s.xlsx", profesor.Cedula)
	return buf, nombre, nil
}

func (s *exportService) ExportICS(ctx context.Context, profesorID int64) (*bytes.Buffer, string, error) {
	profesor, dias, _, horarios, err := s.cargarCuadricula(ctx, profesorID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gestion-horario//ES")

	// Semana de referencia: el lunes de la semana en curso. Cada día cae
	// tantos días después del lunes como su posición en la lista ordenada
	// de días, sin asumir nada sobre los valores de sus IDs.
	ahora := time.Now()
	lunes := ahora.AddDate(0, 0, -((int(ahora.Weekday()) + 6) % 7))
	lunes = time.Date(lunes.Year(), lunes.Month(), lunes.Day(), 0, 0, 0, 0, ahora.Location())

	posicionDia := make(map[int64]int, len(dias))
	for i, d := range dias {
		posicionDia[d.ID] = i
	}

	for _, h := range horarios {
		if h.BloqueHorario == nil || h.DiaSemana == nil {
			continue
		}
		pos, ok := posicionDia[h.DiaSemanaID]
		if !ok {
			continue
		}
		inicio, err := time.Parse("15:04:05", h.BloqueHorario.HoraInicio)
		if err != nil {
			continue
		}
		fin, err := time.Parse("15:04:05", h.BloqueHorario.HoraFin)
		if err != nil {
			continue
		}

		dia := lunes.AddDate(0, 0, pos)
		desde := time.Date(dia.Year(), dia.Month(), dia.Day(), inicio.Hour(), inicio.Minute(), 0, 0, dia.Location())
		hasta := time.Date(dia.Year(), dia.Month(), dia.Day(), fin.Hour(), fin.Minute(), 0, 0, dia.Location())

		evt := cal.AddEvent(fmt.Sprintf("horario-%d@gestion-horario", h.ID))
		evt.SetCreatedTime(ahora)
		evt.SetDtStampTime(ahora)
		evt.SetStartAt(desde)
		evt.SetEndAt(hasta)
		evt.AddRrule("FREQ=WEEKLY")

		resumen := ""
		if tu := h.TrayectoUnidadCurricular; tu != nil && tu.UnidadCurricular != nil {
			resumen = tu.UnidadCurricular.Nombre
		}
		evt.SetSummary(resumen)
		if h.Aula != nil {
			evt.SetLocation("Aula " + h.Aula.Codigo)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	nombre := fmt.Sprintf("horario_%s.ics", profesor.Cedula)
	return buf, nombre, nil
}
