// Package grid resuelve la cuadrícula de horarios: para un profesor y la
// matriz día × bloque, qué celda está ocupada y con qué color se pinta.
// Es lógica pura, compartida por el servicio de exportación y el cliente.
package grid

// Paleta colores de respaldo para entradas sin color asignado
var Paleta = []string{
	"#4F81BD", "#C0504D", "#9BBB59", "#8064A2",
	"#4BACC6", "#F79646", "#2C4D75", "#772C2A",
	"#5F7530", "#276A7C", "#B65708", "#4D3B62",
}

// Entrada asignación mínima que la cuadrícula necesita para resolver celdas
type Entrada struct {
	ID              int64
	ProfesorID      int64
	DiaSemanaID     int64
	BloqueHorarioID int64
	Unidad          string
	Trayecto        string
	Aula            string
	Color           string
	Activa          bool
}

// Celda posición día × bloque de la cuadrícula de un profesor.
// Entrada nil indica un cupo vacío.
type Celda struct {
	DiaSemanaID     int64
	BloqueHorarioID int64
	Entrada         *Entrada
	Color           string
}

// ColorPara deriva un color determinista del nombre de la unidad: el primer
// carácter módulo el tamaño de la paleta. Es total: el nombre vacío también
// produce un color válido.
func ColorPara(unidad string) string {
	if unidad == "" {
		return Paleta[0]
	}
	r := []rune(unidad)[0]
	return Paleta[int(r)%len(Paleta)]
}

// ColorDe color efectivo de una entrada: el almacenado, o el derivado del
// nombre de la unidad cuando no hay ninguno.
func ColorDe(e *Entrada) string {
	if e.Color != "" {
		return e.Color
	}
	return ColorPara(e.Unidad)
}

// Resolver busca la entrada activa del profesor en el día × bloque indicado.
// Devuelve nil cuando el cupo está vacío.
func Resolver(entradas []Entrada, profesorID, diaID, bloqueID int64) *Entrada {
	for i := range entradas {
		e := &entradas[i]
		if e.Activa && e.ProfesorID == profesorID && e.DiaSemanaID == diaID && e.BloqueHorarioID == bloqueID {
			return e
		}
	}
	return nil
}

// Cuadricula arma la matriz completa bloques × días del profesor indicado.
// Cada fila corresponde a un bloque y cada columna a un día, en el orden dado.
func Cuadricula(entradas []Entrada, profesorID int64, dias, bloques []int64) [][]Celda {
	filas := make([][]Celda, 0, len(bloques))
	for _, bloqueID := range bloques {
		fila := make([]Celda, 0, len(dias))
		for _, diaID := range dias {
			celda := Celda{DiaSemanaID: diaID, BloqueHorarioID: bloqueID}
			if e := Resolver(entradas, profesorID, diaID, bloqueID); e != nil {
				celda.Entrada = e
				celda.Color = ColorDe(e)
			}
			fila = append(fila, celda)
		}
		filas = append(filas, fila)
	}
	return filas
}
