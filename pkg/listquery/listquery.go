// Package listquery implementa el motor genérico de listas: búsqueda por
// subcadena, orden estable por una columna y paginación por corte. Opera
// en memoria sobre la colección completa que entrega el backend.
package listquery

import (
	"fmt"
	"sort"
	"strings"
)

// Campo proyección nombrada de una fila, usada para buscar y ordenar
type Campo[T any] struct {
	Clave string
	Valor func(fila T) any
}

// Consulta parámetros de una vista de lista
type Consulta struct {
	Termino        string
	ClavesBusqueda []string // vacío: buscar en todos los campos
	Orden          string   // clave del campo de orden; vacío: sin ordenar
	Descendente    bool
	Pagina         int // basada en 1; fuera de rango devuelve página vacía
	TamanoPagina   int // <=0: sin paginar
}

// Resultado página resuelta de una consulta
type Resultado[T any] struct {
	Filas        []T
	Total        int
	TotalPaginas int
}

// Aplicar filtra, ordena y pagina las filas según la consulta. La entrada no
// se modifica; el orden es estable entre claves iguales.
func Aplicar[T any](filas []T, campos []Campo[T], c Consulta) Resultado[T] {
	resultado := filtrar(filas, campos, c)

	if c.Orden != "" {
		if campo := buscarCampo(campos, c.Orden); campo != nil {
			sort.SliceStable(resultado, func(i, j int) bool {
				cmp := comparar(campo.Valor(resultado[i]), campo.Valor(resultado[j]))
				if c.Descendente {
					return cmp > 0
				}
				return cmp < 0
			})
		}
	}

	total := len(resultado)
	if c.TamanoPagina <= 0 {
		return Resultado[T]{Filas: resultado, Total: total, TotalPaginas: 1}
	}

	paginas := (total + c.TamanoPagina - 1) / c.TamanoPagina
	if paginas == 0 {
		paginas = 1
	}

	pagina := c.Pagina
	if pagina < 1 {
		pagina = 1
	}
	desde := (pagina - 1) * c.TamanoPagina
	if desde >= total {
		return Resultado[T]{Filas: []T{}, Total: total, TotalPaginas: paginas}
	}
	hasta := desde + c.TamanoPagina
	if hasta > total {
		hasta = total
	}
	return Resultado[T]{Filas: resultado[desde:hasta], Total: total, TotalPaginas: paginas}
}

func filtrar[T any](filas []T, campos []Campo[T], c Consulta) []T {
	if c.Termino == "" {
		out := make([]T, len(filas))
		copy(out, filas)
		return out
	}

	objetivo := campos
	if len(c.ClavesBusqueda) > 0 {
		objetivo = nil
		for _, clave := range c.ClavesBusqueda {
			if campo := buscarCampo(campos, clave); campo != nil {
				objetivo = append(objetivo, *campo)
			}
		}
	}

	termino := strings.ToLower(c.Termino)
	var out []T
	for _, fila := range filas {
		for _, campo := range objetivo {
			valor := strings.ToLower(fmt.Sprint(campo.Valor(fila)))
			if strings.Contains(valor, termino) {
				out = append(out, fila)
				break
			}
		}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func buscarCampo[T any](campos []Campo[T], clave string) *Campo[T] {
	for i := range campos {
		if campos[i].Clave == clave {
			return &campos[i]
		}
	}
	return nil
}

// comparar comparación relacional nativa: numéricos entre sí, booleanos como
// false < true, y el resto por su forma de cadena.
func comparar(a, b any) int {
	if na, aOK := aNumero(a); aOK {
		if nb, bOK := aNumero(b); bOK {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}
	if ba, aOK := a.(bool); aOK {
		if bb, bOK := b.(bool); bOK {
			switch {
			case !ba && bb:
				return -1
			case ba && !bb:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func aNumero(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
